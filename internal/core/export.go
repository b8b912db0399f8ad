package core

// ChainFormat projects the field subset submitted on-chain into a flat map.
// Read-only; the entity is not touched.
func ChainFormat(pharm *Pharmacy) map[string]any {
	return map[string]any{
		"name":          pharm.Name,
		"address":       pharm.Address,
		"gm_lat":        pharm.GmLat,
		"gm_lon":        pharm.GmLon,
		"gm_place_id":   pharm.GmPlaceID,
		"created_at":    pharm.CreatedAt,
		"eth_address":   pharm.EthAddress,
		"files_batched": pharm.FilesBatched(),
		"props_batched": pharm.PropsBatched(),
		"uuid":          pharm.UUID,
	}
}
