package core

import (
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

// Upload is a buffered file payload awaiting materialization.
type Upload struct {
	Content  []byte
	Filename string
}

// Valid reports whether the upload can be materialized. Invalid uploads are
// dropped from the batch silently.
func (u Upload) Valid() bool {
	return len(u.Content) > 0 && u.Filename != ""
}

// Property is a buffered name/value pair awaiting materialization.
type Property struct {
	Name  string
	Value string
}

type FileSnapshot struct {
	ID          uint   `json:"id"`
	Path        string `json:"path"`
	Filename    string `json:"filename"`
	EthAddress  string `json:"eth_address"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type PropertySnapshot struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Value      string `json:"value"`
	EthAddress string `json:"eth_address"`
}

// EtherAccount is a ledger account reference. Callers holding an account
// rather than a raw address string pass account.Address to SetEthAddress.
type EtherAccount struct {
	Address string
}

// Pharmacy is the aggregate root. Buffers are populated before Register;
// the json snapshot fields are written only by the materialization run.
type Pharmacy struct {
	ID         uint
	UUID       string
	UserUUID   string
	Name       string
	Address    string
	GmLat      float64
	GmLon      float64
	GmPlaceID  string
	EthAddress string
	TxPharmID  *uint
	TxPropsID  *uint
	TxFilesID  *uint
	JSONFiles  []byte
	JSONProps  []byte
	CreatedAt  time.Time

	files []Upload
	props []Property
}

// BufferUpload appends an upload to the pending buffer. No storage side
// effect; valid only before Register.
func (p *Pharmacy) BufferUpload(content []byte, filename string) {
	p.files = append(p.files, Upload{Content: content, Filename: filename})
}

// BufferProperty appends a name/value pair to the pending buffer. No storage
// side effect; valid only before Register.
func (p *Pharmacy) BufferProperty(name string, value string) {
	p.props = append(p.props, Property{Name: name, Value: value})
}

// SetEthAddress normalizes well-formed hex addresses to their checksum form
// and stores anything else as given. Children are keyed by this value, so it
// must be assigned before Register.
func (p *Pharmacy) SetEthAddress(address string) {
	if common.IsHexAddress(address) {
		p.EthAddress = common.HexToAddress(address).Hex()
		return
	}
	p.EthAddress = address
}

// FilesBatched decodes the json_files snapshot. A missing or malformed
// snapshot yields an empty slice rather than an error, so rows created
// before the cache existed stay readable.
func (p *Pharmacy) FilesBatched() []FileSnapshot {
	snapshots := []FileSnapshot{}
	if len(p.JSONFiles) == 0 {
		return snapshots
	}
	if err := json.Unmarshal(p.JSONFiles, &snapshots); err != nil {
		return []FileSnapshot{}
	}
	if snapshots == nil {
		return []FileSnapshot{}
	}
	return snapshots
}

// PropsBatched decodes the json_props snapshot with the same leniency as
// FilesBatched.
func (p *Pharmacy) PropsBatched() []PropertySnapshot {
	snapshots := []PropertySnapshot{}
	if len(p.JSONProps) == 0 {
		return snapshots
	}
	if err := json.Unmarshal(p.JSONProps, &snapshots); err != nil {
		return []PropertySnapshot{}
	}
	if snapshots == nil {
		return []PropertySnapshot{}
	}
	return snapshots
}

func (p *Pharmacy) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.EthAddress, validation.Required),
	)
}
