package repository

import (
	"time"

	"gorm.io/datatypes"
)

const (
	TxStatusPending   = "pending"
	TxStatusConfirmed = "confirmed"
	TxStatusFailed    = "failed"
)

// Transaction is a local reference to one ledger submission. Rows acquired
// through the shared path are deduplicated by a partial unique index on tx
// scoped to pending status; rows from the unique path carry an empty status
// and may duplicate the same string freely.
type Transaction struct {
	ID     uint   `gorm:"primaryKey"`
	Tx     string `gorm:"size:100;not null;uniqueIndex:ux_transactions_pending_tx,where:status = 'pending'"`
	Status string `gorm:"size:20;not null;default:''"`
}

type Pharmacy struct {
	ID         uint           `gorm:"primaryKey"`
	UUID       string         `gorm:"size:36;uniqueIndex;not null"`
	UserUUID   string         `gorm:"size:36;index"`
	Name       string         `gorm:"size:255;not null"`
	Address    string         `gorm:"size:255"`
	GmLat      float64        `gorm:"column:gm_lat"`
	GmLon      float64        `gorm:"column:gm_lon"`
	GmPlaceID  string         `gorm:"column:gm_place_id;size:255"`
	EthAddress string         `gorm:"size:42;not null;index"`
	TxPharmID  *uint          `gorm:"column:tx_pharm_id"`
	TxPropsID  *uint          `gorm:"column:tx_props_id"`
	TxFilesID  *uint          `gorm:"column:tx_files_id"`
	JSONFiles  datatypes.JSON `gorm:"column:json_files;type:jsonb"`
	JSONProps  datatypes.JSON `gorm:"column:json_props;type:jsonb"`
	CreatedAt  time.Time
}

// Child rows are keyed by the owning pharmacy's eth_address, not its row id.
type PharmacyFile struct {
	ID          uint   `gorm:"primaryKey"`
	Path        string `gorm:"size:512;not null"`
	Filename    string `gorm:"size:255;not null"`
	EthAddress  string `gorm:"size:42;not null;index"`
	Size        int64  `gorm:"not null;default:0"`
	ContentType string `gorm:"size:100"`
	CreatedAt   time.Time
}

type PharmacyProperty struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:255;not null"`
	Value      string `gorm:"type:text;not null"`
	EthAddress string `gorm:"size:42;not null;index"`
	CreatedAt  time.Time
}

type Expertise struct {
	ID              uint   `gorm:"primaryKey"`
	UID             string `gorm:"size:64;uniqueIndex;not null"`
	EthAddressPharm string `gorm:"size:42;not null;index"`
	CreatedAt       time.Time
}

// Scope restricts pharmacy reads to one user's rows. The zero value reads
// unfiltered; assigning the user uuid is the caller's concern.
type Scope struct {
	UserUUID string
}
