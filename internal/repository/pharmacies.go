package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pharmreg/internal/db"
)

var ErrPharmacyNotFound error = errors.New("pharmacy not found")

// PharmacyStore owns the parent pharmacy rows.
type PharmacyStore struct {
	db *db.PostgresDB
}

func NewPharmacyStore(database *db.PostgresDB) *PharmacyStore {
	return &PharmacyStore{
		db: database,
	}
}

func (s *PharmacyStore) CreatePharmacy(ctx context.Context, row *Pharmacy) error {
	if err := s.db.CreateRecord(ctx, row); err != nil {
		return fmt.Errorf("create pharmacy: %w", err)
	}

	return nil
}

// UpdateSnapshot patches one of the denormalized json columns on an already
// created row. The write targets the row by id and fires no hooks, so it
// cannot re-trigger materialization.
func (s *PharmacyStore) UpdateSnapshot(ctx context.Context, id uint, column string, snapshot datatypes.JSON) error {
	if err := s.db.UpdateColumnByID(ctx, &Pharmacy{}, id, column, snapshot); err != nil {
		return fmt.Errorf("update pharmacy snapshot: %w", err)
	}

	return nil
}

func (s *PharmacyStore) GetByUUID(ctx context.Context, scope Scope, uuid string) (Pharmacy, error) {
	var row Pharmacy

	query := s.db.DB.WithContext(ctx).Where("uuid = ?", uuid)
	if scope.UserUUID != "" {
		query = query.Where("user_uuid = ?", scope.UserUUID)
	}

	err := query.First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Pharmacy{}, ErrPharmacyNotFound
		}
		return Pharmacy{}, fmt.Errorf("get pharmacy by uuid: %w", err)
	}

	return row, nil
}
