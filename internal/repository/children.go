package repository

import (
	"context"
	"fmt"

	"pharmreg/internal/db"
)

// ChildStore owns the per-pharmacy child rows. Children are created exactly
// once during materialization and never re-parented.
type ChildStore struct {
	db *db.PostgresDB
}

func NewChildStore(database *db.PostgresDB) *ChildStore {
	return &ChildStore{
		db: database,
	}
}

func (s *ChildStore) SaveFile(ctx context.Context, file *PharmacyFile) error {
	if err := s.db.CreateRecord(ctx, file); err != nil {
		return fmt.Errorf("save pharmacy file: %w", err)
	}

	return nil
}

func (s *ChildStore) SaveProperty(ctx context.Context, prop *PharmacyProperty) error {
	if err := s.db.CreateRecord(ctx, prop); err != nil {
		return fmt.Errorf("save pharmacy property: %w", err)
	}

	return nil
}

func (s *ChildStore) SaveExpertise(ctx context.Context, expertise *Expertise) error {
	if err := s.db.CreateRecord(ctx, expertise); err != nil {
		return fmt.Errorf("save expertise: %w", err)
	}

	return nil
}

func (s *ChildStore) FilesByAddress(ctx context.Context, ethAddress string) ([]PharmacyFile, error) {
	files := []PharmacyFile{}

	if err := s.db.GetAllBy(ctx, "eth_address", ethAddress, &files); err != nil {
		return nil, fmt.Errorf("get files by address: %w", err)
	}

	return files, nil
}

func (s *ChildStore) PropertiesByAddress(ctx context.Context, ethAddress string) ([]PharmacyProperty, error) {
	props := []PharmacyProperty{}

	if err := s.db.GetAllBy(ctx, "eth_address", ethAddress, &props); err != nil {
		return nil, fmt.Errorf("get properties by address: %w", err)
	}

	return props, nil
}
