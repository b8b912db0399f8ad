package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm/clause"

	"pharmreg/internal/db"
)

var ErrTransactionNotFound error = errors.New("transaction not found")

// LedgerStore owns the local ledger transaction references.
type LedgerStore struct {
	db *db.PostgresDB
}

func NewLedgerStore(database *db.PostgresDB) *LedgerStore {
	return &LedgerStore{
		db: database,
	}
}

// AcquireShared returns the pending reference for the given transaction
// string, inserting it when missing. The insert resolves conflicts against
// the partial unique index on (tx) where status = 'pending', so concurrent
// callers racing on the same string converge on one row instead of a
// check-then-insert race.
func (s *LedgerStore) AcquireShared(ctx context.Context, txString string) (Transaction, error) {
	record := Transaction{
		Tx:     txString,
		Status: TxStatusPending,
	}

	result := s.db.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:     []clause.Column{{Name: "tx"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "status = 'pending'"}}},
		DoNothing:   true,
	}).Create(&record)
	if result.Error != nil {
		return Transaction{}, fmt.Errorf("acquire shared transaction: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// lost the insert: another caller owns the pending row for this string
		err := s.db.DB.WithContext(ctx).
			Where("tx = ? AND status = ?", txString, TxStatusPending).
			First(&record).Error
		if err != nil {
			return Transaction{}, fmt.Errorf("fetch shared transaction: %w", err)
		}
	}

	return record, nil
}

// CreateUnique inserts a fresh reference regardless of whether another row
// already carries the same transaction string.
func (s *LedgerStore) CreateUnique(ctx context.Context, txString string) (Transaction, error) {
	record := Transaction{
		Tx: txString,
	}

	if err := s.db.CreateRecord(ctx, &record); err != nil {
		return Transaction{}, fmt.Errorf("create unique transaction: %w", err)
	}

	return record, nil
}

func (s *LedgerStore) GetByID(ctx context.Context, id uint) (Transaction, error) {
	var record Transaction

	err := s.db.GetOneBy(ctx, "id", id, &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("get transaction by id: %w", err)
	}

	return record, nil
}
