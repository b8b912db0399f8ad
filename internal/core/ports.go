package core

import (
	"context"

	"gorm.io/datatypes"

	"pharmreg/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name LedgerStore . LedgerStore
type LedgerStore interface {
	AcquireShared(ctx context.Context, txString string) (repository.Transaction, error)
	CreateUnique(ctx context.Context, txString string) (repository.Transaction, error)
	GetByID(ctx context.Context, id uint) (repository.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name PharmacyStore . PharmacyStore
type PharmacyStore interface {
	CreatePharmacy(ctx context.Context, row *repository.Pharmacy) error
	UpdateSnapshot(ctx context.Context, id uint, column string, snapshot datatypes.JSON) error
	GetByUUID(ctx context.Context, scope repository.Scope, uuid string) (repository.Pharmacy, error)
}

//counterfeiter:generate -o fake -fake-name ChildStore . ChildStore
type ChildStore interface {
	SaveFile(ctx context.Context, file *repository.PharmacyFile) error
	SaveProperty(ctx context.Context, prop *repository.PharmacyProperty) error
	SaveExpertise(ctx context.Context, expertise *repository.Expertise) error
}

//counterfeiter:generate -o fake -fake-name UploadSink . UploadSink
type UploadSink interface {
	Store(pharmUUID string, filename string, content []byte) (string, error)
}
