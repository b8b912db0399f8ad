package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"pharmreg/internal/repository"
)

const (
	filesSnapshotColumn = "json_files"
	propsSnapshotColumn = "json_props"
)

// Registrar registers pharmacies and owns the post-create materialization
// of their buffered uploads and properties.
type Registrar struct {
	logs       *zap.SugaredLogger
	ledger     LedgerStore
	pharmacies PharmacyStore
	children   ChildStore
	sink       UploadSink
}

func NewRegistrar(logger *zap.SugaredLogger, ledger LedgerStore, pharmacies PharmacyStore, children ChildStore, sink UploadSink) *Registrar {
	return &Registrar{
		logs:       logger,
		ledger:     ledger,
		pharmacies: pharmacies,
		children:   children,
		sink:       sink,
	}
}

// SetPharmTx binds the pharmacy-registration transaction. Re-submitting the
// same string converges on the one shared pending row instead of creating a
// duplicate.
func (r *Registrar) SetPharmTx(ctx context.Context, pharm *Pharmacy, txString string) error {
	record, err := r.ledger.AcquireShared(ctx, txString)
	if err != nil {
		return fmt.Errorf("acquire shared transaction: %w", err)
	}

	pharm.TxPharmID = &record.ID
	return nil
}

// SetPropsTx binds a per-write properties transaction. Identical strings are
// distinct logical submissions and are never collapsed.
func (r *Registrar) SetPropsTx(ctx context.Context, pharm *Pharmacy, txString string) error {
	record, err := r.ledger.CreateUnique(ctx, txString)
	if err != nil {
		return fmt.Errorf("create properties transaction: %w", err)
	}

	pharm.TxPropsID = &record.ID
	return nil
}

// SetFilesTx binds a per-write files transaction, same semantics as
// SetPropsTx.
func (r *Registrar) SetFilesTx(ctx context.Context, pharm *Pharmacy, txString string) error {
	record, err := r.ledger.CreateUnique(ctx, txString)
	if err != nil {
		return fmt.Errorf("create files transaction: %w", err)
	}

	pharm.TxFilesID = &record.ID
	return nil
}

func (r *Registrar) PharmTx(ctx context.Context, pharm *Pharmacy) (string, error) {
	return r.resolveTx(ctx, pharm.TxPharmID)
}

func (r *Registrar) PropsTx(ctx context.Context, pharm *Pharmacy) (string, error) {
	return r.resolveTx(ctx, pharm.TxPropsID)
}

func (r *Registrar) FilesTx(ctx context.Context, pharm *Pharmacy) (string, error) {
	return r.resolveTx(ctx, pharm.TxFilesID)
}

// resolveTx returns the referenced transaction string, or "" when the slot
// is unset or the reference dangles.
func (r *Registrar) resolveTx(ctx context.Context, id *uint) (string, error) {
	if id == nil {
		return "", nil
	}

	record, err := r.ledger.GetByID(ctx, *id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("resolve transaction reference: %w", err)
	}

	return record.Tx, nil
}

// Register durably creates the pharmacy row and then materializes the
// buffered uploads and properties as child rows plus the two json snapshots
// on the parent. The two phases are sequential and synchronous: children
// need the assigned identity, and the snapshot patch targets the created row
// by id. A storage failure during materialization propagates to the caller
// and leaves the parent row with whatever prefix was persisted.
func (r *Registrar) Register(ctx context.Context, pharm *Pharmacy) error {
	if err := pharm.Validate(); err != nil {
		return fmt.Errorf("validate pharmacy: %w", err)
	}

	if pharm.UUID == "" {
		pharm.UUID = uuid.NewString()
	}

	row := toRow(pharm)
	if err := r.pharmacies.CreatePharmacy(ctx, &row); err != nil {
		return fmt.Errorf("create pharmacy: %w", err)
	}
	pharm.ID = row.ID
	pharm.CreatedAt = row.CreatedAt

	r.logs.Infow("pharmacy created",
		"uuid", pharm.UUID,
		"eth_address", pharm.EthAddress)

	if err := r.materializeFiles(ctx, pharm); err != nil {
		return err
	}

	return r.materializeProps(ctx, pharm)
}

// Lookup reads a pharmacy back as an aggregate, restricted by the given
// scope.
func (r *Registrar) Lookup(ctx context.Context, scope repository.Scope, pharmUUID string) (*Pharmacy, error) {
	row, err := r.pharmacies.GetByUUID(ctx, scope, pharmUUID)
	if err != nil {
		return nil, fmt.Errorf("get pharmacy: %w", err)
	}

	return fromRow(row), nil
}

// AddExpertise persists a harvest-expertise record keyed by the pharmacy's
// ledger address.
func (r *Registrar) AddExpertise(ctx context.Context, pharm *Pharmacy) (repository.Expertise, error) {
	expertise := repository.Expertise{
		UID:             strings.ReplaceAll(uuid.NewString(), "-", ""),
		EthAddressPharm: pharm.EthAddress,
	}

	if err := r.children.SaveExpertise(ctx, &expertise); err != nil {
		return repository.Expertise{}, fmt.Errorf("save expertise: %w", err)
	}

	return expertise, nil
}

func (r *Registrar) materializeFiles(ctx context.Context, pharm *Pharmacy) error {
	snapshots := make([]FileSnapshot, 0, len(pharm.files))

	for _, upload := range pharm.files {
		if !upload.Valid() {
			continue
		}

		path, err := r.sink.Store(pharm.UUID, upload.Filename, upload.Content)
		if err != nil {
			return fmt.Errorf("store upload %q: %w", upload.Filename, err)
		}

		file := repository.PharmacyFile{
			Path:        path,
			Filename:    upload.Filename,
			EthAddress:  pharm.EthAddress,
			Size:        int64(len(upload.Content)),
			ContentType: mimetype.Detect(upload.Content).String(),
		}
		if err := r.children.SaveFile(ctx, &file); err != nil {
			return fmt.Errorf("save pharmacy file: %w", err)
		}

		snapshots = append(snapshots, FileSnapshot{
			ID:          file.ID,
			Path:        file.Path,
			Filename:    file.Filename,
			EthAddress:  file.EthAddress,
			Size:        file.Size,
			ContentType: file.ContentType,
		})
	}

	data, err := json.Marshal(snapshots)
	if err != nil {
		return fmt.Errorf("marshal file snapshots: %w", err)
	}

	if err := r.pharmacies.UpdateSnapshot(ctx, pharm.ID, filesSnapshotColumn, datatypes.JSON(data)); err != nil {
		return fmt.Errorf("patch files snapshot: %w", err)
	}
	pharm.JSONFiles = data

	r.logs.Infow("uploads materialized",
		"uuid", pharm.UUID,
		"count", len(snapshots),
		"skipped", len(pharm.files)-len(snapshots))

	return nil
}

func (r *Registrar) materializeProps(ctx context.Context, pharm *Pharmacy) error {
	snapshots := make([]PropertySnapshot, 0, len(pharm.props))

	for _, property := range pharm.props {
		prop := repository.PharmacyProperty{
			Name:       property.Name,
			Value:      property.Value,
			EthAddress: pharm.EthAddress,
		}
		if err := r.children.SaveProperty(ctx, &prop); err != nil {
			return fmt.Errorf("save pharmacy property: %w", err)
		}

		snapshots = append(snapshots, PropertySnapshot{
			ID:         prop.ID,
			Name:       prop.Name,
			Value:      prop.Value,
			EthAddress: prop.EthAddress,
		})
	}

	data, err := json.Marshal(snapshots)
	if err != nil {
		return fmt.Errorf("marshal property snapshots: %w", err)
	}

	if err := r.pharmacies.UpdateSnapshot(ctx, pharm.ID, propsSnapshotColumn, datatypes.JSON(data)); err != nil {
		return fmt.Errorf("patch properties snapshot: %w", err)
	}
	pharm.JSONProps = data

	r.logs.Infow("properties materialized",
		"uuid", pharm.UUID,
		"count", len(snapshots))

	return nil
}

func toRow(pharm *Pharmacy) repository.Pharmacy {
	return repository.Pharmacy{
		UUID:       pharm.UUID,
		UserUUID:   pharm.UserUUID,
		Name:       pharm.Name,
		Address:    pharm.Address,
		GmLat:      pharm.GmLat,
		GmLon:      pharm.GmLon,
		GmPlaceID:  pharm.GmPlaceID,
		EthAddress: pharm.EthAddress,
		TxPharmID:  pharm.TxPharmID,
		TxPropsID:  pharm.TxPropsID,
		TxFilesID:  pharm.TxFilesID,
	}
}

func fromRow(row repository.Pharmacy) *Pharmacy {
	return &Pharmacy{
		ID:         row.ID,
		UUID:       row.UUID,
		UserUUID:   row.UserUUID,
		Name:       row.Name,
		Address:    row.Address,
		GmLat:      row.GmLat,
		GmLon:      row.GmLon,
		GmPlaceID:  row.GmPlaceID,
		EthAddress: row.EthAddress,
		TxPharmID:  row.TxPharmID,
		TxPropsID:  row.TxPropsID,
		TxFilesID:  row.TxFilesID,
		JSONFiles:  row.JSONFiles,
		JSONProps:  row.JSONProps,
		CreatedAt:  row.CreatedAt,
	}
}
