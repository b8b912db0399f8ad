package core_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"pharmreg/internal/core"
	"pharmreg/internal/core/fake"
	"pharmreg/internal/repository"
)

var _ = Describe("Registrar", func() {
	var (
		fakeLedger     *fake.LedgerStore
		fakePharmacies *fake.PharmacyStore
		fakeChildren   *fake.ChildStore
		fakeSink       *fake.UploadSink
		fakeLogger     *zap.SugaredLogger
		ctx            context.Context

		registrar *core.Registrar
		pharm     *core.Pharmacy

		fakeErr error
	)

	BeforeEach(func() {
		fakeLedger = new(fake.LedgerStore)
		fakePharmacies = new(fake.PharmacyStore)
		fakeChildren = new(fake.ChildStore)
		fakeSink = new(fake.UploadSink)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		registrar = core.NewRegistrar(fakeLogger, fakeLedger, fakePharmacies, fakeChildren, fakeSink)

		pharm = &core.Pharmacy{
			Name:    "Green Cross",
			Address: "12 Main St",
		}
		pharm.SetEthAddress("0x1")

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var err error

		BeforeEach(func() {
			fakePharmacies.CreatePharmacyStub = func(ctx context.Context, row *repository.Pharmacy) error {
				row.ID = 42
				row.CreatedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
				return nil
			}

			nextFileID := uint(0)
			fakeChildren.SaveFileStub = func(ctx context.Context, file *repository.PharmacyFile) error {
				nextFileID++
				file.ID = nextFileID
				return nil
			}

			nextPropID := uint(100)
			fakeChildren.SavePropertyStub = func(ctx context.Context, prop *repository.PharmacyProperty) error {
				nextPropID++
				prop.ID = nextPropID
				return nil
			}

			fakeSink.StoreStub = func(pharmUUID string, filename string, content []byte) (string, error) {
				return fmt.Sprintf("/data/pharm-docs/%s/%s", pharmUUID, filename), nil
			}
		})

		JustBeforeEach(func() {
			err = registrar.Register(ctx, pharm)
		})

		When("one valid upload and one property are buffered", func() {
			BeforeEach(func() {
				pharm.BufferUpload([]byte("%PDF-1.4 report"), "report.pdf")
				pharm.BufferProperty("region", "north")
			})

			It("creates the parent row before flushing children", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakePharmacies.CreatePharmacyCallCount()).To(Equal(1))
				_, row := fakePharmacies.CreatePharmacyArgsForCall(0)
				Expect(row.Name).To(Equal("Green Cross"))
				Expect(row.EthAddress).To(Equal("0x1"))

				Expect(pharm.ID).To(Equal(uint(42)))
				Expect(pharm.CreatedAt).NotTo(BeZero())
			})

			It("persists children keyed by the parent's eth address", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeChildren.SaveFileCallCount()).To(Equal(1))
				_, file := fakeChildren.SaveFileArgsForCall(0)
				Expect(file.Filename).To(Equal("report.pdf"))
				Expect(file.EthAddress).To(Equal("0x1"))
				Expect(file.Size).To(Equal(int64(len("%PDF-1.4 report"))))

				Expect(fakeChildren.SavePropertyCallCount()).To(Equal(1))
				_, prop := fakeChildren.SavePropertyArgsForCall(0)
				Expect(prop.Name).To(Equal("region"))
				Expect(prop.Value).To(Equal("north"))
				Expect(prop.EthAddress).To(Equal("0x1"))
			})

			It("patches both snapshots onto the created row", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakePharmacies.UpdateSnapshotCallCount()).To(Equal(2))

				_, id, column, _ := fakePharmacies.UpdateSnapshotArgsForCall(0)
				Expect(id).To(Equal(uint(42)))
				Expect(column).To(Equal("json_files"))

				_, id, column, _ = fakePharmacies.UpdateSnapshotArgsForCall(1)
				Expect(id).To(Equal(uint(42)))
				Expect(column).To(Equal("json_props"))

				files := pharm.FilesBatched()
				Expect(files).To(HaveLen(1))
				Expect(files[0].EthAddress).To(Equal("0x1"))
				Expect(files[0].Filename).To(Equal("report.pdf"))

				props := pharm.PropsBatched()
				Expect(props).To(Equal([]core.PropertySnapshot{
					{ID: 101, Name: "region", Value: "north", EthAddress: "0x1"},
				}))
			})
		})

		When("an invalid upload sits between two valid ones", func() {
			BeforeEach(func() {
				pharm.BufferUpload([]byte("first"), "a.txt")
				pharm.BufferUpload(nil, "b.txt")
				pharm.BufferUpload([]byte("third"), "c.txt")
			})

			It("skips it and preserves the order of the rest", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeSink.StoreCallCount()).To(Equal(2))
				Expect(fakeChildren.SaveFileCallCount()).To(Equal(2))

				files := pharm.FilesBatched()
				Expect(files).To(HaveLen(2))
				Expect(files[0].Filename).To(Equal("a.txt"))
				Expect(files[1].Filename).To(Equal("c.txt"))
			})
		})

		When("multiple properties are buffered", func() {
			BeforeEach(func() {
				pharm.BufferProperty("region", "north")
				pharm.BufferProperty("license", "A-17")
			})

			It("preserves buffer order in rows and snapshot", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeChildren.SavePropertyCallCount()).To(Equal(2))
				_, first := fakeChildren.SavePropertyArgsForCall(0)
				Expect(first.Name).To(Equal("region"))
				_, second := fakeChildren.SavePropertyArgsForCall(1)
				Expect(second.Name).To(Equal("license"))

				props := pharm.PropsBatched()
				Expect(props).To(HaveLen(2))
				Expect(props[0].Name).To(Equal("region"))
				Expect(props[0].Value).To(Equal("north"))
				Expect(props[1].Name).To(Equal("license"))
				Expect(props[1].Value).To(Equal("A-17"))
			})
		})

		When("no uploads or properties are buffered", func() {
			It("patches empty snapshots", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakePharmacies.UpdateSnapshotCallCount()).To(Equal(2))
				_, _, _, filesSnapshot := fakePharmacies.UpdateSnapshotArgsForCall(0)
				Expect(string(filesSnapshot)).To(Equal("[]"))
				_, _, _, propsSnapshot := fakePharmacies.UpdateSnapshotArgsForCall(1)
				Expect(string(propsSnapshot)).To(Equal("[]"))

				Expect(pharm.FilesBatched()).To(BeEmpty())
				Expect(pharm.PropsBatched()).To(BeEmpty())
			})
		})

		When("no uuid is assigned yet", func() {
			It("generates one before creating the row", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(pharm.UUID).NotTo(BeEmpty())

				_, row := fakePharmacies.CreatePharmacyArgsForCall(0)
				Expect(row.UUID).To(Equal(pharm.UUID))
			})
		})

		When("a uuid is already assigned", func() {
			BeforeEach(func() {
				pharm.UUID = "ph-uuid-1"
			})

			It("keeps it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(pharm.UUID).To(Equal("ph-uuid-1"))
			})
		})

		When("the name is missing", func() {
			BeforeEach(func() {
				pharm.Name = ""
			})

			It("rejects the entity before any storage write", func() {
				Expect(err).To(HaveOccurred())
				Expect(fakePharmacies.CreatePharmacyCallCount()).To(Equal(0))
			})
		})

		When("the eth address is missing", func() {
			BeforeEach(func() {
				pharm.EthAddress = ""
			})

			It("rejects the entity before any storage write", func() {
				Expect(err).To(HaveOccurred())
				Expect(fakePharmacies.CreatePharmacyCallCount()).To(Equal(0))
			})
		})

		When("creating the parent row fails", func() {
			BeforeEach(func() {
				fakePharmacies.CreatePharmacyStub = nil
				fakePharmacies.CreatePharmacyReturns(fakeErr)
			})

			It("returns the error without touching children", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeChildren.SaveFileCallCount()).To(Equal(0))
				Expect(fakeChildren.SavePropertyCallCount()).To(Equal(0))
				Expect(fakePharmacies.UpdateSnapshotCallCount()).To(Equal(0))
			})
		})

		When("persisting the second file fails", func() {
			BeforeEach(func() {
				pharm.BufferUpload([]byte("first"), "a.txt")
				pharm.BufferUpload([]byte("second"), "b.txt")
				pharm.BufferProperty("region", "north")

				fakeChildren.SaveFileStub = nil
				fakeChildren.SaveFileReturnsOnCall(0, nil)
				fakeChildren.SaveFileReturnsOnCall(1, fakeErr)
			})

			It("surfaces the error and leaves the persisted prefix as-is", func() {
				Expect(err).To(MatchError(fakeErr))

				Expect(fakeChildren.SaveFileCallCount()).To(Equal(2))
				Expect(fakePharmacies.UpdateSnapshotCallCount()).To(Equal(0))
				Expect(fakeChildren.SavePropertyCallCount()).To(Equal(0))
			})
		})

		When("persisting a property fails", func() {
			BeforeEach(func() {
				pharm.BufferUpload([]byte("first"), "a.txt")
				pharm.BufferProperty("region", "north")

				fakeChildren.SavePropertyStub = nil
				fakeChildren.SavePropertyReturns(fakeErr)
			})

			It("surfaces the error after the files snapshot was patched", func() {
				Expect(err).To(MatchError(fakeErr))

				Expect(fakePharmacies.UpdateSnapshotCallCount()).To(Equal(1))
				_, _, column, _ := fakePharmacies.UpdateSnapshotArgsForCall(0)
				Expect(column).To(Equal("json_files"))
			})
		})

		When("the upload sink fails", func() {
			BeforeEach(func() {
				pharm.BufferUpload([]byte("first"), "a.txt")

				fakeSink.StoreStub = nil
				fakeSink.StoreReturns("", fakeErr)
			})

			It("surfaces the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeChildren.SaveFileCallCount()).To(Equal(0))
			})
		})

		When("patching the files snapshot fails", func() {
			BeforeEach(func() {
				fakePharmacies.UpdateSnapshotReturns(fakeErr)
			})

			It("surfaces the error without flushing properties", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeChildren.SavePropertyCallCount()).To(Equal(0))
			})
		})
	})

	Describe("SetPharmTx", func() {
		var err error

		JustBeforeEach(func() {
			err = registrar.SetPharmTx(ctx, pharm, "0xABC")
		})

		When("acquisition succeeds", func() {
			BeforeEach(func() {
				fakeLedger.AcquireSharedReturns(repository.Transaction{
					ID:     7,
					Tx:     "0xABC",
					Status: repository.TxStatusPending,
				}, nil)
			})

			It("binds the shared reference", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeLedger.AcquireSharedCallCount()).To(Equal(1))
				_, txString := fakeLedger.AcquireSharedArgsForCall(0)
				Expect(txString).To(Equal("0xABC"))

				Expect(pharm.TxPharmID).To(HaveValue(Equal(uint(7))))
			})

			It("converges a second entity on the same row", func() {
				other := &core.Pharmacy{Name: "Other", EthAddress: "0x2"}
				Expect(registrar.SetPharmTx(ctx, other, "0xABC")).To(Succeed())

				Expect(other.TxPharmID).To(HaveValue(Equal(uint(7))))
				Expect(*other.TxPharmID).To(Equal(*pharm.TxPharmID))
			})
		})

		When("acquisition fails", func() {
			BeforeEach(func() {
				fakeLedger.AcquireSharedReturns(repository.Transaction{}, fakeErr)
			})

			It("returns the error and leaves the slot unset", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(pharm.TxPharmID).To(BeNil())
			})
		})
	})

	Describe("SetPropsTx / SetFilesTx", func() {
		When("two submissions carry the same string", func() {
			BeforeEach(func() {
				fakeLedger.CreateUniqueReturnsOnCall(0, repository.Transaction{ID: 11, Tx: "0xFEE"}, nil)
				fakeLedger.CreateUniqueReturnsOnCall(1, repository.Transaction{ID: 12, Tx: "0xFEE"}, nil)
			})

			It("binds two distinct references", func() {
				Expect(registrar.SetPropsTx(ctx, pharm, "0xFEE")).To(Succeed())
				Expect(registrar.SetFilesTx(ctx, pharm, "0xFEE")).To(Succeed())

				Expect(fakeLedger.CreateUniqueCallCount()).To(Equal(2))
				Expect(pharm.TxPropsID).To(HaveValue(Equal(uint(11))))
				Expect(pharm.TxFilesID).To(HaveValue(Equal(uint(12))))
			})
		})

		When("creation fails", func() {
			BeforeEach(func() {
				fakeLedger.CreateUniqueReturns(repository.Transaction{}, fakeErr)
			})

			It("returns the error", func() {
				Expect(registrar.SetPropsTx(ctx, pharm, "0xFEE")).To(MatchError(fakeErr))
				Expect(registrar.SetFilesTx(ctx, pharm, "0xFEE")).To(MatchError(fakeErr))
			})
		})
	})

	Describe("PharmTx", func() {
		var (
			txString string
			err      error
		)

		JustBeforeEach(func() {
			txString, err = registrar.PharmTx(ctx, pharm)
		})

		When("the slot is unset", func() {
			It("returns empty without a lookup", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txString).To(Equal(""))
				Expect(fakeLedger.GetByIDCallCount()).To(Equal(0))
			})
		})

		When("the slot references an existing row", func() {
			BeforeEach(func() {
				id := uint(7)
				pharm.TxPharmID = &id
				fakeLedger.GetByIDReturns(repository.Transaction{ID: 7, Tx: "0xABC"}, nil)
			})

			It("returns the transaction string", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txString).To(Equal("0xABC"))

				_, id := fakeLedger.GetByIDArgsForCall(0)
				Expect(id).To(Equal(uint(7)))
			})
		})

		When("the reference dangles", func() {
			BeforeEach(func() {
				id := uint(99)
				pharm.TxPharmID = &id
				fakeLedger.GetByIDReturns(repository.Transaction{}, repository.ErrTransactionNotFound)
			})

			It("returns empty without an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(txString).To(Equal(""))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				id := uint(7)
				pharm.TxPharmID = &id
				fakeLedger.GetByIDReturns(repository.Transaction{}, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("PropsTx / FilesTx", func() {
		BeforeEach(func() {
			propsID := uint(11)
			filesID := uint(12)
			pharm.TxPropsID = &propsID
			pharm.TxFilesID = &filesID

			fakeLedger.GetByIDStub = func(ctx context.Context, id uint) (repository.Transaction, error) {
				return repository.Transaction{ID: id, Tx: fmt.Sprintf("0x%d", id)}, nil
			}
		})

		It("resolves each slot independently", func() {
			propsTx, err := registrar.PropsTx(ctx, pharm)
			Expect(err).NotTo(HaveOccurred())
			Expect(propsTx).To(Equal("0x11"))

			filesTx, err := registrar.FilesTx(ctx, pharm)
			Expect(err).NotTo(HaveOccurred())
			Expect(filesTx).To(Equal("0x12"))
		})
	})

	Describe("Lookup", func() {
		var (
			scope repository.Scope
			found *core.Pharmacy
			err   error
		)

		BeforeEach(func() {
			scope = repository.Scope{UserUUID: "user-1"}
		})

		JustBeforeEach(func() {
			found, err = registrar.Lookup(ctx, scope, "ph-uuid-1")
		})

		When("the row exists within the scope", func() {
			BeforeEach(func() {
				fakePharmacies.GetByUUIDReturns(repository.Pharmacy{
					ID:         42,
					UUID:       "ph-uuid-1",
					UserUUID:   "user-1",
					Name:       "Green Cross",
					EthAddress: "0x1",
					JSONProps:  []byte(`[{"id":101,"name":"region","value":"north","eth_address":"0x1"}]`),
				}, nil)
			})

			It("returns the aggregate with readable snapshots", func() {
				Expect(err).NotTo(HaveOccurred())

				_, argScope, argUUID := fakePharmacies.GetByUUIDArgsForCall(0)
				Expect(argScope).To(Equal(scope))
				Expect(argUUID).To(Equal("ph-uuid-1"))

				Expect(found.Name).To(Equal("Green Cross"))
				Expect(found.PropsBatched()).To(HaveLen(1))
				Expect(found.FilesBatched()).To(BeEmpty())
			})
		})

		When("the row is outside the scope", func() {
			BeforeEach(func() {
				fakePharmacies.GetByUUIDReturns(repository.Pharmacy{}, repository.ErrPharmacyNotFound)
			})

			It("returns not found", func() {
				Expect(err).To(MatchError(repository.ErrPharmacyNotFound))
				Expect(found).To(BeNil())
			})
		})
	})

	Describe("AddExpertise", func() {
		var (
			expertise repository.Expertise
			err       error
		)

		JustBeforeEach(func() {
			expertise, err = registrar.AddExpertise(ctx, pharm)
		})

		When("persistence succeeds", func() {
			It("saves a record keyed by the pharmacy address", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeChildren.SaveExpertiseCallCount()).To(Equal(1))
				_, saved := fakeChildren.SaveExpertiseArgsForCall(0)
				Expect(saved.EthAddressPharm).To(Equal("0x1"))
				Expect(saved.UID).To(HaveLen(32))
				Expect(expertise.UID).To(Equal(saved.UID))
			})
		})

		When("persistence fails", func() {
			BeforeEach(func() {
				fakeChildren.SaveExpertiseReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
