package cmd

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"pharmreg/internal/config"
	"pharmreg/internal/db"
	"pharmreg/internal/repository"
	"pharmreg/pkg/log"
)

// Start connects to the backing store and brings the schema up to date. The
// registration core is consumed as a library; there is no serving surface
// here.
func Start() error {
	logger := log.NewZapLogger("pharmreg", zapcore.InfoLevel)

	// .env is optional, real environments set the variables directly
	_ = godotenv.Load()

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	err = dbConn.MigrateTable(
		&repository.Transaction{},
		&repository.Pharmacy{},
		&repository.PharmacyFile{},
		&repository.PharmacyProperty{},
		&repository.Expertise{})
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	logger.Infow("schema migrated", "upload_root", config.UploadRoot)
	return nil
}
