package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	dbConnEnvKey     = "DB_CONNECTION_URL"
	uploadRootEnvKey = "UPLOAD_ROOT"
)

type App struct {
	DBConnectionURL string
	UploadRoot      string
}

func NewApp() (App, error) {

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	uploadRoot, ok := os.LookupEnv(uploadRootEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, uploadRootEnvKey)
	}

	return App{
		DBConnectionURL: dbConn,
		UploadRoot:      uploadRoot,
	}, nil
}
