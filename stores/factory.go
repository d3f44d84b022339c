package stores

import (
	"fmt"
)

// NewStore creates a new artifact store based on the configuration
func NewStore(config *StoreConfig) (ArtifactStore, error) {
	switch config.Type {
	case "sqlite":
		return NewSQLiteStore(config)
	case "postgres":
		return NewPostgresStore(config)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}

// NewSQLiteStoreDefault creates a SQLite store with default settings
func NewSQLiteStoreDefault() (ArtifactStore, error) {
	return NewSQLiteStoreSimple("heriscience.sqlite")
}
