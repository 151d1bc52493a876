package gnoccur

import (
	"context"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations. Schema management is idempotent - safe to run multiple
// times.
type SchemaManager interface {
	// Create creates the database schema using GORM AutoMigrate.
	// Also applies collation settings for correct species name sorting.
	Create(ctx context.Context) error
}
