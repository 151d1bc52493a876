// Package db defines the contract for PostgreSQL database management.
// The implementation lives in internal/iodb.
package db

import (
	"context"

	"github.com/gnames/gnoccur/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines the interface for basic database management
// operations. It provides connection lifecycle management and exposes
// the pgxpool.Pool for higher-level components (schema manager,
// exporter) to execute their specialized SQL operations internally.
//
// Pool() enables components to use performance-critical features such
// as CopyFrom for bulk inserts; schema creation is handled by GORM
// AutoMigrate via the schema manager.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool for high-level
	// components to execute specialized SQL operations.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public
	// schema. Used to decide whether an export overwrites existing data.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema.
	// Used when overwriting the tables of a previous run.
	DropAllTables(ctx context.Context) error
}
