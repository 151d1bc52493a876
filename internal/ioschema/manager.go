// Package ioschema implements the SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"fmt"

	"github.com/gnames/gnoccur/pkg/db"
	"github.com/gnames/gnoccur/pkg/gnoccur"
	"github.com/gnames/gnoccur/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements the gnoccur.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) gnoccur.SchemaManager {
	return &manager{operator: op}
}

// Create creates the database schema using GORM AutoMigrate and
// applies collation settings for correct species name sorting.
func (m *manager) Create(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	if err := m.setCollation(ctx); err != nil {
		return err
	}

	return nil
}

// setCollation sets "C" collation on species name columns so sorting
// and comparison do not depend on the server locale.
func (m *manager) setCollation(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	type columnDef struct {
		table, column string
		varchar       int
	}

	columns := []columnDef{
		{"occurrences", "species", 255},
		{"occurrences", "scientific_name", 255},
		{"species_summaries", "species", 255},
		{"species_priorities", "species", 255},
	}

	qStr := `ALTER TABLE %s ALTER COLUMN %s ` +
		`TYPE VARCHAR(%d) COLLATE "C"`

	for _, col := range columns {
		q := fmt.Sprintf(qStr, col.table, col.column, col.varchar)
		if _, err := pool.Exec(ctx, q); err != nil {
			return CollationError(col.table, col.column, err)
		}
	}

	return nil
}
