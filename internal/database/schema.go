package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the DDL for the catalog tables.
func Schema() string {
	return schemaSQL
}

// ApplySchema creates missing catalog objects. Every statement is idempotent,
// so it is safe to run on each start-up.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
