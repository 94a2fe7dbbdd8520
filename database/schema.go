package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrSchemaMissing is returned when the identities schema has not been applied.
var ErrSchemaMissing = errors.New("identities schema is missing")

const (
	tableExistsQuery = `SELECT to_regclass('public.identities') IS NOT NULL`

	uniqueEmailQuery = `SELECT EXISTS (
		SELECT 1 FROM pg_indexes
		WHERE schemaname = 'public' AND tablename = 'identities'
		  AND indexdef LIKE 'CREATE UNIQUE INDEX%(email)')`
)

// CheckSchema verifies that the identities table exists and enforces email
// uniqueness. It is used instead of Migrate when migrations are managed
// elsewhere.
func CheckSchema(ctx context.Context, dsn string) error {
	db, err := open(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	return checkSchema(ctx, db)
}

func checkSchema(ctx context.Context, db *sql.DB) error {
	var tableExists bool
	if err := db.QueryRowContext(ctx, tableExistsQuery).Scan(&tableExists); err != nil {
		return fmt.Errorf("failed to look up identities table: %w", err)
	}
	if !tableExists {
		return fmt.Errorf("%w: table identities not found", ErrSchemaMissing)
	}

	var unique bool
	if err := db.QueryRowContext(ctx, uniqueEmailQuery).Scan(&unique); err != nil {
		return fmt.Errorf("failed to look up identities indexes: %w", err)
	}
	if !unique {
		return fmt.Errorf("%w: no unique index on identities(email)", ErrSchemaMissing)
	}

	return nil
}
