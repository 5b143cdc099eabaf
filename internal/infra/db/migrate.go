package db

import (
	"context"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"atlas-hotel/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrate applies every *.sql file of migrations not yet recorded in
// schema_migrations, in lexical order, each in its own transaction.
// It returns the versions it applied.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS) ([]string, error) {
	if _, err := pool.Exec(ctx, createMigrationsTable); err != nil {
		return nil, errs.Wrap(err, "failed to create schema_migrations")
	}

	names, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return nil, errs.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)

	applied := make([]string, 0, len(names))
	for _, name := range names {
		version := strings.TrimSuffix(name, ".sql")
		ok, err := applyMigration(ctx, pool, migrations, name, version)
		if err != nil {
			return applied, err
		}
		if ok {
			slog.Info("migration applied", "version", version)
			applied = append(applied, version)
		}
	}
	return applied, nil
}

func applyMigration(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS, name, version string) (bool, error) {
	body, err := fs.ReadFile(migrations, name)
	if err != nil {
		return false, errs.Wrapf(err, "failed to read migration %s", name)
	}

	done := false
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, version,
		).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return nil
		}
		if _, err := tx.Exec(ctx, string(body)); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return err
		}
		done = true
		return nil
	})
	if err != nil {
		return false, errs.Wrapf(err, "failed to apply migration %s", name)
	}
	return done, nil
}
