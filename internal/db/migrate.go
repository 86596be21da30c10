package db

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/pipelineqc/internal/sql"
)

const createMigrationsTable = `CREATE SCHEMA IF NOT EXISTS ` + Schema + `;
CREATE TABLE IF NOT EXISTS ` + Schema + `.schema_migrations (
    name       text PRIMARY KEY,
    applied_at timestamptz NOT NULL DEFAULT now()
)`

// ApplyMigrations brings the qc schema up to date. Each embedded migration
// not yet listed in qc.schema_migrations runs in its own transaction, in
// filename order. It returns the names applied by this call; an up-to-date
// schema yields none.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) ([]string, error) {
	names, err := migrationNames()
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("create migrations table: %w", err)
	}
	rows, err := pool.Query(ctx, "SELECT name FROM "+Schema+".schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", err)
	}
	done, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect applied migrations: %w", err)
	}
	applied := make(map[string]bool, len(done))
	for _, name := range done {
		applied[name] = true
	}

	var ran []string
	for _, name := range names {
		if applied[name] {
			continue
		}
		data, err := fs.ReadFile(embedsql.Migrations, "migrations/"+name)
		if err != nil {
			return ran, fmt.Errorf("read migration %s: %w", name, err)
		}

		log.Info().Str("schema", Schema).Str("migration", name).Msg("applying migration")
		err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(data)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, "INSERT INTO "+Schema+".schema_migrations (name) VALUES ($1)", name)
			return err
		})
		if err != nil {
			return ran, fmt.Errorf("execute migration %s: %w", name, err)
		}
		ran = append(ran, name)
	}

	log.Info().
		Str("schema", Schema).
		Int("applied", len(ran)).
		Int("total", len(names)).
		Msg("schema up to date")
	return ran, nil
}

// migrationNames lists the embedded .sql migrations sorted by filename.
func migrationNames() ([]string, error) {
	entries, err := fs.ReadDir(embedsql.Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
