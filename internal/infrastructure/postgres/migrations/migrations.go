// Package migrations aplica el esquema SQL embebido en orden de versión.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Migration un archivo NNN_nombre.sql.
type Migration struct {
	Version int
	Name    string
	UpSQL   string
}

// Load devuelve las migraciones embebidas ordenadas por versión.
func Load() ([]Migration, error) {
	files, err := fs.ReadDir(migrationsFS, "sql")
	if err != nil {
		return nil, err
	}
	var list []Migration
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := migrationsFS.ReadFile("sql/" + f.Name())
		if err != nil {
			return nil, err
		}
		var v int
		if _, err := fmt.Sscanf(f.Name(), "%d_", &v); err != nil {
			return nil, fmt.Errorf("nombre de migración inválido %s: %w", f.Name(), err)
		}
		list = append(list, Migration{Version: v, Name: f.Name(), UpSQL: string(data)})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Version < list[j].Version })
	return list, nil
}

// Migrate aplica las migraciones pendientes en una sola transacción y devuelve las aplicadas.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]Migration, error) {
	list, err := Load()
	if err != nil {
		return nil, err
	}
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return nil, fmt.Errorf("create schema_version: %w", err)
	}

	var current int
	err = tx.QueryRow(ctx, `SELECT version FROM schema_version LIMIT 1`).Scan(&current)
	if err == pgx.ErrNoRows {
		if _, err := tx.Exec(ctx, `INSERT INTO schema_version (version) VALUES (0)`); err != nil {
			return nil, fmt.Errorf("init schema_version: %w", err)
		}
		current = 0
	} else if err != nil {
		return nil, fmt.Errorf("read schema_version: %w", err)
	}

	var applied []Migration
	for _, m := range list {
		if m.Version <= current {
			continue
		}
		if _, err := tx.Exec(ctx, m.UpSQL); err != nil {
			return nil, fmt.Errorf("migración %s: %w", m.Name, err)
		}
		if _, err := tx.Exec(ctx, `UPDATE schema_version SET version = $1`, m.Version); err != nil {
			return nil, fmt.Errorf("update schema_version: %w", err)
		}
		current = m.Version
		applied = append(applied, m)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return applied, nil
}
