// Package migrations applies the schema shipped inside the binary.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"ojitos/pkg/logger"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

// FS returns the migration files rooted at their directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedMigrations, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// Up applies every pending migration.
func Up(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS())
	if err != nil {
		return fmt.Errorf("migrations provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, res := range results {
		log.Info("migration applied",
			logger.NewField("version", res.Source.Version),
			logger.NewField("duration", res.Duration),
		)
	}
	return nil
}
