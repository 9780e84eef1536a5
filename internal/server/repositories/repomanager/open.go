package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/videoclub/internal/dbx"
)

// Open connects to the configured database, verifies it with a ping,
// applies migrations and returns the handle with a matching manager.
//
// driver is "pgx" or "sqlite". SQLite connections enforce foreign keys and
// the pool is pinned to a single connection: in-memory databases exist per
// connection and writers serialize anyway.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	var m RepositoryManager

	switch driver {
	case "pgx":
		m = NewPostgresRepositoryManager()
	case "sqlite":
		m = NewSQLiteRepositoryManager()
		dsn = dbx.SQLiteDSN(dsn)
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	if driver == "sqlite" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, m, nil
}
