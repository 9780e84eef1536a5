// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/dmitrijs2005/videoclub/internal/dbx"
	"github.com/dmitrijs2005/videoclub/internal/server/migrations"
)

// NewSQLite returns a fresh in-memory database with every migration applied,
// including the seed catalog. The pool is pinned to one connection because
// each ":memory:" connection is a separate database.
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", dbx.SQLiteDSN(":memory:"))
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("goose.SetDialect error: %v", err)
	}
	goose.SetLogger(goose.NopLogger())

	if err := goose.UpContext(context.Background(), db, migrations.DirSQLite); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	return db
}

// MovieID looks up a seeded title.
func MovieID(t testing.TB, db *sql.DB, title string) int64 {
	t.Helper()

	var id int64
	if err := db.QueryRow(`SELECT movie_id FROM movie WHERE title = ?`, title).Scan(&id); err != nil {
		t.Fatalf("movie %q: %v", title, err)
	}
	return id
}

// InsertUser adds a user row and returns its id.
func InsertUser(t testing.TB, db *sql.DB, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`INSERT INTO "user" (email, password) VALUES (?, 'x') RETURNING user_id`, email).Scan(&id)
	if err != nil {
		t.Fatalf("insert user %q: %v", email, err)
	}
	return id
}
