package repomanager

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/dmitrijs2005/videoclub/internal/dbx"
	"github.com/dmitrijs2005/videoclub/internal/server/migrations"
	"github.com/dmitrijs2005/videoclub/internal/server/repositories/movies"
	"github.com/dmitrijs2005/videoclub/internal/server/repositories/rentals"
	"github.com/dmitrijs2005/videoclub/internal/server/repositories/users"
)

// SQLiteRepositoryManager vends SQLite-backed repositories for development
// and tests.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Movies(db dbx.DBTX) movies.Repository {
	return movies.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Rentals(db dbx.DBTX) rentals.Repository {
	return rentals.NewSQLiteRepository(db)
}

// RunMigrations applies the embedded SQLite migrations.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "sqlite3", migrations.DirSQLite)
}

func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}
