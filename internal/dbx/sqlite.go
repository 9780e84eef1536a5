package dbx

import "strings"

const sqliteForeignKeys = "_pragma=foreign_keys(1)"

// SQLiteDSN returns dsn with foreign key enforcement switched on. SQLite
// leaves it off per connection unless asked, so every pooled connection
// must be opened with the pragma.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteForeignKeys
	}
	return dsn + "?" + sqliteForeignKeys
}
