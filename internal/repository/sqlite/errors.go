package sqlite

import (
	"errors"

	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// constraintCode returns the extended SQLite result code when err is a
// constraint violation reported by the driver, or 0 otherwise.
//
// Extended codes tell the violations apart:
//   - SQLITE_CONSTRAINT_UNIQUE     → duplicate username
//   - SQLITE_CONSTRAINT_FOREIGNKEY → author does not exist
//   - SQLITE_CONSTRAINT_CHECK      → blank title slipped past validation
func constraintCode(err error) int {
	var sqliteErr *moderncsqlite.Error
	if !errors.As(err, &sqliteErr) {
		return 0
	}
	switch code := sqliteErr.Code(); code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE,
		sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
		sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY,
		sqlite3.SQLITE_CONSTRAINT_CHECK,
		sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return code
	default:
		return 0
	}
}
