// Package sqlite stores users and transactions in a local SQLite file through
// the pure-Go modernc driver. Timestamps are kept as Unix nanoseconds.
package sqlite

import (
	"database/sql"
	"strings"
	"time"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

func toUnixNano(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromUnixNano(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}

// modernc reports constraint failures only through the message text
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
