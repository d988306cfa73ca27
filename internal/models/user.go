package models

import (
	"database/sql"
	"time"
)

// User is the persisted row of the users table.
type User struct {
	UserID         string         `db:"user_id"`
	Username       string         `db:"username"`
	Name           string         `db:"name"`
	Email          sql.NullString `db:"email"`
	PasswordHash   sql.NullString `db:"password_hash"` // NULL for users who only sign in externally
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
