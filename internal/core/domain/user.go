package domain

import "time"

// AuthProvider identifies how a user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a user of the application in the domain.
type User struct {
	UserID         string       `json:"userID"` // Primary Key (e.g., UUID)
	Username       string       `json:"username"`
	Name           string       `json:"name"`
	Email          string       `json:"email,omitempty"`
	PasswordHash   string       `json:"-"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"` // Subject issued by the external provider, empty for local users
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}

// GoogleUserInfo is the subset of a validated Google ID token the app relies on.
type GoogleUserInfo struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
