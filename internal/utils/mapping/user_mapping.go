package mapping

import (
	"database/sql"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Username:       d.Username,
		Name:           d.Name,
		Email:          nullString(d.Email),
		PasswordHash:   nullString(d.PasswordHash),
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: nullString(d.ProviderUserID),
		AuditFields:    ToModelAuditFields(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Username:       m.Username,
		Name:           m.Name,
		Email:          m.Email.String,
		PasswordHash:   m.PasswordHash.String,
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: m.ProviderUserID.String,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		DeletedAt:      m.DeletedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
