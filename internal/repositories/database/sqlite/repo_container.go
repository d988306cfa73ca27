package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the SQLite-backed repositories.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: &TransactionRepository{BaseRepository{DB: db}},
		UserRepo:        &UserRepository{BaseRepository{DB: db}},
	}
}
