// Package memory keeps users and transactions in process memory. It backs the
// demo mode, where data lives only as long as the server.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
)

// Store implements both the transaction and user repositories.
type Store struct {
	mu sync.RWMutex

	// per owner, in insertion order
	transactions map[string][]domain.Transaction
	users        map[string]domain.User
	byUsername   map[string]string
	byProvider   map[string]string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		transactions: make(map[string][]domain.Transaction),
		users:        make(map[string]domain.User),
		byUsername:   make(map[string]string),
		byProvider:   make(map[string]string),
	}
}

// NewRepositoryProvider wires a fresh in-memory store into both repository slots.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	s := NewStore()
	return portsrepo.RepositoryProvider{TransactionRepo: s, UserRepo: s}
}

var (
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.UserRepositoryFacade        = (*Store)(nil)
)

// ListTransactionsByOwner returns a copy of the owner's transactions, newest first.
func (s *Store) ListTransactionsByOwner(_ context.Context, ownerID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.transactions[ownerID]
	out := make([]domain.Transaction, len(stored))
	for i, t := range stored {
		out[len(stored)-1-i] = t
	}
	return out, nil
}

func (s *Store) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.transactions[txn.OwnerID] {
		if t.TransactionID == txn.TransactionID {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, txn.TransactionID)
		}
	}
	s.transactions[txn.OwnerID] = append(s.transactions[txn.OwnerID], txn)
	return nil
}

func (s *Store) DeleteTransaction(_ context.Context, ownerID, transactionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.transactions[ownerID]
	for i, t := range stored {
		if t.TransactionID == transactionID {
			kept := make([]domain.Transaction, 0, len(stored)-1)
			kept = append(kept, stored[:i]...)
			s.transactions[ownerID] = append(kept, stored[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *Store) SaveUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[user.Username]; taken {
		return fmt.Errorf("%w: user %s already exists", apperrors.ErrDuplicate, user.Username)
	}
	if _, exists := s.users[user.UserID]; exists {
		return fmt.Errorf("%w: user %s already exists", apperrors.ErrDuplicate, user.UserID)
	}
	s.users[user.UserID] = user
	s.byUsername[user.Username] = user.UserID
	if user.ProviderUserID != "" {
		s.byProvider[providerKey(user.AuthProvider, user.ProviderUserID)] = user.UserID
	}
	return nil
}

func (s *Store) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(userID)
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(s.byUsername[username])
}

func (s *Store) FindUserByProvider(_ context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(s.byProvider[providerKey(provider, providerUserID)])
}

// lookup expects s.mu to be held.
func (s *Store) lookup(userID string) (*domain.User, error) {
	user, ok := s.users[userID]
	if !ok || user.DeletedAt != nil {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func providerKey(provider domain.AuthProvider, subject string) string {
	return string(provider) + ":" + subject
}
