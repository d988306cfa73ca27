// Package cache decorates repositories with an in-process ristretto cache.
package cache

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/dgraph-io/ristretto"
)

// TransactionRepository caches per-owner transaction lists in front of another
// repository. Writes bump the owner's generation, so lists cached before the
// write are never served again and age out through the TTL.
type TransactionRepository struct {
	next  portsrepo.TransactionRepositoryFacade
	cache *ristretto.Cache
	ttl   time.Duration

	mu          sync.Mutex
	generations map[string]uint64
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// NewTransactionRepository wraps next with a list cache whose entries live for ttl.
func NewTransactionRepository(next portsrepo.TransactionRepositoryFacade, ttl time.Duration) (*TransactionRepository, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        10000,
		MaxCost:            10000,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction cache: %w", err)
	}
	return &TransactionRepository{
		next:        next,
		cache:       c,
		ttl:         ttl,
		generations: make(map[string]uint64),
	}, nil
}

func (r *TransactionRepository) ListTransactionsByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	key := r.listKey(ownerID)
	if v, ok := r.cache.Get(key); ok {
		if txns, ok := v.([]domain.Transaction); ok {
			return slices.Clone(txns), nil
		}
	}

	txns, err := r.next.ListTransactionsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	// cost 1 per list, MaxCost bounds the number of cached owners
	r.cache.SetWithTTL(key, slices.Clone(txns), 1, r.ttl)
	r.cache.Wait()
	return txns, nil
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	if err := r.next.SaveTransaction(ctx, txn); err != nil {
		return err
	}
	r.invalidate(txn.OwnerID)
	return nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	if err := r.next.DeleteTransaction(ctx, ownerID, transactionID); err != nil {
		return err
	}
	r.invalidate(ownerID)
	return nil
}

// Close releases the cache's background goroutines.
func (r *TransactionRepository) Close() {
	r.cache.Close()
}

func (r *TransactionRepository) listKey(ownerID string) string {
	r.mu.Lock()
	gen := r.generations[ownerID]
	r.mu.Unlock()
	return fmt.Sprintf("txns:%s:%d", ownerID, gen)
}

func (r *TransactionRepository) invalidate(ownerID string) {
	r.mu.Lock()
	old := fmt.Sprintf("txns:%s:%d", ownerID, r.generations[ownerID])
	r.generations[ownerID]++
	r.mu.Unlock()
	r.cache.Del(old)
}
