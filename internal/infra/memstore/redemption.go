package memstore

import (
	"context"
	"sync"

	"savesphere/internal/domain/deal"
	"savesphere/internal/domain/redemption"
)

type redemptionKey struct {
	dealID string
	userID string
}

// RedemptionStore keys lifecycle records by (deal, user). Transitions run
// inside Mutate under the store lock, the in-memory equivalent of a
// per-record compare-and-swap.
type RedemptionStore struct {
	mu   sync.RWMutex
	recs map[redemptionKey]*redemption.Redemption
}

func NewRedemptionStore() *RedemptionStore {
	return &RedemptionStore{recs: make(map[redemptionKey]*redemption.Redemption)}
}

// Find returns the pair's current record, or a fresh Available one when
// the user has never acted on the deal. The fresh record is not stored.
func (s *RedemptionStore) Find(_ context.Context, dealID, userID string, dealType deal.Type) (*redemption.Redemption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.recs[redemptionKey{dealID, userID}]; ok {
		return cloneRedemption(r), nil
	}
	return redemption.New(dealID, userID, dealType), nil
}

// Mutate runs a transition atomically, creating the Available record on
// first touch, and returns the resulting snapshot.
func (s *RedemptionStore) Mutate(_ context.Context, dealID, userID string, dealType deal.Type, fn func(*redemption.Redemption) error) (*redemption.Redemption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := redemptionKey{dealID, userID}
	r, ok := s.recs[key]
	if !ok {
		r = redemption.New(dealID, userID, dealType)
	}
	if err := fn(r); err != nil {
		return cloneRedemption(r), err
	}
	s.recs[key] = r
	return cloneRedemption(r), nil
}

func cloneRedemption(r *redemption.Redemption) *redemption.Redemption {
	return redemption.Reconstruct(r.DealID(), r.UserID(), r.DealType(), r.State(), r.Code(), r.UpdatedAt())
}
