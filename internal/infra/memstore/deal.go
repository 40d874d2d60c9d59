package memstore

import (
	"context"
	"log/slog"
	"sync"

	"savesphere/internal/domain/deal"
	"savesphere/internal/infra"
)

// DealStore is the process-wide in-memory catalog. A single lock guards
// records and their per-user engagement sets, so counter increments and
// redemption-id minting cannot lose updates under concurrent requests.
// All reads hand out clones; store-owned records never escape.
type DealStore struct {
	logger *slog.Logger

	mu         sync.RWMutex
	deals      map[string]*deal.Deal
	order      []string // insertion order, the tie-break order of every sort
	verifiedBy map[string]map[string]struct{}
	flaggedBy  map[string]map[string]struct{}
}

func NewDealStore(logger *slog.Logger) *DealStore {
	return &DealStore{
		logger:     logger,
		deals:      make(map[string]*deal.Deal),
		verifiedBy: make(map[string]map[string]struct{}),
		flaggedBy:  make(map[string]map[string]struct{}),
	}
}

// Seed loads fixture deals, logging data-quality warnings the way the
// source app tolerates them.
func (s *DealStore) Seed(deals []*deal.Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range deals {
		if _, exists := s.deals[d.ID()]; exists {
			continue
		}
		for _, w := range d.Warnings() {
			s.logger.Warn("deal data-quality warning", "deal_id", d.ID(), "warning", w)
		}
		s.deals[d.ID()] = d.Clone()
		s.order = append(s.order, d.ID())
	}
}

func (s *DealStore) ListAll(_ context.Context) ([]*deal.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*deal.Deal, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.deals[id].Clone())
	}
	return out, nil
}

func (s *DealStore) FindByID(_ context.Context, id string) (*deal.Deal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.deals[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "deal "+id+" not found")
	}
	return d.Clone(), nil
}

func (s *DealStore) Create(_ context.Context, d *deal.Deal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.deals[d.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "deal "+d.ID()+" already exists")
	}
	s.deals[d.ID()] = d.Clone()
	s.order = append(s.order, d.ID())
	return nil
}

// Verify increments the verified counter, capped at one increment per
// user. Returns the current count and whether this call counted.
func (s *DealStore) Verify(_ context.Context, dealID, userID string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deals[dealID]
	if !ok {
		return 0, false, infra.NewRepoErr(infra.KindNotFound, "deal "+dealID+" not found")
	}
	users := s.verifiedBy[dealID]
	if users == nil {
		users = make(map[string]struct{})
		s.verifiedBy[dealID] = users
	}
	if _, done := users[userID]; done {
		return d.Verified(), false, nil
	}
	users[userID] = struct{}{}
	d.IncrementVerified()
	return d.Verified(), true, nil
}

// Flag mirrors Verify for the flagged counter.
func (s *DealStore) Flag(_ context.Context, dealID, userID string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deals[dealID]
	if !ok {
		return 0, false, infra.NewRepoErr(infra.KindNotFound, "deal "+dealID+" not found")
	}
	users := s.flaggedBy[dealID]
	if users == nil {
		users = make(map[string]struct{})
		s.flaggedBy[dealID] = users
	}
	if _, done := users[userID]; done {
		return d.Flagged(), false, nil
	}
	users[userID] = struct{}{}
	d.IncrementFlagged()
	return d.Flagged(), true, nil
}

// EnsureRedemptionCode returns the deal's shared redemption identifier,
// minting one under the lock on first use so concurrent code displays
// agree on a single code.
func (s *DealStore) EnsureRedemptionCode(_ context.Context, dealID string, mint func() string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deals[dealID]
	if !ok {
		return "", infra.NewRepoErr(infra.KindNotFound, "deal "+dealID+" not found")
	}
	if d.RedemptionID() == "" {
		d.SetRedemptionID(mint())
	}
	return d.RedemptionID(), nil
}
