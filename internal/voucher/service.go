package voucher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned by a Store when no voucher carries the code.
var ErrNotFound = errors.New("voucher not found")

// Store captures the lookups required by the voucher service.
type Store interface {
	RuleByCode(ctx context.Context, code string) (Rule, error)
	CountUsageByUser(ctx context.Context, code string, userID uuid.UUID) (int, error)
}

// PreviewResult describes the outcome of evaluating a voucher without mutating state.
type PreviewResult struct {
	Discount       decimal.Decimal
	EligibleAmount decimal.Decimal
	Code           string
}

// Service encapsulates voucher rules evaluation.
type Service struct {
	Store               Store
	Now                 func() time.Time
	DefaultPerUserLimit int
	Logger              *zerolog.Logger
}

// Preview performs a dry-run evaluation for the given cart context.
func (s *Service) Preview(ctx context.Context, code string, userID *uuid.UUID, cartTotal decimal.Decimal, items []Item) (PreviewResult, error) {
	if s == nil || s.Store == nil {
		return PreviewResult{}, errors.New("voucher service not configured")
	}
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return PreviewResult{}, fmt.Errorf("code is required: %w", ErrNotEligible)
	}
	rule, err := s.Store.RuleByCode(ctx, trimmed)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return PreviewResult{}, ErrNotEligible
		}
		return PreviewResult{}, err
	}
	rule.DefaultLimit = s.DefaultPerUserLimit

	limit := effectivePerUserLimit(rule)
	if userID != nil && limit > 0 {
		used, err := s.Store.CountUsageByUser(ctx, trimmed, *userID)
		if err != nil {
			return PreviewResult{}, err
		}
		rule.PerUserUsed = int32(used)
	}
	rule.EffectiveLimit = limit

	if err := rule.Validate(s.now(), cartTotal); err != nil {
		s.logger().Debug().Str("code", trimmed).Err(err).Msg("voucher_rejected")
		return PreviewResult{}, err
	}
	eligible := EligibleSubtotal(items, rule)
	if !eligible.IsPositive() {
		return PreviewResult{}, ErrNotEligible
	}
	discount, err := Compute(eligible, rule)
	if err != nil {
		return PreviewResult{}, fmt.Errorf("compute %s: %w", trimmed, err)
	}
	if !discount.IsPositive() {
		return PreviewResult{}, ErrNotEligible
	}
	s.logger().Debug().
		Str("code", trimmed).
		Str("kind", rule.Kind).
		Str("eligible", eligible.String()).
		Str("discount", discount.String()).
		Msg("voucher_preview")
	return PreviewResult{Discount: discount, EligibleAmount: eligible, Code: rule.Code}, nil
}

func (s *Service) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

var nopLogger = zerolog.Nop()

func (s *Service) logger() *zerolog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return &nopLogger
}

func effectivePerUserLimit(rule Rule) int32 {
	if rule.PerUserLimit != nil && *rule.PerUserLimit > 0 {
		return *rule.PerUserLimit
	}
	if rule.DefaultLimit > 0 {
		return int32(rule.DefaultLimit)
	}
	return 0
}

// MemoryStore is a Store backed by a map, keyed by upper-cased code.
type MemoryStore struct {
	mu    sync.RWMutex
	rules map[string]Rule
	usage map[string]map[uuid.UUID]int
}

// NewMemoryStore returns a store holding the provided rules.
func NewMemoryStore(rules ...Rule) *MemoryStore {
	m := &MemoryStore{rules: make(map[string]Rule), usage: make(map[string]map[uuid.UUID]int)}
	for _, r := range rules {
		m.Put(r)
	}
	return m
}

// Put adds or replaces a rule.
func (m *MemoryStore) Put(r Rule) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules[storeKey(r.Code)] = r
}

// RecordUsage increments the per-user usage counter for code.
func (m *MemoryStore) RecordUsage(code string, userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := storeKey(code)
	if m.usage[key] == nil {
		m.usage[key] = make(map[uuid.UUID]int)
	}
	m.usage[key][userID]++
}

// RuleByCode implements Store.
func (m *MemoryStore) RuleByCode(_ context.Context, code string) (Rule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rules[storeKey(code)]
	if !ok {
		return Rule{}, ErrNotFound
	}
	return r, nil
}

// CountUsageByUser implements Store.
func (m *MemoryStore) CountUsageByUser(_ context.Context, code string, userID uuid.UUID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.usage[storeKey(code)][userID], nil
}

func storeKey(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
