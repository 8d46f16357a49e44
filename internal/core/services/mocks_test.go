package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/newswire_macros/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchRates(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockRateProvider) GetName() string {
	return "mock"
}

// --- Mock RateSnapshotRepository ---
type MockRateSnapshotRepository struct {
	mock.Mock
}

func (m *MockRateSnapshotRepository) FindLatestSnapshot(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockRateSnapshotRepository) SaveSnapshot(ctx context.Context, table domain.RateTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

// --- Mock ExchangeRateSvcFacade ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetAllRates(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockExchangeRateService) GetRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, fromCode, toCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExchangeRateService) Invalidate() {
	m.Called()
}

// --- Mock VocabularyProvider ---
type MockVocabularyProvider struct {
	mock.Mock
}

func (m *MockVocabularyProvider) ListCategories(ctx context.Context) ([]domain.CategoryVocabulary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryVocabulary), args.Error(1)
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{t: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func rates(pairs map[string]string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(pairs))
	for code, v := range pairs {
		out[code] = decimal.RequireFromString(v)
	}
	return out
}
