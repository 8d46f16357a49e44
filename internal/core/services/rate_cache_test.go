package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/newswire_macros/internal/apperrors"
	"github.com/SscSPs/newswire_macros/internal/core/domain"
	portssvc "github.com/SscSPs/newswire_macros/internal/core/ports/services"
	"github.com/SscSPs/newswire_macros/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var cacheEpoch = time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

type RateCacheTestSuite struct {
	suite.Suite
	provider *MockRateProvider
	clock    *fakeClock
	cache    portssvc.ExchangeRateSvcFacade
}

func (suite *RateCacheTestSuite) SetupTest() {
	suite.provider = new(MockRateProvider)
	suite.clock = newFakeClock(cacheEpoch)
	suite.cache = services.NewRateCache(suite.provider, 12*time.Hour, services.WithClock(suite.clock.Now))
}

func newTable() *domain.RateTable {
	return &domain.RateTable{
		Base:      "EUR",
		Rates:     rates(map[string]string{"USD": "1.1", "AUD": "1.65", "NZD": "1.815", "XXX": "0"}),
		FetchedAt: cacheEpoch,
	}
}

func (suite *RateCacheTestSuite) TestGetAllRates_ServesSameTableWithinTTL() {
	ctx := context.Background()
	suite.provider.On("FetchRates", mock.Anything).Return(newTable(), nil).Once()

	first, err := suite.cache.GetAllRates(ctx)
	suite.Require().NoError(err)
	suite.Equal(cacheEpoch.Add(12*time.Hour), first.ExpiresAt)

	suite.clock.Advance(11*time.Hour + 59*time.Minute)
	second, err := suite.cache.GetAllRates(ctx)
	suite.Require().NoError(err)

	suite.Same(first, second)
	suite.provider.AssertNumberOfCalls(suite.T(), "FetchRates", 1)
}

func (suite *RateCacheTestSuite) TestGetAllRates_RefetchesOnceAfterExpiry() {
	ctx := context.Background()
	suite.provider.On("FetchRates", mock.Anything).Return(newTable(), nil).Once()
	suite.provider.On("FetchRates", mock.Anything).Return(newTable(), nil).Once()

	first, err := suite.cache.GetAllRates(ctx)
	suite.Require().NoError(err)

	suite.clock.Advance(12 * time.Hour)
	second, err := suite.cache.GetAllRates(ctx)
	suite.Require().NoError(err)
	third, err := suite.cache.GetAllRates(ctx)
	suite.Require().NoError(err)

	suite.NotSame(first, second)
	suite.Same(second, third)
	suite.provider.AssertNumberOfCalls(suite.T(), "FetchRates", 2)
}

func (suite *RateCacheTestSuite) TestGetAllRates_ConcurrentMissesFetchOnce() {
	suite.provider.On("FetchRates", mock.Anything).
		After(50*time.Millisecond).
		Return(newTable(), nil).Once()

	var wg sync.WaitGroup
	results := make([]*domain.RateTable, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			table, err := suite.cache.GetAllRates(context.Background())
			suite.NoError(err)
			results[i] = table
		}(i)
	}
	wg.Wait()

	for _, table := range results {
		suite.Same(results[0], table)
	}
	suite.provider.AssertNumberOfCalls(suite.T(), "FetchRates", 1)
}

func (suite *RateCacheTestSuite) TestGetAllRates_FailureIsNotCached() {
	ctx := context.Background()
	suite.provider.On("FetchRates", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	suite.provider.On("FetchRates", mock.Anything).Return(newTable(), nil).Once()

	table, err := suite.cache.GetAllRates(ctx)
	suite.Require().Error(err)
	suite.Nil(table)
	suite.ErrorIs(err, apperrors.ErrRateLookup)

	table, err = suite.cache.GetAllRates(ctx)
	suite.Require().NoError(err)
	suite.NotNil(table)
	suite.provider.AssertNumberOfCalls(suite.T(), "FetchRates", 2)
}

func (suite *RateCacheTestSuite) TestGetAllRates_NoStaleServeAfterExpiry() {
	ctx := context.Background()
	suite.provider.On("FetchRates", mock.Anything).Return(newTable(), nil).Once()
	suite.provider.On("FetchRates", mock.Anything).Return(nil, apperrors.ErrRateLookup).Once()

	_, err := suite.cache.GetAllRates(ctx)
	suite.Require().NoError(err)

	suite.clock.Advance(13 * time.Hour)
	table, err := suite.cache.GetAllRates(ctx)
	suite.ErrorIs(err, apperrors.ErrRateLookup)
	suite.Nil(table)
}

func (suite *RateCacheTestSuite) TestInvalidate_ForcesRefetch() {
	ctx := context.Background()
	suite.provider.On("FetchRates", mock.Anything).Return(newTable(), nil).Twice()

	_, err := suite.cache.GetAllRates(ctx)
	suite.Require().NoError(err)
	suite.cache.Invalidate()
	_, err = suite.cache.GetAllRates(ctx)
	suite.Require().NoError(err)

	suite.provider.AssertNumberOfCalls(suite.T(), "FetchRates", 2)
}

func (suite *RateCacheTestSuite) TestGetRate_ConvertsFromIntoTo() {
	ctx := context.Background()
	suite.provider.On("FetchRates", mock.Anything).Return(newTable(), nil).Once()

	// 1 USD = 1.65 / 1.1 AUD
	rate, err := suite.cache.GetRate(ctx, "usd", "AUD")
	suite.Require().NoError(err)
	suite.True(decimal.RequireFromString("1.5").Equal(rate), rate.String())

	rate, err = suite.cache.GetRate(ctx, "AUD", "NZD")
	suite.Require().NoError(err)
	suite.True(decimal.RequireFromString("1.1").Equal(rate), rate.String())

	// the base currency is implied
	rate, err = suite.cache.GetRate(ctx, "EUR", "USD")
	suite.Require().NoError(err)
	suite.True(decimal.RequireFromString("1.1").Equal(rate), rate.String())
}

func (suite *RateCacheTestSuite) TestGetRate_Errors() {
	ctx := context.Background()
	suite.provider.On("FetchRates", mock.Anything).Return(newTable(), nil).Once()

	_, err := suite.cache.GetRate(ctx, "US", "AUD")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.cache.GetRate(ctx, "USD", "GBP")
	suite.ErrorIs(err, apperrors.ErrRateLookup)

	_, err = suite.cache.GetRate(ctx, "XXX", "AUD")
	suite.ErrorIs(err, apperrors.ErrRateLookup)
}

func (suite *RateCacheTestSuite) TestSnapshot_AdoptedWhenFresh() {
	ctx := context.Background()
	repo := new(MockRateSnapshotRepository)
	cache := services.NewRateCache(suite.provider, 12*time.Hour,
		services.WithClock(suite.clock.Now),
		services.WithSnapshotStore(repo))

	stored := newTable()
	stored.FetchedAt = cacheEpoch.Add(-2 * time.Hour)
	repo.On("FindLatestSnapshot", mock.Anything).Return(stored, nil).Once()

	table, err := cache.GetAllRates(ctx)
	suite.Require().NoError(err)
	suite.Same(stored, table)
	suite.Equal(cacheEpoch.Add(10*time.Hour), table.ExpiresAt)

	suite.provider.AssertNotCalled(suite.T(), "FetchRates", mock.Anything)
	repo.AssertExpectations(suite.T())
}

func (suite *RateCacheTestSuite) TestSnapshot_ExpiredIsReplacedAndSaved() {
	ctx := context.Background()
	repo := new(MockRateSnapshotRepository)
	cache := services.NewRateCache(suite.provider, 12*time.Hour,
		services.WithClock(suite.clock.Now),
		services.WithSnapshotStore(repo))

	stored := newTable()
	stored.FetchedAt = cacheEpoch.Add(-13 * time.Hour)
	repo.On("FindLatestSnapshot", mock.Anything).Return(stored, nil).Once()
	suite.provider.On("FetchRates", mock.Anything).Return(newTable(), nil).Once()
	repo.On("SaveSnapshot", mock.Anything, mock.AnythingOfType("domain.RateTable")).Return(errors.New("db down")).Once()

	table, err := cache.GetAllRates(ctx)
	suite.Require().NoError(err)
	suite.NotSame(stored, table)

	repo.AssertExpectations(suite.T())
	suite.provider.AssertExpectations(suite.T())
}

func (suite *RateCacheTestSuite) TestSnapshot_NotFoundFallsBackToProvider() {
	ctx := context.Background()
	repo := new(MockRateSnapshotRepository)
	cache := services.NewRateCache(suite.provider, 12*time.Hour,
		services.WithClock(suite.clock.Now),
		services.WithSnapshotStore(repo))

	repo.On("FindLatestSnapshot", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	suite.provider.On("FetchRates", mock.Anything).Return(newTable(), nil).Once()
	repo.On("SaveSnapshot", mock.Anything, mock.AnythingOfType("domain.RateTable")).Return(nil).Once()

	_, err := cache.GetAllRates(ctx)
	suite.Require().NoError(err)

	repo.AssertExpectations(suite.T())
}

func TestRateCacheTestSuite(t *testing.T) {
	suite.Run(t, new(RateCacheTestSuite))
}
