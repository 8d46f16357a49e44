package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	v.Set("PORT", "8080")
	v.Set("JWT_SECRET", "test-secret-key-that-is-long-enough")
	v.Set("RATE_SERVICE_URL", DefaultRateServiceURL)
	v.Set("RATE_SYMBOLS", DefaultRateSymbols)
	v.Set("RATE_CACHE_TTL", "12h")
	v.Set("RATE_REQUEST_TIMEOUT", "5s")
	v.Set("MACRO_REPLACEMENT_FIELDS", DefaultReplacementFields)
	v.Set("RATE_LIMIT", "60-M")
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper())
	require.NoError(t, err)

	assert.Equal(t, 12*time.Hour, cfg.RateCacheTTL)
	assert.Equal(t, 5*time.Second, cfg.RateRequestTimeout)
	assert.Equal(t, []string{"USD", "AUD", "CHF", "NZD", "CNY", "GBP", "EUR", "JPY"}, cfg.RateSymbols)
	assert.Equal(t, []string{"body_html", "body_text", "abstract", "headline", "slugline"}, cfg.ReplacementFields)
}

func TestFromViper_InvalidDurationFallsBack(t *testing.T) {
	v := newTestViper()
	v.Set("RATE_CACHE_TTL", "soon")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultRateCacheTTL, cfg.RateCacheTTL)
}

func TestFromViper_SymbolsAreNormalised(t *testing.T) {
	v := newTestViper()
	v.Set("RATE_SYMBOLS", " usd, aud ,")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"USD", "AUD"}, cfg.RateSymbols)
}

func TestFromViper_RejectsUnknownField(t *testing.T) {
	v := newTestViper()
	v.Set("MACRO_REPLACEMENT_FIELDS", "body_html,dateline")

	_, err := fromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dateline")
}

func TestFromViper_RejectsBadSymbol(t *testing.T) {
	v := newTestViper()
	v.Set("RATE_SYMBOLS", "USD,EURO")

	_, err := fromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
