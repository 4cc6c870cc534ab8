// Package rates fetches AMD exchange rates and derives the EUR/USD cross-rate.
// A failed fetch never surfaces as an error: the provider answers with the
// published fallback figures instead.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"carimport/internal/cache"
	"carimport/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Fallback figures used whenever the live source cannot be read.
var (
	FallbackAMDPerUSD = decimal.RequireFromString("380.33")
	FallbackAMDPerEUR = decimal.RequireFromString("443.24")
	FallbackEURPerUSD = decimal.RequireFromString("1.1774")
)

const (
	DefaultTimeout  = 5 * time.Second
	DefaultCacheTTL = 5 * time.Minute

	crossRatePlaces = 4
	maxBodyBytes    = 1 << 20
)

// CacheKey is where the last live rates are stored.
var CacheKey = cache.GenerateKey("rates", "amd")

// Fetcher is what the calculator and the refresher depend on.
type Fetcher interface {
	Fetch(ctx context.Context) model.ExchangeRates
}

type Provider struct {
	endpoint string
	client   *http.Client
	store    cache.Store
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

// Option configures Provider.
type Option func(*Provider)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		if client != nil {
			p.client = client
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			// copy so a client passed to WithHTTPClient is left untouched
			client := *p.client
			client.Timeout = d
			p.client = &client
		}
	}
}

// WithCache stores successful live results in store for ttl.
func WithCache(store cache.Store, ttl time.Duration) Option {
	return func(p *Provider) {
		p.store = store
		if ttl > 0 {
			p.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		if now != nil {
			p.now = now
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProvider creates a Provider reading the given endpoint.
func NewProvider(endpoint string, opts ...Option) *Provider {
	p := &Provider{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
		ttl:      DefaultCacheTTL,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// sourcePayload is the wire format of the rate source: AMD per unit.
type sourcePayload struct {
	USD *decimal.Decimal `json:"USD"`
	EUR *decimal.Decimal `json:"EUR"`
}

// Fetch returns cached rates when fresh, otherwise live rates, otherwise the
// fallback pair.
func (p *Provider) Fetch(ctx context.Context) model.ExchangeRates {
	if p.store != nil {
		var cached model.ExchangeRates
		found, err := p.store.Get(ctx, CacheKey, &cached)
		if err != nil {
			p.logger.Warn("rates cache read failed", zap.Error(err))
		} else if found {
			return cached
		}
	}
	return p.Refresh(ctx)
}

// Refresh bypasses the cache and queries the live source.
func (p *Provider) Refresh(ctx context.Context) model.ExchangeRates {
	rates, err := p.fetchLive(ctx)
	if err != nil {
		p.logger.Warn("exchange rate fetch failed, using fallback", zap.Error(err))
		return Fallback(p.now())
	}

	if p.store != nil {
		if err := p.store.Set(ctx, CacheKey, rates, p.ttl); err != nil {
			p.logger.Warn("rates cache write failed", zap.Error(err))
		}
	}
	return rates
}

// Invalidate drops the cached rates.
func (p *Provider) Invalidate(ctx context.Context) error {
	if p.store == nil {
		return nil
	}
	return p.store.Delete(ctx, CacheKey)
}

func (p *Provider) fetchLive(ctx context.Context) (model.ExchangeRates, error) {
	if p.endpoint == "" {
		return model.ExchangeRates{}, errors.New("rate source not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return model.ExchangeRates{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return model.ExchangeRates{}, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return model.ExchangeRates{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.ExchangeRates{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload sourcePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.ExchangeRates{}, fmt.Errorf("unmarshal response: %w", err)
	}
	if payload.USD == nil || payload.EUR == nil {
		return model.ExchangeRates{}, errors.New("payload missing USD or EUR")
	}
	if !payload.USD.IsPositive() || !payload.EUR.IsPositive() {
		return model.ExchangeRates{}, fmt.Errorf("non-positive rates USD=%s EUR=%s", payload.USD, payload.EUR)
	}

	fetchedAt := p.now().UTC()
	return model.ExchangeRates{
		AMDPerUSD:    *payload.USD,
		AMDPerEUR:    *payload.EUR,
		EURPerUSD:    CrossRate(*payload.USD, *payload.EUR),
		USDFetchedAt: fetchedAt,
		EURFetchedAt: fetchedAt,
	}, nil
}

// CrossRate derives the EUR/USD figure as amdPerEur / amdPerUsd, 4 places.
func CrossRate(amdPerUSD, amdPerEUR decimal.Decimal) decimal.Decimal {
	return amdPerEUR.DivRound(amdPerUSD, crossRatePlaces)
}

// Fallback is the fixed rate set. Its cross-rate is the published constant,
// not one derived from the fallback AMD figures.
func Fallback(at time.Time) model.ExchangeRates {
	at = at.UTC()
	return model.ExchangeRates{
		AMDPerUSD:    FallbackAMDPerUSD,
		AMDPerEUR:    FallbackAMDPerEUR,
		EURPerUSD:    FallbackEURPerUSD,
		USDFetchedAt: at,
		EURFetchedAt: at,
		Fallback:     true,
	}
}
