package service

import (
	"context"
	"time"

	"carimport/internal/model"

	"go.uber.org/zap"
)

// RateSource is the exchange-rate provider as the services see it.
type RateSource interface {
	Fetch(ctx context.Context) model.ExchangeRates
	Refresh(ctx context.Context) model.ExchangeRates
	Invalidate(ctx context.Context) error
}

// RateBroadcaster pushes rate updates to connected clients.
type RateBroadcaster interface {
	BroadcastRates(rates model.ExchangeRates)
}

type RatesService interface {
	Current(ctx context.Context) model.ExchangeRates
}

type ratesService struct {
	source RateSource
}

func NewRatesService(source RateSource) RatesService {
	return &ratesService{source: source}
}

func (s *ratesService) Current(ctx context.Context) model.ExchangeRates {
	return s.source.Fetch(ctx)
}

// RateRefresher periodically re-reads the live source and broadcasts the
// result, so the cache stays warm and subscribers see changes.
type RateRefresher struct {
	source      RateSource
	broadcaster RateBroadcaster
	interval    time.Duration
	logger      *zap.Logger
}

func NewRateRefresher(source RateSource, broadcaster RateBroadcaster, interval time.Duration, logger *zap.Logger) *RateRefresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &RateRefresher{source: source, broadcaster: broadcaster, interval: interval, logger: logger}
}

// Run refreshes once immediately and then on every tick until ctx is done.
func (r *RateRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var last model.ExchangeRates
	refresh := func() {
		current := r.source.Refresh(ctx)
		if ctx.Err() != nil {
			return
		}
		if sameRates(last, current) {
			return
		}
		last = current
		r.broadcaster.BroadcastRates(current)
		r.logger.Info("exchange rates broadcast",
			zap.String("amd_per_usd", current.AMDPerUSD.String()),
			zap.String("amd_per_eur", current.AMDPerEUR.String()),
			zap.Bool("fallback", current.Fallback))
	}

	refresh()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("rate refresher stopped")
			return
		case <-ticker.C:
			refresh()
		}
	}
}

func sameRates(a, b model.ExchangeRates) bool {
	return a.Fallback == b.Fallback &&
		a.AMDPerUSD.Equal(b.AMDPerUSD) &&
		a.AMDPerEUR.Equal(b.AMDPerEUR) &&
		a.EURPerUSD.Equal(b.EURPerUSD)
}
