package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type ShippingCache interface {
	InvalidateCache(ctx context.Context) error
}

// CacheService drops cached rates and shipping prices on admin request.
type CacheService interface {
	InvalidateAll(ctx context.Context) error
}

type cacheService struct {
	rates    RateSource
	shipping ShippingCache
	logger   *zap.Logger
}

func NewCacheService(rates RateSource, shipping ShippingCache, logger *zap.Logger) CacheService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cacheService{rates: rates, shipping: shipping, logger: logger}
}

func (s *cacheService) InvalidateAll(ctx context.Context) error {
	var errs []error
	if err := s.rates.Invalidate(ctx); err != nil {
		errs = append(errs, fmt.Errorf("invalidate rates: %w", err))
	}
	if err := s.shipping.InvalidateCache(ctx); err != nil {
		errs = append(errs, fmt.Errorf("invalidate shipping: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.logger.Info("caches invalidated")
	return nil
}
