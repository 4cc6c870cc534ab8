// Package shipping resolves the inland-plus-ocean transport price of a vehicle
// from its pickup yard. The admin-managed directory is authoritative; a
// bundled Copart tariff covers the directory being down or incomplete.
package shipping

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carimport/internal/cache"
	"carimport/internal/model"
	"carimport/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultCacheTTL = 5 * time.Minute

	cachePrefix = "shipping"
)

// Directory is the live price source.
type Directory interface {
	FindPrice(ctx context.Context, city, auction, category string) (*model.ShippingCity, error)
	List(ctx context.Context, filter repository.ShippingCityFilter, page, limit int) ([]model.ShippingCity, int64, error)
}

// FallbackCity is one entry of the bundled tariff.
type FallbackCity struct {
	City     string
	State    string
	Port     string
	PriceUSD int64
}

// CityOption is a pickup city offered to the catalog's city picker.
type CityOption struct {
	City   string `json:"city"`
	State  string `json:"state"`
	Port   string `json:"port"`
	Source string `json:"source"`
}

// fallbackCategories are the vehicle sizes the bundled tariff was priced for.
var fallbackCategories = map[string]bool{
	model.CategorySedan:     true,
	model.CategoryCrossover: true,
	model.CategorySUV:       true,
}

type Resolver struct {
	directory Directory
	store     cache.Store
	ttl       time.Duration
	logger    *zap.Logger
	fallback  map[string]FallbackCity
}

// Option configures Resolver.
type Option func(*Resolver)

// WithCache stores live prices in store for ttl.
func WithCache(store cache.Store, ttl time.Duration) Option {
	return func(r *Resolver) {
		r.store = store
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a Resolver. directory may be nil, in which case only
// the bundled tariff is consulted.
func NewResolver(directory Directory, opts ...Option) *Resolver {
	r := &Resolver{
		directory: directory,
		ttl:       DefaultCacheTTL,
		logger:    zap.NewNop(),
		fallback:  indexFallback(fallbackCities),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func indexFallback(cities []FallbackCity) map[string]FallbackCity {
	index := make(map[string]FallbackCity, len(cities))
	for _, c := range cities {
		index[strings.ToLower(c.City)] = c
	}
	return index
}

// FallbackCities returns a copy of the bundled tariff.
func FallbackCities() []FallbackCity {
	out := make([]FallbackCity, len(fallbackCities))
	copy(out, fallbackCities)
	return out
}

// Resolve returns the shipping price for a pickup city. It never answers
// with a zero price: when neither source knows the city the error wraps
// model.ErrShippingUnresolved.
func (r *Resolver) Resolve(ctx context.Context, city, auctionHouse, category string) (model.ShippingPrice, error) {
	city = strings.TrimSpace(city)
	auctionHouse = strings.ToLower(strings.TrimSpace(auctionHouse))
	category = strings.ToLower(strings.TrimSpace(category))
	if city == "" {
		return model.ShippingPrice{}, fmt.Errorf("%w: empty city", model.ErrShippingUnresolved)
	}

	key := cache.GenerateKey(cachePrefix, auctionHouse, category, strings.ToLower(city))
	if r.store != nil {
		var cached model.ShippingPrice
		found, err := r.store.Get(ctx, key, &cached)
		if err != nil {
			r.logger.Warn("shipping cache read failed", zap.String("key", key), zap.Error(err))
		} else if found {
			return cached, nil
		}
	}

	if price, ok := r.resolveLive(ctx, city, auctionHouse, category); ok {
		if r.store != nil {
			if err := r.store.Set(ctx, key, price, r.ttl); err != nil {
				r.logger.Warn("shipping cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return price, nil
	}

	if price, ok := r.resolveFallback(city, auctionHouse, category); ok {
		return price, nil
	}

	return model.ShippingPrice{}, fmt.Errorf("%w: city=%q auction=%q category=%q",
		model.ErrShippingUnresolved, city, auctionHouse, category)
}

func (r *Resolver) resolveLive(ctx context.Context, city, auctionHouse, category string) (model.ShippingPrice, bool) {
	if r.directory == nil {
		return model.ShippingPrice{}, false
	}

	entry, err := r.directory.FindPrice(ctx, city, auctionHouse, category)
	if err != nil {
		r.logger.Warn("shipping directory lookup failed, trying fallback table",
			zap.String("city", city), zap.String("auction", auctionHouse), zap.Error(err))
		return model.ShippingPrice{}, false
	}
	if entry == nil {
		return model.ShippingPrice{}, false
	}

	price := entry.EffectivePrice()
	if !price.IsPositive() {
		r.logger.Warn("shipping directory entry has non-positive price",
			zap.String("city", entry.City), zap.String("price", price.String()))
		return model.ShippingPrice{}, false
	}

	return model.ShippingPrice{
		City:     entry.City,
		Auction:  auctionHouse,
		Category: category,
		Port:     entry.Port,
		PriceUSD: price,
		Source:   model.ShippingSourceLive,
	}, true
}

func (r *Resolver) resolveFallback(city, auctionHouse, category string) (model.ShippingPrice, bool) {
	if auctionHouse != model.AuctionCopart || !fallbackCategories[category] {
		return model.ShippingPrice{}, false
	}
	entry, ok := r.fallback[strings.ToLower(city)]
	if !ok {
		return model.ShippingPrice{}, false
	}
	return model.ShippingPrice{
		City:     entry.City,
		Auction:  auctionHouse,
		Category: category,
		Port:     entry.Port,
		PriceUSD: decimal.NewFromInt(entry.PriceUSD),
		Source:   model.ShippingSourceFallback,
	}, true
}

// ListCities pages through the directory. When the directory cannot be read
// and the filter targets the bundled tariff, the tariff is listed instead.
func (r *Resolver) ListCities(ctx context.Context, filter repository.ShippingCityFilter, page, limit int) ([]CityOption, int64, error) {
	if r.directory != nil {
		entries, total, err := r.directory.List(ctx, filter, page, limit)
		if err == nil {
			options := make([]CityOption, 0, len(entries))
			for _, e := range entries {
				options = append(options, CityOption{City: e.City, State: e.State, Port: e.Port, Source: model.ShippingSourceLive})
			}
			return options, total, nil
		}
		r.logger.Warn("shipping directory listing failed", zap.Error(err))
		if !r.fallbackCovers(filter) {
			return nil, 0, fmt.Errorf("list shipping cities: %w", err)
		}
	}

	if !r.fallbackCovers(filter) {
		return []CityOption{}, 0, nil
	}
	return listFallback(filter.Search, page, limit)
}

func (r *Resolver) fallbackCovers(filter repository.ShippingCityFilter) bool {
	if filter.Auction != "" && filter.Auction != model.AuctionCopart {
		return false
	}
	return filter.Category == "" || fallbackCategories[filter.Category]
}

func listFallback(search string, page, limit int) ([]CityOption, int64, error) {
	search = strings.ToLower(search)
	var matched []CityOption
	for _, c := range fallbackCities {
		if search != "" && !strings.Contains(strings.ToLower(c.City), search) && !strings.Contains(strings.ToLower(c.State), search) {
			continue
		}
		matched = append(matched, CityOption{City: c.City, State: c.State, Port: c.Port, Source: model.ShippingSourceFallback})
	}

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []CityOption{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// InvalidateCache drops every cached shipping price.
func (r *Resolver) InvalidateCache(ctx context.Context) error {
	if r.store == nil {
		return nil
	}
	return r.store.DeletePrefix(ctx, cachePrefix+":")
}
