package shipping

import (
	"context"
	"fmt"

	"carimport/internal/model"
	"carimport/internal/repository"

	"github.com/shopspring/decimal"
)

// DirectoryWriter is the part of the directory needed to bootstrap it.
type DirectoryWriter interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, cities []model.ShippingCity) error
}

// SeedDirectory copies the bundled tariff into an empty directory, one row per
// standard vehicle size. It returns the number of rows written; a directory
// that already has entries is left untouched.
func SeedDirectory(ctx context.Context, tm repository.TransactionManager, dir DirectoryWriter) (int, error) {
	written := 0
	err := tm.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := dir.Count(txCtx)
		if err != nil {
			return fmt.Errorf("count shipping cities: %w", err)
		}
		if existing > 0 {
			return nil
		}

		rows := seedRows(fallbackCities)
		if err := dir.CreateBatch(txCtx, rows); err != nil {
			return fmt.Errorf("seed shipping cities: %w", err)
		}
		written = len(rows)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

func seedRows(cities []FallbackCity) []model.ShippingCity {
	categories := []string{model.CategorySedan, model.CategoryCrossover, model.CategorySUV}
	rows := make([]model.ShippingCity, 0, len(cities)*len(categories))
	for _, c := range cities {
		for _, category := range categories {
			rows = append(rows, model.ShippingCity{
				City:                     c.City,
				State:                    c.State,
				Auction:                  model.AuctionCopart,
				Category:                 category,
				Port:                     c.Port,
				BasePrice:                decimal.NewFromInt(c.PriceUSD),
				BaseLastAdjustmentAmount: decimal.Zero,
				TotalAdjustmentAmount:    decimal.Zero,
			})
		}
	}
	return rows
}
