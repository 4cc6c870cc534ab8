package repository

import (
	"context"
	"testing"
	"time"

	"carimport/internal/database"
	"carimport/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// setupTestDB starts a PostgreSQL container and migrates the schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	db, err := database.NewConnection(dsn, database.Options{}, nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func city(name, auction, category string, base, last, total int64) model.ShippingCity {
	return model.ShippingCity{
		City:                     name,
		State:                    "TX",
		Auction:                  auction,
		Category:                 category,
		Port:                     model.PortHouston,
		BasePrice:                decimal.NewFromInt(base),
		BaseLastAdjustmentAmount: decimal.NewFromInt(last),
		TotalAdjustmentAmount:    decimal.NewFromInt(total),
	}
}

func TestShippingCityRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShippingCityRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateBatch(ctx, []model.ShippingCity{
		city("Dallas", model.AuctionCopart, model.CategorySedan, 1500, 50, -25),
		city("Dallas", model.AuctionCopart, model.CategorySUV, 1700, 0, 0),
		city("Houston", model.AuctionCopart, model.CategorySedan, 1200, 0, 0),
		city("Houston", model.AuctionIAAI, model.CategorySedan, 1250, 0, 0),
		city("Austin", model.AuctionCopart, model.CategorySedan, 1450, 0, 0),
	}))

	t.Run("FindPrice matches city case-insensitively", func(t *testing.T) {
		entry, err := repo.FindPrice(ctx, "DALLAS", model.AuctionCopart, model.CategorySedan)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, "1525", entry.EffectivePrice().String())
	})

	t.Run("FindPrice is exact", func(t *testing.T) {
		entry, err := repo.FindPrice(ctx, "Dall", model.AuctionCopart, model.CategorySedan)
		require.NoError(t, err)
		assert.Nil(t, entry)

		entry, err = repo.FindPrice(ctx, "Austin", model.AuctionIAAI, model.CategorySedan)
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("List filters and paginates", func(t *testing.T) {
		cities, total, err := repo.List(ctx, ShippingCityFilter{Auction: model.AuctionCopart, Category: model.CategorySedan}, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, cities, 2)
		assert.Equal(t, "Austin", cities[0].City)
		assert.Equal(t, "Dallas", cities[1].City)

		cities, _, err = repo.List(ctx, ShippingCityFilter{Auction: model.AuctionCopart, Category: model.CategorySedan}, 2, 2)
		require.NoError(t, err)
		require.Len(t, cities, 1)
		assert.Equal(t, "Houston", cities[0].City)
	})

	t.Run("List searches by city", func(t *testing.T) {
		cities, total, err := repo.List(ctx, ShippingCityFilter{Search: "hous"}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, cities, 2)
	})

	t.Run("Count", func(t *testing.T) {
		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
	})

	t.Run("RunInTx rolls back on error", func(t *testing.T) {
		tm := NewTransactionManager(db)
		err := tm.RunInTx(ctx, func(txCtx context.Context) error {
			if err := repo.CreateBatch(txCtx, []model.ShippingCity{city("Tyler", model.AuctionCopart, model.CategorySedan, 1, 0, 0)}); err != nil {
				return err
			}
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		entry, err := repo.FindPrice(ctx, "Tyler", model.AuctionCopart, model.CategorySedan)
		require.NoError(t, err)
		assert.Nil(t, entry)
	})
}
