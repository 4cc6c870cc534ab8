package repository

import (
	"context"
	"errors"
	"strings"

	"carimport/internal/model"

	"gorm.io/gorm"
)

// ShippingCityFilter narrows a directory listing. Empty fields match all.
type ShippingCityFilter struct {
	Auction  string
	Category string
	Search   string
}

type ShippingCityRepository interface {
	FindPrice(ctx context.Context, city, auction, category string) (*model.ShippingCity, error)
	List(ctx context.Context, filter ShippingCityFilter, page, limit int) ([]model.ShippingCity, int64, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, cities []model.ShippingCity) error
}

type shippingCityRepository struct {
	db *gorm.DB
}

func NewShippingCityRepository(db *gorm.DB) ShippingCityRepository {
	return &shippingCityRepository{db: db}
}

// FindPrice returns the directory entry for the city, or nil when there is
// none. City comparison is case-insensitive but otherwise exact.
func (r *shippingCityRepository) FindPrice(ctx context.Context, city, auction, category string) (*model.ShippingCity, error) {
	var entry model.ShippingCity
	err := GetDB(ctx, r.db).
		Where("LOWER(city) = LOWER(?) AND auction = ? AND category = ?", strings.TrimSpace(city), auction, category).
		Order("updated_at DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *shippingCityRepository) List(ctx context.Context, filter ShippingCityFilter, page, limit int) ([]model.ShippingCity, int64, error) {
	var cities []model.ShippingCity
	var total int64

	query := r.applyFilter(GetDB(ctx, r.db).Model(&model.ShippingCity{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	fetchQuery := r.applyFilter(GetDB(ctx, r.db).Model(&model.ShippingCity{}), filter)
	if err := fetchQuery.Order("city ASC").Offset(offset).Limit(limit).Find(&cities).Error; err != nil {
		return nil, 0, err
	}

	return cities, total, nil
}

func (r *shippingCityRepository) applyFilter(query *gorm.DB, filter ShippingCityFilter) *gorm.DB {
	if filter.Auction != "" {
		query = query.Where("auction = ?", filter.Auction)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		query = query.Where("city ILIKE ? OR state ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	return query
}

func (r *shippingCityRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&model.ShippingCity{}).Count(&total).Error
	return total, err
}

func (r *shippingCityRepository) CreateBatch(ctx context.Context, cities []model.ShippingCity) error {
	if len(cities) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).CreateInBatches(&cities, 100).Error
}
