// Package services sits between the HTTP controllers and the repository:
// it normalizes input, keeps the product-list cache honest, and is the one
// place that decides what a mutation invalidates.
package services

import (
	"context"
	"strings"
	"time"

	"github.com/shashiranjanraj/slopestock/app/models"
	"github.com/shashiranjanraj/slopestock/app/repositories"
	"github.com/shashiranjanraj/slopestock/pkg/cache"
)

// listCacheKey caches the full catalog listing; every mutation drops it so
// a reader never sees a stale snapshot after its own write.
const (
	listCacheKey = "products:all"
	listCacheTTL = 30 * time.Second
)

type ProductService struct {
	repo repositories.ProductRepository
}

func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// List returns the full catalog, newest first, via the Redis cache when warm.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	if cache.Get(listCacheKey, &cached) {
		return cached, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	_ = cache.Set(listCacheKey, products, listCacheTTL)
	return products, nil
}

// Find returns one product by id.
func (s *ProductService) Find(ctx context.Context, id uint) (models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a new product and invalidates the list cache.
func (s *ProductService) Create(ctx context.Context, fields repositories.ProductFields) (models.Product, error) {
	normalizeSKU(&fields)

	product, err := s.repo.Create(ctx, fields)
	if err != nil {
		return models.Product{}, err
	}

	_ = cache.Forget(listCacheKey)
	return product, nil
}

// Update replaces all mutable fields and invalidates the list cache.
func (s *ProductService) Update(ctx context.Context, id uint, fields repositories.ProductFields) (models.Product, error) {
	normalizeSKU(&fields)

	product, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return models.Product{}, err
	}

	_ = cache.Forget(listCacheKey)
	return product, nil
}

// Delete removes a product and invalidates the list cache.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	_ = cache.Forget(listCacheKey)
	return nil
}

// normalizeSKU treats a blank sku as absent. Storing "" would occupy the
// unique index and make every later blank sku collide; NULL does not.
func normalizeSKU(fields *repositories.ProductFields) {
	if fields.SKU == nil {
		return
	}
	trimmed := strings.TrimSpace(*fields.SKU)
	if trimmed == "" {
		fields.SKU = nil
		return
	}
	fields.SKU = &trimmed
}
