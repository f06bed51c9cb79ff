// Package repositories owns product persistence. The ProductRepository
// interface is the whole storage contract, so the engine behind it is
// swappable (sqlite by default, postgres/mysql/sqlserver via DB_DRIVER).
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/slopestock/app/models"
	"github.com/shashiranjanraj/slopestock/pkg/metrics"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no product has the requested id.
	ErrNotFound = errors.New("product not found")
	// ErrDuplicateSKU is returned when an insert or update would reuse a
	// sku already held by a different product.
	ErrDuplicateSKU = errors.New("sku already in use")
)

// ProductFields carries the mutable attributes of a product. ID and
// CreatedAt are deliberately absent: the store assigns them on insert and
// refuses to change them afterwards, no matter what a caller sends.
type ProductFields struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Quantity    int
	SKU         *string
}

// ProductRepository is the catalog's storage boundary.
type ProductRepository interface {
	// List returns every product, newest first.
	List(ctx context.Context) ([]models.Product, error)
	// FindByID returns the product with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id uint) (models.Product, error)
	// Create inserts a new product and returns it with id and created_at
	// assigned. Returns ErrDuplicateSKU on a sku collision.
	Create(ctx context.Context, fields ProductFields) (models.Product, error)
	// Update replaces all mutable fields of the product with the given id.
	// Returns ErrNotFound for an unknown id, ErrDuplicateSKU on collision.
	Update(ctx context.Context, id uint, fields ProductFields) (models.Product, error)
	// Delete hard-deletes the product with the given id.
	// Returns ErrNotFound when there was nothing to delete.
	Delete(ctx context.Context, id uint) error
}

// gormProductRepository implements ProductRepository on a gorm connection.
type gormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository wraps db in the catalog storage boundary.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &gormProductRepository{db: db}
}

func (r *gormProductRepository) List(ctx context.Context) ([]models.Product, error) {
	defer metrics.ObserveQuery("list", time.Now())

	// Non-nil so an empty catalog serializes as [] rather than null.
	products := []models.Product{}
	// id DESC breaks created_at ties deterministically: rows inserted within
	// one clock tick still list newest first.
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *gormProductRepository) FindByID(ctx context.Context, id uint) (models.Product, error) {
	defer metrics.ObserveQuery("find", time.Now())

	var product models.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return models.Product{}, translate("find product", err)
	}
	return product, nil
}

func (r *gormProductRepository) Create(ctx context.Context, fields ProductFields) (models.Product, error) {
	defer metrics.ObserveQuery("insert", time.Now())

	product := models.Product{
		Name:        fields.Name,
		Description: fields.Description,
		Category:    fields.Category,
		Price:       fields.Price,
		Quantity:    fields.Quantity,
		SKU:         fields.SKU,
	}

	if err := r.db.WithContext(ctx).Create(&product).Error; err != nil {
		return models.Product{}, translate("create product", err)
	}
	return product, nil
}

func (r *gormProductRepository) Update(ctx context.Context, id uint, fields ProductFields) (models.Product, error) {
	defer metrics.ObserveQuery("update", time.Now())

	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return models.Product{}, translate("update product", err)
	}

	// Column map instead of struct assignment: zero values (price 0,
	// empty description) must overwrite, and id/created_at must not appear
	// in the SET list at all.
	err := r.db.WithContext(ctx).Model(&product).Updates(map[string]interface{}{
		"name":        fields.Name,
		"description": fields.Description,
		"category":    fields.Category,
		"price":       fields.Price,
		"quantity":    fields.Quantity,
		"sku":         fields.SKU,
	}).Error
	if err != nil {
		return models.Product{}, translate("update product", err)
	}

	var updated models.Product
	if err := r.db.WithContext(ctx).First(&updated, id).Error; err != nil {
		return models.Product{}, translate("reload product", err)
	}
	return updated, nil
}

func (r *gormProductRepository) Delete(ctx context.Context, id uint) error {
	defer metrics.ObserveQuery("delete", time.Now())

	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return translate("delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translate maps gorm's sentinel errors onto the repository's own; anything
// else is a storage failure and gets wrapped with the operation name.
func translate(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateSKU
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
