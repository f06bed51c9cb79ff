package repositories_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/slopestock/app/models"
	"github.com/shashiranjanraj/slopestock/app/repositories"
)

// newTestDB opens a per-test in-memory SQLite database. The named shared
// cache keeps gorm's pooled connections pointed at the same database while
// isolating tests from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	return db
}

func strptr(s string) *string { return &s }

func testFields(name string, sku *string) repositories.ProductFields {
	return repositories.ProductFields{
		Name:        name,
		Description: "test gear",
		Category:    "Skis",
		Price:       199.99,
		Quantity:    5,
		SKU:         sku,
	}
}

func TestCreateThenFindRoundTrip(t *testing.T) {
	repo := repositories.NewProductRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, testFields("Test Skis", strptr("SKI-100")))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Test Skis", found.Name)
	assert.Equal(t, "test gear", found.Description)
	assert.Equal(t, "Skis", found.Category)
	assert.Equal(t, 199.99, found.Price)
	assert.Equal(t, 5, found.Quantity)
	require.NotNil(t, found.SKU)
	assert.Equal(t, "SKI-100", *found.SKU)
	assert.Equal(t, created.CreatedAt.Unix(), found.CreatedAt.Unix())
}

func TestFindMissingReturnsNotFound(t *testing.T) {
	repo := repositories.NewProductRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDuplicateSKURejected(t *testing.T) {
	repo := repositories.NewProductRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, testFields("First", strptr("SKI-200")))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testFields("Second", strptr("SKI-200")))
	assert.ErrorIs(t, err, repositories.ErrDuplicateSKU)
}

func TestNullSKUsNeverCollide(t *testing.T) {
	repo := repositories.NewProductRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, testFields("First", nil))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testFields("Second", nil))
	assert.NoError(t, err)
}

func TestUpdatePreservesIdentity(t *testing.T) {
	repo := repositories.NewProductRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, testFields("Before", strptr("SKI-300")))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, repositories.ProductFields{
		Name:     "After",
		Price:    0, // zero values must overwrite, not be skipped
		Quantity: 0,
		SKU:      nil,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, "", updated.Description)
	assert.Zero(t, updated.Price)
	assert.Zero(t, updated.Quantity)
	assert.Nil(t, updated.SKU)
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	repo := repositories.NewProductRepository(newTestDB(t))

	_, err := repo.Update(context.Background(), 9999, testFields("Ghost", nil))
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdateToTakenSKURejected(t *testing.T) {
	repo := repositories.NewProductRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, testFields("Holder", strptr("SKI-400")))
	require.NoError(t, err)
	second, err := repo.Create(ctx, testFields("Mover", strptr("SKI-401")))
	require.NoError(t, err)

	_, err = repo.Update(ctx, second.ID, testFields("Mover", strptr("SKI-400")))
	assert.ErrorIs(t, err, repositories.ErrDuplicateSKU)
}

func TestDeleteSignalling(t *testing.T) {
	repo := repositories.NewProductRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, testFields("Doomed", nil))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	// Second delete of the same id, and deletes of ids that never existed,
	// report not-found instead of crashing.
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 9999), repositories.ErrNotFound)

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	repo := repositories.NewProductRepository(newTestDB(t))
	ctx := context.Background()

	a, err := repo.Create(ctx, testFields("A", nil))
	require.NoError(t, err)
	b, err := repo.Create(ctx, testFields("B", nil))
	require.NoError(t, err)
	c, err := repo.Create(ctx, testFields("C", nil))
	require.NoError(t, err)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, []uint{c.ID, b.ID, a.ID},
		[]uint{products[0].ID, products[1].ID, products[2].ID})
}
