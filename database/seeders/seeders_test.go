package seeders_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/slopestock/app/models"
	"github.com/shashiranjanraj/slopestock/database/seeders"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func count(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&models.Product{}).Count(&n).Error)
	return n
}

func TestSeedPopulatesEmptyCatalog(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, seeders.SeedProducts(db))
	assert.EqualValues(t, 20, count(t, db))

	// Five categories, four products each.
	var categories []string
	require.NoError(t, db.Model(&models.Product{}).
		Distinct("category").Pluck("category", &categories).Error)
	assert.Len(t, categories, 5)
	assert.ElementsMatch(t,
		[]string{"Skis", "Boots", "Poles", "Goggles", "Helmets"}, categories)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, seeders.SeedProducts(db))
	require.NoError(t, seeders.SeedProducts(db))
	assert.EqualValues(t, 20, count(t, db))
}

func TestSeedSkipsNonEmptyCatalog(t *testing.T) {
	db := newTestDB(t)

	existing := models.Product{Name: "Custom Board", Price: 450, Quantity: 2}
	require.NoError(t, db.Create(&existing).Error)

	// Any existing row — seeded or user-created — suppresses the seed.
	require.NoError(t, seeders.SeedProducts(db))
	assert.EqualValues(t, 1, count(t, db))
}
