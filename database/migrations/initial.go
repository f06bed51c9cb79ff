package migrations

import (
	"github.com/shashiranjanraj/slopestock/app/models"
	"github.com/shashiranjanraj/slopestock/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260301000000_create_products_table", &CreateProductsTable{})
}

// CreateProductsTable creates the catalog's single table, including the
// unique index on sku.
type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}
