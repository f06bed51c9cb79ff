package seeders

import (
	"github.com/shashiranjanraj/slopestock/app/models"
	"github.com/shashiranjanraj/slopestock/pkg/logger"
	"gorm.io/gorm"
)

func init() {
	Register("products", SeedProducts)
}

func skiSKU(s string) *string { return &s }

// sampleProducts is the starter catalog: 20 items across the shop's five
// categories (Skis, Boots, Poles, Goggles, Helmets).
var sampleProducts = []models.Product{
	{Name: "Rossignol Experience 88 Ti Skis", Description: "All-mountain skis with titanal construction, 172cm", Category: "Skis", Price: 699.99, Quantity: 12, SKU: skiSKU("SKI-001")},
	{Name: "Atomic Hawx Ultra 130 Boots", Description: "High-performance alpine ski boots, size 27.5", Category: "Boots", Price: 549.99, Quantity: 8, SKU: skiSKU("BOOT-002")},
	{Name: "Black Diamond Carbon Pro Poles", Description: "Lightweight carbon fiber ski poles, 125cm", Category: "Poles", Price: 129.99, Quantity: 25, SKU: skiSKU("POLE-003")},
	{Name: "Oakley Flight Deck Goggles", Description: "Prizm lens snow goggles with anti-fog coating", Category: "Goggles", Price: 189.99, Quantity: 18, SKU: skiSKU("GOG-004")},
	{Name: "Smith Vantage MIPS Helmet", Description: "Premium ski helmet with MIPS protection, size L", Category: "Helmets", Price: 249.99, Quantity: 15, SKU: skiSKU("HLM-005")},
	{Name: "Salomon QST 92 Skis", Description: "Freeride all-mountain skis, 180cm", Category: "Skis", Price: 599.99, Quantity: 10, SKU: skiSKU("SKI-006")},
	{Name: "Lange RX 120 Boots", Description: "Race-inspired ski boots for advanced skiers, size 26", Category: "Boots", Price: 499.99, Quantity: 7, SKU: skiSKU("BOOT-007")},
	{Name: "K2 Mindbender 99 Ti Skis", Description: "Versatile all-mountain skis with titanal, 177cm", Category: "Skis", Price: 649.99, Quantity: 9, SKU: skiSKU("SKI-008")},
	{Name: "POC Fovea Clarity Goggles", Description: "Cylindrical lens goggles with Clarity technology", Category: "Goggles", Price: 169.99, Quantity: 22, SKU: skiSKU("GOG-009")},
	{Name: "Giro Range MIPS Helmet", Description: "Adjustable ventilation ski helmet, size M", Category: "Helmets", Price: 199.99, Quantity: 14, SKU: skiSKU("HLM-010")},
	{Name: "Leki Supreme Shark Poles", Description: "Aluminum ski poles with trigger system, 120cm", Category: "Poles", Price: 89.99, Quantity: 30, SKU: skiSKU("POLE-011")},
	{Name: "Volkl Mantra M6 Skis", Description: "High-performance all-mountain skis, 177cm", Category: "Skis", Price: 799.99, Quantity: 6, SKU: skiSKU("SKI-012")},
	{Name: "Tecnica Mach1 MV 120 Boots", Description: "Mid-volume performance boots, size 28", Category: "Boots", Price: 529.99, Quantity: 9, SKU: skiSKU("BOOT-013")},
	{Name: "Anon M4 Goggles", Description: "Cylindrical toric lens with magnetic face mask", Category: "Goggles", Price: 299.99, Quantity: 11, SKU: skiSKU("GOG-014")},
	{Name: "Sweet Protection Switcher MIPS Helmet", Description: "Lightweight freeride helmet, size L", Category: "Helmets", Price: 229.99, Quantity: 13, SKU: skiSKU("HLM-015")},
	{Name: "Scott Prospect Poles", Description: "Composite ski poles with ergonomic grips, 130cm", Category: "Poles", Price: 69.99, Quantity: 35, SKU: skiSKU("POLE-016")},
	{Name: "Nordica Enforcer 94 Skis", Description: "All-mountain carving skis, 177cm", Category: "Skis", Price: 679.99, Quantity: 8, SKU: skiSKU("SKI-017")},
	{Name: "Dalbello Panterra 120 Boots", Description: "Four-buckle overlap ski boots, size 27", Category: "Boots", Price: 479.99, Quantity: 10, SKU: skiSKU("BOOT-018")},
	{Name: "Dragon X2 Goggles", Description: "Frameless design with quick lens change system", Category: "Goggles", Price: 179.99, Quantity: 16, SKU: skiSKU("GOG-019")},
	{Name: "Uvex Legend MIPS Helmet", Description: "Comfortable all-mountain helmet, size M", Category: "Helmets", Price: 179.99, Quantity: 19, SKU: skiSKU("HLM-020")},
}

// SeedProducts populates the starter catalog on an empty table. The
// row-count guard makes it idempotent: if any product exists — seeded or
// user-created — nothing is inserted.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Insert a copy so gorm's assignment of ids/timestamps never leaks
	// back into the package-level template.
	rows := make([]models.Product, len(sampleProducts))
	copy(rows, sampleProducts)

	if err := db.Create(&rows).Error; err != nil {
		return err
	}

	logger.Info("seeded starter catalog", "products", len(rows))
	return nil
}
