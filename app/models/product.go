package models

import "time"

// Product is a single catalog row representing one sellable item.
//
// ID and CreatedAt are assigned by the store on insert and never change
// afterwards. SKU is optional; when present it must be unique across the
// table (a nil SKU maps to SQL NULL, which the unique index ignores, so any
// number of products may omit it). Rows are hard-deleted — no gorm.Model,
// no DeletedAt tombstone.
type Product struct {
	ID          uint      `gorm:"primaryKey"             json:"id"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	Description string    `gorm:"type:text"              json:"description"`
	Category    string    `gorm:"size:100;index"         json:"category"`
	Price       float64   `gorm:"not null"               json:"price"`
	Quantity    int       `gorm:"not null"               json:"quantity"`
	SKU         *string   `gorm:"size:100;uniqueIndex"   json:"sku"`
	CreatedAt   time.Time `json:"created_at"`
}
