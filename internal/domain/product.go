package domain

import "time"

// StockStatus is the normalized availability of a product.
type StockStatus string

const (
	// StockStatusInStock marks a product as purchasable.
	StockStatusInStock StockStatus = "in_stock"
	// StockStatusOutOfStock marks a product as sold out.
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// Product is one normalized catalog entry. ProductID is the source
// site's native identifier and is stable across runs; (StoreID,
// ProductID) is the natural key used by the upsert.
type Product struct {
	ID            int64       `db:"id"`
	StoreID       int64       `db:"store_id"`
	CategoryID    int64       `db:"category_id"`
	ProductID     string      `db:"product_id"`
	Name          string      `db:"name"`
	URL           string      `db:"url"`
	ImageURL      string      `db:"image_url"`
	Price         float64     `db:"price"`
	OriginalPrice *float64    `db:"original_price"`
	Size          string      `db:"size"`
	StockStatus   StockStatus `db:"stock_status"`
	IsActive      bool        `db:"is_active"`
	LastSyncedAt  time.Time   `db:"last_synced_at"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

// Discounted reports whether the product carries a strikethrough price.
func (p *Product) Discounted() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}
