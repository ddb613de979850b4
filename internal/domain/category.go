package domain

import "time"

// Category is one scrapeable product category within a store.
// (StoreID, Slug) is unique; ExternalID is the site's own identifier
// where the source exposes one, otherwise the slug-derived key.
type Category struct {
	ID         int64     `db:"id"`
	StoreID    int64     `db:"store_id"`
	ExternalID string    `db:"external_id"`
	Slug       string    `db:"slug"`
	Name       string    `db:"name"`
	URL        string    `db:"url"`
	CreatedAt  time.Time `db:"created_at"`
}
