package database

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/storesync/internal/domain"
	"github.com/jonesrussell/storesync/internal/logger"
)

var storeRowColumns = []string{
	"id", "slug", "name", "base_url", "api_endpoint", "web_token",
	"token_last_fetched_at", "category_source", "category_filter", "enabled",
	"created_at", "updated_at",
}

func TestStoreRepository_ListEnabled(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.NewNoOp())

	now := time.Now()
	rows := sqlmock.NewRows(storeRowColumns).
		AddRow(1, "alpha", "Alpha", "https://alpha.example.com", "/api", nil,
			nil, "listing", "{}", true, now, now).
		AddRow(2, "beta", "Beta", "https://beta.example.com", "/wp-json/wc/store", "cafe01",
			now, "woocommerce", `{Shoes,"Bags & Purses"}`, true, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM stores\s+WHERE enabled = TRUE`).
		WillReturnRows(rows)

	stores, err := repo.ListEnabled(context.Background())
	require.NoError(t, err)
	require.Len(t, stores, 2)

	assert.Equal(t, "alpha", stores[0].Slug)
	assert.Empty(t, stores[0].Token())
	assert.Equal(t, domain.CategorySourceListing, stores[0].CategorySource)

	assert.Equal(t, "cafe01", stores[1].Token())
	assert.Equal(t, pq.StringArray{"Shoes", "Bags & Purses"}, stores[1].CategoryFilter)
}

func TestStoreRepository_ListEnabled_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.NewNoOp())

	mock.ExpectQuery(`SELECT (.+) FROM stores`).
		WillReturnRows(sqlmock.NewRows(storeRowColumns))

	stores, err := repo.ListEnabled(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, stores)
	assert.Empty(t, stores)
}

func TestStoreRepository_GetBySlug_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.NewNoOp())

	mock.ExpectQuery(`SELECT (.+) FROM stores\s+WHERE slug = \$1`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(storeRowColumns))

	_, err := repo.GetBySlug(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrStoreNotFound)
}

func TestStoreRepository_UpdateToken(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.NewNoOp())

	mock.ExpectExec(`UPDATE stores`).
		WithArgs("fresh", sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateToken(context.Background(), 7, "fresh")
	require.NoError(t, err)
}

func TestStoreRepository_UpdateToken_UnknownStore(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.NewNoOp())

	mock.ExpectExec(`UPDATE stores`).
		WithArgs("fresh", sqlmock.AnyArg(), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateToken(context.Background(), 99, "fresh")
	require.ErrorIs(t, err, ErrStoreNotFound)
}

func TestStoreRepository_UpdateToken_RetriesContention(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.NewNoOp())

	mock.ExpectExec(`UPDATE stores`).
		WithArgs("fresh", sqlmock.AnyArg(), int64(7)).
		WillReturnError(&pq.Error{Code: "40P01"})
	mock.ExpectExec(`UPDATE stores`).
		WithArgs("fresh", sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateToken(context.Background(), 7, "fresh")
	require.NoError(t, err)
}

func TestStoreRepository_Upsert(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.NewNoOp())

	store := &domain.Store{
		Slug:           "watch-house",
		Name:           "Watch House",
		BaseURL:        "https://watch-house.example.com",
		APIEndpoint:    "/api/products",
		CategorySource: domain.CategorySourceListing,
		Enabled:        true,
	}

	mock.ExpectQuery(`INSERT INTO stores`).
		WithArgs(store.Slug, store.Name, store.BaseURL, store.APIEndpoint,
			store.CategorySource, store.CategoryFilter, store.Enabled).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_insert"}).AddRow(5, true))

	created, err := repo.Upsert(context.Background(), store)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(5), store.ID)
}

func TestStoreRepository_Upsert_ExistingStore(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewStoreRepository(db, logger.NewNoOp())

	store := &domain.Store{Slug: "watch-house", Name: "Watch House", Enabled: true}

	mock.ExpectQuery(`INSERT INTO stores`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_insert"}).AddRow(5, false))

	created, err := repo.Upsert(context.Background(), store)
	require.NoError(t, err)
	assert.False(t, created)
}
