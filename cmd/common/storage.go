package common

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/storesync/internal/database"
)

// Repositories bundles the persistence gateways commands wire into the
// sync core.
type Repositories struct {
	DB         *sqlx.DB
	Stores     *database.StoreRepository
	Categories *database.CategoryRepository
	Products   *database.ProductRepository
	Runs       *database.RunRepository
}

// OpenRepositories connects to Postgres and constructs the repositories.
// The caller owns the connection lifecycle and must call Close.
func OpenRepositories(deps *CommandDeps) (*Repositories, error) {
	db, err := database.NewPostgresConnection(deps.Config.GetDatabaseConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Repositories{
		DB:         db,
		Stores:     database.NewStoreRepository(db, deps.Logger),
		Categories: database.NewCategoryRepository(db, deps.Logger),
		Products:   database.NewProductRepository(db, deps.Logger),
		Runs:       database.NewRunRepository(db, deps.Logger),
	}, nil
}

// Close releases the database connection.
func (r *Repositories) Close() error {
	return r.DB.Close()
}
