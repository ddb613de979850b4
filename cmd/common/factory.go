package common

import (
	"fmt"

	"github.com/jonesrussell/storesync/internal/scrape"
	"github.com/jonesrussell/storesync/internal/sync"
	"github.com/jonesrussell/storesync/internal/worker"
)

// BuildOrchestrator wires the scrape components, store worker, and
// bounded pool into a ready-to-run orchestrator.
func BuildOrchestrator(deps *CommandDeps, repos *Repositories) (*sync.Orchestrator, error) {
	scrapeCfg := deps.Config.GetScrapeConfig()
	syncCfg := deps.Config.GetSyncConfig()

	client := scrape.NewClient(scrapeCfg)
	tokens := scrape.NewTokenAcquirer(client, deps.Logger)
	categories := scrape.NewCategorySourceFactory(client, scrapeCfg, deps.Logger)
	products := scrape.NewProductExtractor(client, deps.Logger)

	storeWorker := sync.NewStoreWorker(
		tokens,
		categories,
		products,
		repos.Stores,
		repos.Categories,
		repos.Products,
		syncCfg,
		deps.Logger,
	)

	pool, err := worker.NewPool(worker.NewConfig(syncCfg.MaxConcurrency), storeWorker, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	return sync.NewOrchestrator(repos.Stores, repos.Runs, pool, deps.Logger), nil
}
