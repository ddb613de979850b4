package domain

// StoreOutcome is the per-store result reported back to the
// orchestrator. Success is false only when the store itself could not
// be processed; individual bad categories never flip it.
type StoreOutcome struct {
	StoreID         int64
	Slug            string
	Name            string
	ProductsWritten int
	Success         bool
	Reason          string
}
