package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a clock event. ID and joined fields on the returned
	// event are populated by the store.
	Create(ctx context.Context, event ClockEvent) (ClockEvent, error)

	// ListByWorkerBetween returns a worker's events within [from, to],
	// ordered by timestamp ascending.
	ListByWorkerBetween(ctx context.Context, workerID string, from, to time.Time) ([]ClockEvent, error)

	// ListByWorker returns a worker's full history, newest first.
	ListByWorker(ctx context.Context, workerID string) ([]ClockEvent, error)

	// List returns events visible through the given filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]ClockEvent, error)
}

// ListFilter is a composable visibility filter: CompanyIDs bounds the result
// to the caller's authorized companies, CompanyID optionally narrows it to a
// single requested company.
type ListFilter struct {
	CompanyIDs []string
	CompanyID  *string
}
