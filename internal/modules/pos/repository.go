package pos

import "context"

// Repository defines sales ledger storage.
type Repository interface {
	Create(ctx context.Context, sale *Sale) error
	// ListDay returns the sales of day, newest first, with staff names.
	ListDay(ctx context.Context, day string) ([]*Sale, error)
	TotalDay(ctx context.Context, day string) (float64, error)
}
