package settings

import "context"

// Repository stores the single settings document.
type Repository interface {
	Get(ctx context.Context) (Settings, error)
	// Merge writes the union of the stored document and partial.
	Merge(ctx context.Context, partial Settings) (Settings, error)
}
