package catalog

import "context"

// Repository defines product storage. Lookups of a missing id return nil
// without an error.
type Repository interface {
	// Create assigns the next sort order and the generated id to p.
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	// List returns products by sort order; an empty category means all.
	List(ctx context.Context, category Category) ([]*Product, error)
	Update(ctx context.Context, id int64, patch ProductPatch) error
	Delete(ctx context.Context, id int64) error
	// Move swaps sort order with the adjacent product. It reports false when
	// there is no neighbour in that direction.
	Move(ctx context.Context, id int64, dir Direction) (bool, error)
}
