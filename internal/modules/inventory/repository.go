package inventory

import "context"

// Repository defines inventory storage. A missing item reads as nil.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id int64) (*Item, error)
	// List orders by category, then name.
	List(ctx context.Context) ([]*Item, error)
	AdjustQuantity(ctx context.Context, id int64, delta int) error
	ListLow(ctx context.Context) ([]*Item, error)
	Delete(ctx context.Context, id int64) error
}
