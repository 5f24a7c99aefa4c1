package inventory

import (
	"context"
	"fmt"
	"strings"
)

// Service defines inventory business logic.
type Service interface {
	AddItem(ctx context.Context, req AddItemRequest) (*Item, error)
	GetItem(ctx context.Context, id int64) (*Item, error)
	ListItems(ctx context.Context) ([]*Item, error)
	// Adjust applies a signed delta and returns the updated item, or nil if
	// the item does not exist.
	Adjust(ctx context.Context, id int64, delta int) (*Item, error)
	// Restock is Adjust restricted to positive deltas.
	Restock(ctx context.Context, id int64, amount int) (*Item, error)
	LowStock(ctx context.Context) ([]*Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) AddItem(ctx context.Context, req AddItemRequest) (*Item, error) {
	name := strings.TrimSpace(req.ItemName)
	if name == "" {
		return nil, fmt.Errorf("%w: item_name is required", ErrInvalid)
	}
	item := &Item{
		ItemName:  name,
		Category:  req.Category,
		Quantity:  req.Quantity,
		Threshold: DefaultThreshold,
		Unit:      req.Unit,
	}
	if item.Category == "" {
		item.Category = DefaultCategory
	}
	if item.Unit == "" {
		item.Unit = DefaultUnit
	}
	if req.Threshold != nil {
		item.Threshold = *req.Threshold
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) GetItem(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListItems(ctx context.Context) ([]*Item, error) {
	return s.repo.List(ctx)
}

func (s *service) Adjust(ctx context.Context, id int64, delta int) (*Item, error) {
	if err := s.repo.AdjustQuantity(ctx, id, delta); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Restock(ctx context.Context, id int64, amount int) (*Item, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: restock amount must be positive", ErrInvalid)
	}
	return s.Adjust(ctx, id, amount)
}

func (s *service) LowStock(ctx context.Context) ([]*Item, error) {
	return s.repo.ListLow(ctx)
}

func (s *service) DeleteItem(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
