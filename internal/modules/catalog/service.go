package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ImageStore persists product photos. It is implemented by the site media
// store.
type ImageStore interface {
	// SaveProductImage normalises raw and returns the stored path relative to
	// the site directory.
	SaveProductImage(id int64, raw []byte) (string, error)
	RemoveFile(relPath string) error
}

// Service defines catalog business logic.
type Service interface {
	AddProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	ListProducts(ctx context.Context, category Category) ([]*Product, error)
	UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	MoveProduct(ctx context.Context, id int64, dir Direction) (bool, error)
	SetProductImage(ctx context.Context, id int64, raw []byte) (*Product, error)
}

type service struct {
	repo   Repository
	images ImageStore
	logger *zap.Logger
}

func NewService(repo Repository, images ImageStore, logger *zap.Logger) Service {
	return &service{repo: repo, images: images, logger: logger}
}

func (s *service) AddProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	category := req.Category
	if category == "" {
		category = CategoryCake
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalid, category)
	}
	status := req.Status
	if status == "" {
		status = StatusActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalid, status)
	}
	p := &Product{
		Name:          name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      category,
		Status:        status,
		ImageFit:      FitCover,
		ImagePosition: PositionCenter,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, category Category) ([]*Product, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalid, category)
	}
	return s.repo.List(ctx, category)
}

// UpdateProduct applies patch and returns the stored product, or nil when id
// does not exist.
func (s *service) UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (*Product, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// DeleteProduct removes the row, then its photo. A photo that cannot be
// removed is logged and left behind.
func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if p.ImagePath != "" && s.images != nil {
		if err := s.images.RemoveFile(p.ImagePath); err != nil {
			s.logger.Warn("product image not removed", zap.Int64("product_id", id), zap.String("path", p.ImagePath), zap.Error(err))
		}
	}
	return nil
}

func (s *service) MoveProduct(ctx context.Context, id int64, dir Direction) (bool, error) {
	return s.repo.Move(ctx, id, dir)
}

func (s *service) SetProductImage(ctx context.Context, id int64, raw []byte) (*Product, error) {
	if s.images == nil {
		return nil, fmt.Errorf("no image store configured")
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	path, err := s.images.SaveProductImage(id, raw)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, ProductPatch{ImagePath: &path}); err != nil {
		return nil, err
	}
	p.ImagePath = path
	return p, nil
}
