package announcement

import (
	"context"
	"fmt"
	"strings"
)

type Service interface {
	Add(ctx context.Context, req CreateRequest) (*Announcement, error)
	ListActive(ctx context.Context) ([]*Announcement, error)
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Add(ctx context.Context, req CreateRequest) (*Announcement, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalid)
	}
	a := &Announcement{Title: title, Content: req.Content, IsActive: true}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) ListActive(ctx context.Context) ([]*Announcement, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) Deactivate(ctx context.Context, id int64) error {
	return s.repo.SetActive(ctx, id, false)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
