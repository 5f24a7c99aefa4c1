package settings

import "context"

// Service reads and merge-saves the settings document.
type Service interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, partial Settings) (Settings, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Get(ctx context.Context) (Settings, error) {
	return s.repo.Get(ctx)
}

func (s *service) Save(ctx context.Context, partial Settings) (Settings, error) {
	if len(partial) == 0 {
		return s.repo.Get(ctx)
	}
	return s.repo.Merge(ctx, partial)
}
