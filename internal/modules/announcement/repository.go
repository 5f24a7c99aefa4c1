package announcement

import "context"

// Repository defines announcement storage.
type Repository interface {
	Create(ctx context.Context, a *Announcement) error
	// ListActive returns active announcements, newest first.
	ListActive(ctx context.Context) ([]*Announcement, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}
