package announcement

import "errors"

// ErrInvalid marks a request rejected by validation.
var ErrInvalid = errors.New("invalid announcement")

// Announcement is a short notice for staff and customers.
type Announcement struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	IsActive bool   `json:"is_active"`
}

// CreateRequest holds the data for posting an announcement.
type CreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
