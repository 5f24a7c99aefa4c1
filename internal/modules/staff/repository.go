package staff

import (
	"context"
	"time"
)

// Repository defines staff and attendance storage. Lookups of a missing row
// return nil without an error.
type Repository interface {
	CreateMember(ctx context.Context, m *Member) error
	GetMember(ctx context.Context, id int64) (*Member, error)
	ListMembers(ctx context.Context, activeOnly bool) ([]*Member, error)
	SetActive(ctx context.Context, id int64, active bool) error

	// DayRecord returns the first attendance record of staffID on day.
	DayRecord(ctx context.Context, staffID int64, day string) (*Attendance, error)
	CreateAttendance(ctx context.Context, a *Attendance) error
	CloseAttendance(ctx context.Context, id int64, out time.Time, hours float64) error
	ListDay(ctx context.Context, day string) ([]*DayEntry, error)
}
