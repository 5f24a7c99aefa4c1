package staff

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service defines staff and attendance business logic. Every attendance
// operation works on the current local calendar day.
type Service interface {
	AddMember(ctx context.Context, req AddMemberRequest) (*Member, error)
	GetMember(ctx context.Context, id int64) (*Member, error)
	ListMembers(ctx context.Context, activeOnly bool) ([]*Member, error)
	Deactivate(ctx context.Context, id int64) error

	Status(ctx context.Context, staffID int64) (Status, error)
	// ClockIn reports false when the member is unknown or has already
	// clocked in today.
	ClockIn(ctx context.Context, staffID int64) (bool, error)
	// ClockOut closes today's open record. It returns nil when there is none.
	ClockOut(ctx context.Context, staffID int64) (*Attendance, error)
	Today(ctx context.Context) ([]*DayEntry, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service { return &service{repo: repo, now: time.Now} }

func (s *service) AddMember(ctx context.Context, req AddMemberRequest) (*Member, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if req.HourlyWage < 0 {
		return nil, fmt.Errorf("%w: hourly_wage cannot be negative", ErrInvalid)
	}
	wage := req.HourlyWage
	if wage == 0 {
		wage = DefaultHourlyWage
	}
	m := &Member{Name: name, HourlyWage: wage, IsActive: true}
	if err := s.repo.CreateMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) GetMember(ctx context.Context, id int64) (*Member, error) {
	return s.repo.GetMember(ctx, id)
}

func (s *service) ListMembers(ctx context.Context, activeOnly bool) ([]*Member, error) {
	return s.repo.ListMembers(ctx, activeOnly)
}

func (s *service) Deactivate(ctx context.Context, id int64) error {
	return s.repo.SetActive(ctx, id, false)
}

func (s *service) today() string { return s.now().Format(dateLayout) }

func (s *service) Status(ctx context.Context, staffID int64) (Status, error) {
	rec, err := s.repo.DayRecord(ctx, staffID, s.today())
	if err != nil {
		return "", err
	}
	return rec.Status(), nil
}

func (s *service) ClockIn(ctx context.Context, staffID int64) (bool, error) {
	m, err := s.repo.GetMember(ctx, staffID)
	if err != nil || m == nil {
		return false, err
	}
	now := s.now()
	day := now.Format(dateLayout)
	rec, err := s.repo.DayRecord(ctx, staffID, day)
	if err != nil {
		return false, err
	}
	if !CanTransition(rec.Status(), Working) {
		return false, nil
	}
	a := &Attendance{StaffID: staffID, ClockIn: now, WorkDate: day}
	if err := s.repo.CreateAttendance(ctx, a); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) ClockOut(ctx context.Context, staffID int64) (*Attendance, error) {
	now := s.now()
	rec, err := s.repo.DayRecord(ctx, staffID, now.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	if !CanTransition(rec.Status(), Finished) {
		return nil, nil
	}
	hours := hoursBetween(rec.ClockIn, now)
	if err := s.repo.CloseAttendance(ctx, rec.ID, now, hours); err != nil {
		return nil, err
	}
	rec.ClockOut = &now
	rec.HoursWorked = hours
	return rec, nil
}

func (s *service) Today(ctx context.Context) ([]*DayEntry, error) {
	return s.repo.ListDay(ctx, s.today())
}
