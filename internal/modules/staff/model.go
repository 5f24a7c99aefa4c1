package staff

import (
	"errors"
	"math"
	"time"
)

// ErrInvalid marks a request rejected by validation.
var ErrInvalid = errors.New("invalid staff request")

// DefaultHourlyWage applies when a member is added without a wage.
const DefaultHourlyWage = 1200.0

// Member is an employee who can clock in and out.
type Member struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	HourlyWage float64 `json:"hourly_wage"`
	IsActive   bool    `json:"is_active"`
}

// AddMemberRequest holds the data for adding a member. A zero wage means the
// default wage.
type AddMemberRequest struct {
	Name       string  `json:"name"`
	HourlyWage float64 `json:"hourly_wage"`
}

// Status is a member's attendance state for one calendar day.
type Status string

const (
	NotClockedIn Status = "not_clocked_in"
	Working      Status = "working"
	Finished     Status = "finished"
)

// validTransitions is the per-day attendance state machine. A finished day
// does not reopen.
var validTransitions = map[Status][]Status{
	NotClockedIn: {Working},
	Working:      {Finished},
	Finished:     {},
}

// CanTransition returns true if the transition from current to next is valid.
func CanTransition(current, next Status) bool {
	for _, s := range validTransitions[current] {
		if s == next {
			return true
		}
	}
	return false
}

// Attendance is one clock-in record.
type Attendance struct {
	ID          int64      `json:"id"`
	StaffID     int64      `json:"staff_id"`
	ClockIn     time.Time  `json:"clock_in"`
	ClockOut    *time.Time `json:"clock_out,omitempty"`
	WorkDate    string     `json:"work_date"`
	HoursWorked float64    `json:"hours_worked"`
}

// Status derives the day state from the record.
func (a *Attendance) Status() Status {
	switch {
	case a == nil:
		return NotClockedIn
	case a.ClockOut == nil:
		return Working
	default:
		return Finished
	}
}

// DayEntry is an attendance record joined with the member it belongs to.
type DayEntry struct {
	Attendance
	StaffName  string  `json:"staff_name"`
	HourlyWage float64 `json:"hourly_wage"`
	Earned     float64 `json:"earned"`
}

const dateLayout = "2006-01-02"

// hoursBetween is the elapsed time in hours rounded to two decimals.
func hoursBetween(in, out time.Time) float64 {
	return round2(out.Sub(in).Hours())
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
