package staff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/georgemunganga/shopfront/internal/database"
)

type sqlRepo struct{ db *database.DB }

func NewSQLRepository(db *database.DB) Repository { return &sqlRepo{db: db} }

func (r *sqlRepo) CreateMember(ctx context.Context, m *Member) error {
	id, err := r.db.Insert(ctx, `INSERT INTO staff (name, hourly_wage, is_active) VALUES (?, ?, ?)`,
		m.Name, m.HourlyWage, database.BoolInt(m.IsActive))
	if err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	m.ID = id
	return nil
}

func (r *sqlRepo) GetMember(ctx context.Context, id int64) (*Member, error) {
	m := &Member{}
	err := r.db.QueryRow(ctx, `SELECT id, name, hourly_wage, is_active FROM staff WHERE id = ?`, id).
		Scan(&m.ID, &m.Name, &m.HourlyWage, &m.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *sqlRepo) ListMembers(ctx context.Context, activeOnly bool) ([]*Member, error) {
	query := `SELECT id, name, hourly_wage, is_active FROM staff`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	rows, err := r.db.Query(ctx, query+` ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var members []*Member
	for rows.Next() {
		m := &Member{}
		if err := rows.Scan(&m.ID, &m.Name, &m.HourlyWage, &m.IsActive); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *sqlRepo) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := r.db.Exec(ctx, `UPDATE staff SET is_active = ? WHERE id = ?`, database.BoolInt(active), id)
	return err
}

func (r *sqlRepo) DayRecord(ctx context.Context, staffID int64, day string) (*Attendance, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, staff_id, clock_in, clock_out, work_date, hours_worked
		 FROM attendance WHERE staff_id = ? AND work_date = ? ORDER BY id LIMIT 1`, staffID, day)
	a, err := scanAttendance(row, nil)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func (r *sqlRepo) CreateAttendance(ctx context.Context, a *Attendance) error {
	id, err := r.db.Insert(ctx, `INSERT INTO attendance (staff_id, clock_in, work_date) VALUES (?, ?, ?)`,
		a.StaffID, a.ClockIn.Format(time.RFC3339Nano), a.WorkDate)
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	a.ID = id
	return nil
}

func (r *sqlRepo) CloseAttendance(ctx context.Context, id int64, out time.Time, hours float64) error {
	_, err := r.db.Exec(ctx, `UPDATE attendance SET clock_out = ?, hours_worked = ? WHERE id = ?`,
		out.Format(time.RFC3339Nano), hours, id)
	return err
}

func (r *sqlRepo) ListDay(ctx context.Context, day string) ([]*DayEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.staff_id, a.clock_in, a.clock_out, a.work_date, a.hours_worked, s.name, s.hourly_wage
		 FROM attendance a JOIN staff s ON a.staff_id = s.id
		 WHERE a.work_date = ? ORDER BY a.clock_in DESC`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []*DayEntry
	for rows.Next() {
		e := &DayEntry{}
		a, err := scanAttendance(rows, []any{&e.StaffName, &e.HourlyWage})
		if err != nil {
			return nil, err
		}
		e.Attendance = *a
		e.Earned = round2(e.HourlyWage * e.HoursWorked)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface{ Scan(dest ...any) error }

func scanAttendance(s scanner, extra []any) (*Attendance, error) {
	a := &Attendance{}
	var in string
	var out sql.NullString
	var hours sql.NullFloat64
	dest := append([]any{&a.ID, &a.StaffID, &in, &out, &a.WorkDate, &hours}, extra...)
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, in)
	if err != nil {
		return nil, fmt.Errorf("attendance %d clock_in: %w", a.ID, err)
	}
	a.ClockIn = t
	if out.Valid && out.String != "" {
		t, err := time.Parse(time.RFC3339Nano, out.String)
		if err != nil {
			return nil, fmt.Errorf("attendance %d clock_out: %w", a.ID, err)
		}
		a.ClockOut = &t
	}
	a.HoursWorked = hours.Float64
	return a, nil
}
