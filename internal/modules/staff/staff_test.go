package staff

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/georgemunganga/shopfront/internal/database/databasetest"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestService(t *testing.T, start time.Time) (*service, *clock) {
	t.Helper()
	c := &clock{t: start}
	svc := NewService(NewSQLRepository(databasetest.New(t))).(*service)
	svc.now = c.now
	return svc, c
}

var nine = time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

func TestAddMemberDefaults(t *testing.T) {
	svc, _ := newTestService(t, nine)
	ctx := context.Background()

	m, err := svc.AddMember(ctx, AddMemberRequest{Name: "Hana"})
	require.NoError(t, err)
	assert.Equal(t, DefaultHourlyWage, m.HourlyWage)
	assert.True(t, m.IsActive)

	_, err = svc.AddMember(ctx, AddMemberRequest{Name: " "})
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = svc.AddMember(ctx, AddMemberRequest{Name: "x", HourlyWage: -1})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestListOrdersByNameAndHidesInactive(t *testing.T) {
	svc, _ := newTestService(t, nine)
	ctx := context.Background()
	for _, n := range []string{"Yuki", "Aoi", "Ken"} {
		_, err := svc.AddMember(ctx, AddMemberRequest{Name: n, HourlyWage: 1100})
		require.NoError(t, err)
	}
	members, err := svc.ListMembers(ctx, true)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "Aoi", members[0].Name)

	require.NoError(t, svc.Deactivate(ctx, members[0].ID))
	active, err := svc.ListMembers(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)
	all, err := svc.ListMembers(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.False(t, all[0].IsActive)
}

func TestAttendanceDay(t *testing.T) {
	svc, c := newTestService(t, nine)
	ctx := context.Background()
	m, err := svc.AddMember(ctx, AddMemberRequest{Name: "Hana", HourlyWage: 1000})
	require.NoError(t, err)

	st, err := svc.Status(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, NotClockedIn, st)

	out, err := svc.ClockOut(ctx, m.ID)
	require.NoError(t, err)
	assert.Nil(t, out, "clock out without clock in")

	ok, err := svc.ClockIn(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	st, _ = svc.Status(ctx, m.ID)
	assert.Equal(t, Working, st)

	ok, err = svc.ClockIn(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, ok, "second clock in while working")

	c.t = nine.Add(8*time.Hour + 30*time.Minute)
	out, err = svc.ClockOut(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 8.5, out.HoursWorked)
	st, _ = svc.Status(ctx, m.ID)
	assert.Equal(t, Finished, st)

	ok, err = svc.ClockIn(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, ok, "finished day does not reopen")

	today, err := svc.Today(ctx)
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, "Hana", today[0].StaffName)
	assert.Equal(t, 8500.0, today[0].Earned)
	assert.Equal(t, "2026-03-14", today[0].WorkDate)

	c.t = nine.Add(24 * time.Hour)
	st, _ = svc.Status(ctx, m.ID)
	assert.Equal(t, NotClockedIn, st, "new day starts fresh")
}

func TestHoursRoundToTwoDecimals(t *testing.T) {
	in := nine
	assert.Equal(t, 0.33, hoursBetween(in, in.Add(20*time.Minute)))
	assert.Equal(t, 1.0, hoursBetween(in, in.Add(time.Hour)))
}

func TestClockInUnknownMember(t *testing.T) {
	svc, _ := newTestService(t, nine)
	ok, err := svc.ClockIn(context.Background(), 77)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(NotClockedIn, Working))
	assert.True(t, CanTransition(Working, Finished))
	assert.False(t, CanTransition(NotClockedIn, Finished))
	assert.False(t, CanTransition(Finished, Working))
}

func TestHandlerClockCycle(t *testing.T) {
	svc, _ := newTestService(t, nine)
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r)
	do := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	rec := do(http.MethodPost, "/api/v1/staff/", `{"name":"Hana"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, http.StatusOK, do(http.MethodPost, "/api/v1/staff/1/clock-in", "").Code)
	assert.Equal(t, http.StatusConflict, do(http.MethodPost, "/api/v1/staff/1/clock-in", "").Code)

	rec = do(http.MethodGet, "/api/v1/staff/1/status", "")
	assert.JSONEq(t, `{"status":"working"}`, rec.Body.String())

	assert.Equal(t, http.StatusOK, do(http.MethodPost, "/api/v1/staff/1/clock-out", "").Code)
	assert.Equal(t, http.StatusConflict, do(http.MethodPost, "/api/v1/staff/1/clock-out", "").Code)

	rec = do(http.MethodGet, "/api/v1/attendance/today", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"staff_name":"Hana"`)

	assert.Equal(t, http.StatusNotFound, do(http.MethodGet, "/api/v1/staff/9", "").Code)
}
