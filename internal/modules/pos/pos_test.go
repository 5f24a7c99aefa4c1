package pos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/georgemunganga/shopfront/internal/database/databasetest"
	"github.com/georgemunganga/shopfront/internal/modules/catalog"
	"github.com/georgemunganga/shopfront/internal/modules/staff"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParsePrice(t *testing.T) {
	cases := map[string]int{
		"¥2,800":       2800,
		"1200":         1200,
		"price on ask": 0,
		"":             0,
		"¥0":           0,
		"from ¥3,5OO":  35,
	}
	cases[strings.Repeat("9", 30)] = 0
	for in, want := range cases {
		assert.Equal(t, want, parsePrice(in), in)
	}
}

func TestMenuSkipsSoldOutAndUnpriced(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	products := catalog.NewSQLRepository(db)
	cat := catalog.NewService(products, nil, zap.NewNop())
	soldOut := catalog.StatusSoldOut
	for _, req := range []catalog.CreateProductRequest{
		{Name: "Shortcake", Price: "¥2,800"},
		{Name: "Seasonal", Price: "ask staff"},
		{Name: "Tart", Price: "¥600"},
		{Name: "Free sample", Price: "¥0"},
	} {
		_, err := cat.AddProduct(ctx, req)
		require.NoError(t, err)
	}
	_, err := cat.UpdateProduct(ctx, 3, catalog.ProductPatch{Status: &soldOut})
	require.NoError(t, err)

	svc := NewService(NewSQLRepository(db), products)
	menu, err := svc.Menu(ctx)
	require.NoError(t, err)
	assert.Equal(t, []MenuItem{{ProductID: 1, Name: "Shortcake", Price: 2800}}, menu)
}

func TestRecordSaleAndToday(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	members := staff.NewService(staff.NewSQLRepository(db))
	m, err := members.AddMember(ctx, staff.AddMemberRequest{Name: "Hana"})
	require.NoError(t, err)

	svc := NewService(NewSQLRepository(db), catalog.NewSQLRepository(db)).(*service)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	first, err := svc.RecordSale(ctx, RecordSaleRequest{Items: "Shortcake", TotalAmount: 2800})
	require.NoError(t, err)
	assert.Equal(t, PaymentCash, first.PaymentMethod)
	_, err = uuid.Parse(first.Reference)
	assert.NoError(t, err)

	now = now.Add(time.Hour)
	second, err := svc.RecordSale(ctx, RecordSaleRequest{
		Cart:          []CartLine{{Name: "Tart", Price: 600}, {Name: "Latte", Price: 550}},
		TotalAmount:   1,
		PaymentMethod: PaymentPayPay,
		StaffID:       &m.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tart, Latte", second.Items)
	assert.Equal(t, 1150.0, second.TotalAmount)
	assert.NotEqual(t, first.Reference, second.Reference)

	sales, err := svc.TodaySales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, second.ID, sales[0].ID, "newest first")
	assert.Equal(t, "Hana", sales[0].StaffName)
	assert.Equal(t, "", sales[1].StaffName)

	total, err := svc.TodayTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3950.0, total)

	now = now.Add(24 * time.Hour)
	total, err = svc.TodayTotal(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestRecordSaleValidation(t *testing.T) {
	db := databasetest.New(t)
	svc := NewService(NewSQLRepository(db), catalog.NewSQLRepository(db))
	_, err := svc.RecordSale(context.Background(), RecordSaleRequest{TotalAmount: 10})
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = svc.RecordSale(context.Background(), RecordSaleRequest{Items: "x", PaymentMethod: "bitcoin"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestHandlerSale(t *testing.T) {
	db := databasetest.New(t)
	r := chi.NewRouter()
	NewHandler(NewService(NewSQLRepository(db), catalog.NewSQLRepository(db))).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/pos/sales",
		strings.NewReader(`{"items":"Shortcake","total_amount":2800,"payment_method":"credit_card"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pos/sales/today/total", nil))
	assert.JSONEq(t, `{"total":2800}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pos/menu", nil))
	assert.JSONEq(t, `[]`, rec.Body.String())
}
