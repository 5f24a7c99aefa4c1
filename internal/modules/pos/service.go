package pos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgemunganga/shopfront/internal/modules/catalog"
	"github.com/google/uuid"
)

// ProductLister supplies the products the counter menu is built from.
type ProductLister interface {
	List(ctx context.Context, category catalog.Category) ([]*catalog.Product, error)
}

// Service defines point-of-sale business logic.
type Service interface {
	// Menu lists sellable products: not sold out and with a positive price.
	Menu(ctx context.Context) ([]MenuItem, error)
	RecordSale(ctx context.Context, req RecordSaleRequest) (*Sale, error)
	TodaySales(ctx context.Context) ([]*Sale, error)
	TodayTotal(ctx context.Context) (float64, error)
}

type service struct {
	repo     Repository
	products ProductLister
	now      func() time.Time
}

func NewService(repo Repository, products ProductLister) Service {
	return &service{repo: repo, products: products, now: time.Now}
}

func (s *service) Menu(ctx context.Context) ([]MenuItem, error) {
	products, err := s.products.List(ctx, "")
	if err != nil {
		return nil, err
	}
	menu := []MenuItem{}
	for _, p := range products {
		if !p.Status.Listed() {
			continue
		}
		price := parsePrice(p.Price)
		if price <= 0 {
			continue
		}
		menu = append(menu, MenuItem{ProductID: p.ID, Name: p.Name, Price: price})
	}
	return menu, nil
}

func (s *service) RecordSale(ctx context.Context, req RecordSaleRequest) (*Sale, error) {
	items, total := req.Items, req.TotalAmount
	if len(req.Cart) > 0 {
		names := make([]string, 0, len(req.Cart))
		total = 0
		for _, line := range req.Cart {
			names = append(names, line.Name)
			total += line.Price
		}
		items = strings.Join(names, ", ")
	}
	if strings.TrimSpace(items) == "" {
		return nil, fmt.Errorf("%w: a sale needs items", ErrInvalid)
	}
	method := req.PaymentMethod
	if method == "" {
		method = PaymentCash
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalid, method)
	}
	sale := &Sale{
		Reference:     uuid.NewString(),
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: method,
		StaffID:       req.StaffID,
		SaleDate:      s.now(),
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *service) TodaySales(ctx context.Context) ([]*Sale, error) {
	return s.repo.ListDay(ctx, s.now().Format(dateLayout))
}

func (s *service) TodayTotal(ctx context.Context) (float64, error) {
	return s.repo.TotalDay(ctx, s.now().Format(dateLayout))
}
