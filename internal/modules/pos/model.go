package pos

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrInvalid marks a request rejected by validation.
var ErrInvalid = errors.New("invalid sale")

// PaymentMethod represents how a sale was paid.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentPayPay      PaymentMethod = "paypay"
	PaymentCreditCard  PaymentMethod = "credit_card"
	PaymentTransitCard PaymentMethod = "transit_card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentPayPay, PaymentCreditCard, PaymentTransitCard:
		return true
	}
	return false
}

// MenuItem is a product that can be rung up at the counter.
type MenuItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
}

// CartLine is one item in a counter cart.
type CartLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Sale is an append-only ledger entry.
type Sale struct {
	ID            int64         `json:"id"`
	Reference     string        `json:"reference"`
	Items         string        `json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	StaffID       *int64        `json:"staff_id,omitempty"`
	StaffName     string        `json:"staff_name,omitempty"`
	SaleDate      time.Time     `json:"sale_date"`
}

// RecordSaleRequest is the payload for recording a sale. When Cart is set,
// Items and TotalAmount are derived from it; otherwise both are taken as
// given.
type RecordSaleRequest struct {
	Items         string        `json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	StaffID       *int64        `json:"staff_id,omitempty"`
	Cart          []CartLine    `json:"cart,omitempty"`
}

// parsePrice reads the digits of a free-text price such as "¥2,800".
// Text without digits, or too many to fit, reads as 0.
func parsePrice(text string) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
