package inventory

import "errors"

// ErrInvalid marks a request rejected by validation.
var ErrInvalid = errors.New("invalid inventory request")

const (
	DefaultCategory  = "Ingredient"
	DefaultThreshold = 10
	DefaultUnit      = "pcs"
)

// Item is a stocked ingredient or supply.
type Item struct {
	ID        int64  `json:"id"`
	ItemName  string `json:"item_name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	Threshold int    `json:"threshold"`
	Unit      string `json:"unit"`
}

// IsLow reports whether the item has fallen below its reorder threshold.
func (i *Item) IsLow() bool { return i.Quantity < i.Threshold }

// AddItemRequest holds the data for adding an item. A nil threshold means
// the default threshold.
type AddItemRequest struct {
	ItemName  string `json:"item_name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	Threshold *int   `json:"threshold"`
	Unit      string `json:"unit"`
}

// AdjustRequest changes the quantity by a signed delta.
type AdjustRequest struct {
	Delta int `json:"delta"`
}
