package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalid marks a request rejected by validation.
var ErrInvalid = errors.New("invalid product")

// Category groups products on the menu.
type Category string

const (
	CategoryCake    Category = "cake"
	CategoryBread   Category = "bread"
	CategoryDessert Category = "dessert"
	CategoryDrink   Category = "drink"
	CategorySet     Category = "set"
	CategoryOther   Category = "other"
)

// Categories lists every accepted category in display order.
var Categories = []Category{CategoryCake, CategoryBread, CategoryDessert, CategoryDrink, CategorySet, CategoryOther}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Status is the selling state of a product.
type Status string

const (
	StatusActive  Status = "active"
	StatusNew     Status = "new"
	StatusHot     Status = "hot"
	StatusLimited Status = "limited"
	StatusSoldOut Status = "soldout"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusNew, StatusHot, StatusLimited, StatusSoldOut:
		return true
	}
	return false
}

// Badge is the label shown over the product photo, if any.
func (s Status) Badge() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusHot:
		return "Popular"
	case StatusLimited:
		return "Limited"
	}
	return ""
}

// Listed reports whether the product may be shown to customers.
func (s Status) Listed() bool { return s != StatusSoldOut }

// ImageFit maps to CSS object-fit.
type ImageFit string

const (
	FitCover   ImageFit = "cover"
	FitContain ImageFit = "contain"
	FitFill    ImageFit = "fill"
)

func (f ImageFit) Valid() bool { return f == FitCover || f == FitContain || f == FitFill }

// ImagePosition maps to CSS object-position.
type ImagePosition string

const (
	PositionCenter ImagePosition = "center"
	PositionTop    ImagePosition = "top"
	PositionBottom ImagePosition = "bottom"
	PositionLeft   ImagePosition = "left"
	PositionRight  ImagePosition = "right"
)

func (p ImagePosition) Valid() bool {
	switch p {
	case PositionCenter, PositionTop, PositionBottom, PositionLeft, PositionRight:
		return true
	}
	return false
}

// Direction moves a product one place in the display order.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Product is an item on the website menu and the POS menu.
type Product struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Price         string        `json:"price,omitempty"` // free text, e.g. "¥2,800"
	Category      Category      `json:"category"`
	ImagePath     string        `json:"image_path,omitempty"`
	ImageFit      ImageFit      `json:"image_fit"`
	ImagePosition ImagePosition `json:"image_position"`
	Status        Status        `json:"status"`
	SortOrder     int           `json:"sort_order"`
}

// CreateProductRequest holds the data for adding a product.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Category    Category `json:"category"`
	Status      Status   `json:"status"`
}

// ProductPatch is a partial update. Nil fields are left unchanged.
type ProductPatch struct {
	Name          *string        `json:"name,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Price         *string        `json:"price,omitempty"`
	Category      *Category      `json:"category,omitempty"`
	ImagePath     *string        `json:"image_path,omitempty"`
	ImageFit      *ImageFit      `json:"image_fit,omitempty"`
	ImagePosition *ImagePosition `json:"image_position,omitempty"`
	Status        *Status        `json:"status,omitempty"`
}

// DecodePatch reads a JSON patch, rejecting field names it does not know.
func DecodePatch(r io.Reader) (ProductPatch, error) {
	var p ProductPatch
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return ProductPatch{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return p, p.Validate()
}

// Empty reports whether the patch changes nothing.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Category == nil &&
		p.ImagePath == nil && p.ImageFit == nil && p.ImagePosition == nil && p.Status == nil
}

func (p ProductPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalid)
	}
	if p.Category != nil && !p.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalid, *p.Category)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalid, *p.Status)
	}
	if p.ImageFit != nil && !p.ImageFit.Valid() {
		return fmt.Errorf("%w: unknown image_fit %q", ErrInvalid, *p.ImageFit)
	}
	if p.ImagePosition != nil && !p.ImagePosition.Valid() {
		return fmt.Errorf("%w: unknown image_position %q", ErrInvalid, *p.ImagePosition)
	}
	return nil
}

// Apply copies the present fields onto prod.
func (p ProductPatch) Apply(prod *Product) {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Category != nil {
		prod.Category = *p.Category
	}
	if p.ImagePath != nil {
		prod.ImagePath = *p.ImagePath
	}
	if p.ImageFit != nil {
		prod.ImageFit = *p.ImageFit
	}
	if p.ImagePosition != nil {
		prod.ImagePosition = *p.ImagePosition
	}
	if p.Status != nil {
		prod.Status = *p.Status
	}
}
