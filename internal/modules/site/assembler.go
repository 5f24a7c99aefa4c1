package site

import (
	"context"
	"fmt"
	"html/template"

	"github.com/georgemunganga/shopfront/internal/modules/catalog"
	"github.com/georgemunganga/shopfront/internal/modules/settings"
)

// SettingsSource supplies the persisted content document.
type SettingsSource interface {
	Get(ctx context.Context) (settings.Settings, error)
}

// ProductSource supplies the products shown in the menu grid.
type ProductSource interface {
	List(ctx context.Context, category catalog.Category) ([]*catalog.Product, error)
}

// Assembler builds render-ready content from defaults, stored settings,
// unsaved edits, uploaded images and the product list.
type Assembler struct {
	settings SettingsSource
	products ProductSource
	media    *Media
}

func NewAssembler(settings SettingsSource, products ProductSource, media *Media) *Assembler {
	return &Assembler{settings: settings, products: products, media: media}
}

// Assemble merges defaults < stored settings < edits and resolves every image
// for mode. edits may be nil.
func (a *Assembler) Assemble(ctx context.Context, mode Mode, edits settings.Settings) (*Content, error) {
	stored, err := a.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	values := Defaults().Merge(stored).Merge(edits)

	images := make(map[Slot]string, len(Slots))
	for _, slot := range Slots {
		var src string
		if mode == Preview {
			src = a.media.DataURI(slot)
		} else {
			src = a.media.Path(slot)
		}
		if src != "" {
			images[slot] = src
		}
	}

	products, err := a.products.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{Product: p, Src: a.productSrc(mode, p.ImagePath)})
	}
	return NewContent(values, images, views), nil
}

func (a *Assembler) productSrc(mode Mode, imagePath string) template.URL {
	if imagePath == "" {
		return ""
	}
	if mode == Preview {
		return template.URL(a.media.Inline(imagePath))
	}
	return template.URL(imagePath)
}
