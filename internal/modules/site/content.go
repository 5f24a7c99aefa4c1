package site

import (
	"html/template"
	"unicode/utf8"

	"github.com/georgemunganga/shopfront/internal/modules/catalog"
	"github.com/georgemunganga/shopfront/internal/modules/settings"
)

// Mode selects how images are referenced in the rendered page.
type Mode int

const (
	// Publish links images by relative path for the static site.
	Publish Mode = iota
	// Preview inlines images so the page renders without a file server.
	Preview
)

// Section names a conditionally rendered region of the page.
type Section string

const (
	SectionHero     Section = "hero"
	SectionProducts Section = "products"
	SectionAbout    Section = "about"
	SectionContact  Section = "contact"
	SectionFooter   Section = "footer"
)

// ProductView is a product with its image resolved for the render mode.
type ProductView struct {
	*catalog.Product
	Src template.URL
}

func (p ProductView) Listed() bool  { return p.Status.Listed() }
func (p ProductView) Badge() string { return p.Status.Badge() }

// BadgeClass styles the badge per status.
func (p ProductView) BadgeClass() string {
	switch p.Status {
	case catalog.StatusNew:
		return "bg-white/90 backdrop-blur"
	case catalog.StatusHot:
		return "bg-brand text-white"
	default:
		return "bg-gray-900 text-white"
	}
}

func (p ProductView) Fit() string {
	if p.ImageFit.Valid() {
		return string(p.ImageFit)
	}
	return string(catalog.FitCover)
}

func (p ProductView) Position() string {
	if p.ImagePosition.Valid() {
		return string(p.ImagePosition)
	}
	return string(catalog.PositionCenter)
}

// Content is the render-ready page model. Missing keys read as "".
type Content struct {
	values   settings.Settings
	images   map[Slot]string
	sections map[Section]bool

	Products   []ProductView
	Theme      Theme
	FontFamily string
	FontCSS    template.CSS
}

// NewContent derives section visibility, theme and font from the merged
// values. images maps slots to already resolved sources; absent slots have no
// image.
func NewContent(values settings.Settings, images map[Slot]string, products []ProductView) *Content {
	if values == nil {
		values = settings.Settings{}
	}
	c := &Content{
		values:   values,
		images:   images,
		Products: products,
		Theme:    DeriveTheme(values.String("brand_color")),
	}
	c.FontFamily, c.FontCSS = resolveFont(values.String("font_family"))

	listed := false
	for _, p := range products {
		if p.Listed() {
			listed = true
			break
		}
	}
	c.sections = map[Section]bool{
		SectionHero:     c.flag("show_hero") && c.has("hero_title"),
		SectionProducts: c.flag("show_products") && (c.has("products_title") || listed),
		SectionAbout:    c.flag("show_about") && (c.has("about_title") || c.has("about_text1")),
		SectionContact:  c.flag("show_contact") && (c.has("contact_title") || c.has("address")),
	}
	c.sections[SectionFooter] = c.sections[SectionContact] && c.flag("show_footer")
	return c
}

func (c *Content) flag(key string) bool { return c.values.Bool(key, true) }
func (c *Content) has(key string) bool  { return c.values.String(key) != "" }

// Get returns the text value of key.
func (c *Content) Get(key string) string { return c.values.String(key) }

// Show reports whether a section renders.
func (c *Content) Show(section Section) bool { return c.sections[section] }

// Image returns the resolved source of a slot, or "" when it has no image.
func (c *Content) Image(slot Slot) template.URL { return template.URL(c.images[slot]) }

// Initial is the first character of the shop name, shown when there is no
// logo.
func (c *Content) Initial() string {
	r, size := utf8.DecodeRuneInString(c.Get("shop_name"))
	if size == 0 {
		return ""
	}
	return string(r)
}

// Values exposes the merged content document.
func (c *Content) Values() settings.Settings { return c.values }

// Link is a labelled href.
type Link struct {
	Text string
	Href string
}

// NavItems returns the navigation links that have a label.
func (c *Content) NavItems() []Link {
	var links []Link
	for _, n := range []string{"1", "2", "3"} {
		if text := c.Get("nav_item" + n); text != "" {
			links = append(links, Link{Text: text, Href: c.Get("nav_item" + n + "_link")})
		}
	}
	return links
}

// Stat is one figure in the about section.
type Stat struct {
	Number string
	Label  string
}

// Stats returns the about-section figures that have a number.
func (c *Content) Stats() []Stat {
	var stats []Stat
	for _, n := range []string{"1", "2", "3"} {
		if number := c.Get("stat" + n + "_number"); number != "" {
			stats = append(stats, Stat{Number: number, Label: c.Get("stat" + n + "_label")})
		}
	}
	return stats
}
