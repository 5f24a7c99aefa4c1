package site

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// UploadsDir is the uploads folder name, relative to the site directory.
const UploadsDir = "uploads"

const jpegQuality = 85

// ErrUnknownSlot is returned for an image slot name that is not in Slots.
var ErrUnknownSlot = errors.New("unknown image slot")

// Slot names a fixed site image.
type Slot string

const (
	SlotLogo          Slot = "logo"
	SlotHero          Slot = "hero"
	SlotProduct1      Slot = "product1"
	SlotProduct2      Slot = "product2"
	SlotProduct3      Slot = "product3"
	SlotBadgeIcon     Slot = "badge_icon"
	SlotRatingIcon    Slot = "rating_icon"
	SlotAddressIcon   Slot = "address_icon"
	SlotHoursIcon     Slot = "hours_icon"
	SlotPhoneIcon     Slot = "phone_icon"
	SlotInstagramIcon Slot = "instagram_icon"
	SlotLineIcon      Slot = "line_icon"
)

// Slots lists every image slot.
var Slots = []Slot{
	SlotLogo, SlotHero, SlotProduct1, SlotProduct2, SlotProduct3,
	SlotBadgeIcon, SlotRatingIcon, SlotAddressIcon, SlotHoursIcon,
	SlotPhoneIcon, SlotInstagramIcon, SlotLineIcon,
}

func (s Slot) Valid() bool {
	for _, v := range Slots {
		if v == s {
			return true
		}
	}
	return false
}

func (s Slot) file() string { return path.Join(UploadsDir, string(s)+".jpg") }

// Media stores uploaded images as JPEG files under <site>/uploads.
type Media struct {
	siteDir string
	logger  *zap.Logger
}

func NewMedia(siteDir string, logger *zap.Logger) *Media {
	return &Media{siteDir: siteDir, logger: logger}
}

// Save normalises raw into the slot's JPEG file and returns its relative path.
func (m *Media) Save(slot Slot, raw []byte) (string, error) {
	if !slot.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}
	return m.write(slot.file(), raw)
}

// SaveProductImage stores the photo of product id.
func (m *Media) SaveProductImage(id int64, raw []byte) (string, error) {
	return m.write(path.Join(UploadsDir, fmt.Sprintf("product_%d.jpg", id)), raw)
}

// Remove deletes the slot's file. A missing file is not an error.
func (m *Media) Remove(slot Slot) error {
	if !slot.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}
	return m.RemoveFile(slot.file())
}

// RemoveFile deletes an uploaded file given its path relative to the site
// directory. Paths outside the uploads folder are refused.
func (m *Media) RemoveFile(rel string) error {
	full, err := m.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Path returns the slot's relative path, or "" when nothing is uploaded.
func (m *Media) Path(slot Slot) string {
	if !slot.Valid() {
		return ""
	}
	full, _ := m.resolve(slot.file())
	if _, err := os.Stat(full); err != nil {
		return ""
	}
	return slot.file()
}

// DataURI returns the slot's image inlined as a data URI, or "" when nothing
// is uploaded.
func (m *Media) DataURI(slot Slot) string {
	if !slot.Valid() {
		return ""
	}
	return m.Inline(slot.file())
}

// Inline reads an uploaded file and encodes it as a JPEG data URI. Unreadable
// files yield "".
func (m *Media) Inline(rel string) string {
	full, err := m.resolve(rel)
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			m.logger.Warn("image not readable", zap.String("path", rel), zap.Error(err))
		}
		return ""
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
}

func (m *Media) resolve(rel string) (string, error) {
	clean := path.Clean(strings.ReplaceAll(rel, "\\", "/"))
	if !strings.HasPrefix(clean, UploadsDir+"/") {
		return "", fmt.Errorf("path %q is outside %s", rel, UploadsDir)
	}
	return filepath.Join(m.siteDir, filepath.FromSlash(clean)), nil
}

func (m *Media) write(rel string, raw []byte) (string, error) {
	data, err := toJPEG(raw)
	if err != nil {
		return "", err
	}
	full, err := m.resolve(rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		m.logger.Error("create uploads dir failed", zap.String("path", rel), zap.Error(err))
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		m.logger.Error("image save failed", zap.String("path", rel), zap.Error(err))
		return "", fmt.Errorf("save image: %w", err)
	}
	return rel, nil
}

// toJPEG decodes any supported upload, flattens transparency onto white and
// re-encodes it as JPEG.
func toJPEG(raw []byte) ([]byte, error) {
	img, err := decodeImage(raw)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	flat := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(flat, flat.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, bounds.Min, draw.Over)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, flat, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return out.Bytes(), nil
}

func decodeImage(raw []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err == nil {
		return img, nil
	}
	if decoded, webpErr := webp.Decode(bytes.NewReader(raw)); webpErr == nil {
		return decoded, nil
	}
	return nil, err
}
