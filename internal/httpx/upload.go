package httpx

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// MaxImageBytes caps an uploaded image.
const MaxImageBytes = 12 << 20

// ImageMimes are the upload types the image decoder understands.
var ImageMimes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// ReadImage returns the uploaded image bytes. A multipart request is read from
// field; any other request is read from its body.
func ReadImage(r *http.Request, field string) ([]byte, error) {
	var src io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(MaxImageBytes + (2 << 20)); err != nil {
			return nil, errors.New("invalid multipart upload")
		}
		file, _, err := r.FormFile(field)
		if err != nil {
			return nil, errors.New("uploaded file is missing")
		}
		defer file.Close()
		src = file
	}
	raw, err := io.ReadAll(io.LimitReader(src, MaxImageBytes+1))
	if err != nil {
		return nil, errors.New("unable to read uploaded file")
	}
	if len(raw) == 0 {
		return nil, errors.New("uploaded file is empty")
	}
	if len(raw) > MaxImageBytes {
		return nil, errors.New("uploaded file is too large")
	}
	mime := http.DetectContentType(raw)
	for _, candidate := range ImageMimes {
		if mime == candidate {
			return raw, nil
		}
	}
	return nil, errors.New("uploaded file must be a JPEG, PNG, GIF or WebP image")
}
