package site

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/landing.html.tmpl
var templateFS embed.FS

var landing = template.Must(template.ParseFS(templateFS, "templates/landing.html.tmpl"))

// Render produces the complete landing page for c.
func Render(c *Content) (string, error) {
	if c == nil {
		c = NewContent(nil, nil, nil)
	}
	var b strings.Builder
	if err := landing.Execute(&b, c); err != nil {
		return "", err
	}
	return b.String(), nil
}
