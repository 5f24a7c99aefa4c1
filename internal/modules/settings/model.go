package settings

import (
	"strconv"
	"strings"
)

// Settings is the open-schema content document edited from the dashboard.
// Values are strings, booleans or numbers as decoded from JSON.
type Settings map[string]any

// Merge returns the union of s and partial; keys in partial win.
func (s Settings) Merge(partial Settings) Settings {
	out := make(Settings, len(s)+len(partial))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range partial {
		out[k] = v
	}
	return out
}

// String renders the value at key as text. Missing and null values are "".
func (s Settings) String(key string) string {
	switch v := s[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// Bool reads a flag, accepting JSON booleans, numbers and "true"/"false"
// style strings. def is returned when the key is absent or unreadable.
func (s Settings) Bool(key string, def bool) bool {
	switch v := s[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return def
		}
		return b
	default:
		return def
	}
}
