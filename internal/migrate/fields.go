package migrate

import (
	"math"
	"strconv"
)

// Field readers for decoded JSON objects. Each returns the zero value when the
// key is absent or holds an incompatible type.

func str(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return v
	case float64:
		// Old clients occasionally stored numeric ids.
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func num(obj map[string]any, key string) float64 {
	switch v := obj[key].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return 0
}

func boolean(obj map[string]any, key string) bool {
	v, _ := obj[key].(bool)
	return v
}

func list(obj map[string]any, key string) []any {
	v, _ := obj[key].([]any)
	return v
}
