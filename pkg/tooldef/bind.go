package tooldef

import (
	"fmt"
	"strconv"
	"strings"
)

// GetString is a helper to extract a string parameter with a default value
func GetString(params map[string]any, key, defaultValue string) string {
	if val, ok := params[key]; ok {
		if str, ok := val.(string); ok && str != "" {
			return str
		}
	}
	return defaultValue
}

// GetFloatPtr extracts an optional number parameter. Numeric strings are
// accepted since some clients send every argument as a string.
func GetFloatPtr(params map[string]any, key string) (*float64, error) {
	val, ok := params[key]
	if !ok || val == nil {
		return nil, nil
	}

	switch v := val.(type) {
	case float64:
		return &v, nil
	case float32:
		f := float64(v)
		return &f, nil
	case int:
		f := float64(v)
		return &f, nil
	case int64:
		f := float64(v)
		return &f, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number, got %q", key, v)
		}
		return &f, nil
	default:
		return nil, fmt.Errorf("%s must be a number, got %T", key, val)
	}
}
