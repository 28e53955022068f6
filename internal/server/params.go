package server

import (
	"fmt"
	"math"
)

func stringParam(params map[string]any, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

// intParam reads an integer argument. JSON numbers arrive as float64, so a
// float is accepted only when it has no fractional part.
func intParam(params map[string]any, key string, defaultVal int) (int, error) {
	v, ok := params[key]
	if !ok {
		return defaultVal, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxUint32 {
			return 0, fmt.Errorf("%s must be an integer, got %v", key, n)
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("%s must be an integer, got %v (%T)", key, v, v)
}

// idParam reads a positive 32-bit window or scene identifier.
func idParam(params map[string]any, key string) (uint32, error) {
	n, err := intParam(params, key, 0)
	if err != nil {
		return 0, err
	}
	if n <= 0 || int64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("invalid %s: %d", key, n)
	}
	return uint32(n), nil
}

func boolParam(params map[string]any, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

func hasParam(params map[string]any, key string) bool {
	_, ok := params[key]
	return ok
}
