package model

import (
	"strconv"
	"strings"
)

// The API is loosely typed: numbers arrive as JSON numbers or as strings
// depending on the endpoint, and nested objects may be missing entirely.
// These readers absorb that so the record constructors never fail on a
// missing or oddly-typed key.

func stringField(data map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := data[key]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case string:
			if val != "" {
				return val
			}
		case float64:
			return formatNumber(val)
		case int:
			return strconv.Itoa(val)
		}
	}
	return ""
}

func stringPtrField(data map[string]any, key string) *string {
	v, ok := data[key]
	if !ok || v == nil {
		return nil
	}
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case float64:
		s = formatNumber(val)
	case int:
		s = strconv.Itoa(val)
	default:
		return nil
	}
	return &s
}

func intField(data map[string]any, key string) int {
	v, ok := data[key]
	if !ok {
		return 0
	}
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

func intPtrField(data map[string]any, key string) *int {
	if v, ok := data[key]; !ok || v == nil {
		return nil
	}
	n := intField(data, key)
	return &n
}

func floatField(data map[string]any, key string) float64 {
	v, ok := data[key]
	if !ok {
		return 0.0
	}
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0.0
		}
		return f
	}
	return 0.0
}

// subObject reports the nested object under key, and whether it is
// present and non-empty. Embedded records are only built when it is.
func subObject(data map[string]any, key string) (map[string]any, bool) {
	v, ok := data[key]
	if !ok || v == nil {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	if !ok || len(obj) == 0 {
		return nil, false
	}
	return obj, true
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
