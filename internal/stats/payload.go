package stats

import (
	"encoding/json"
	"math"
)

// Payload is the decoded upstream JSON, left untyped because its shape
// depends on the API version and on whether the account ever played.
type Payload map[string]any

func object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// path walks nested objects, returning false as soon as a key is missing.
func path(root map[string]any, keys ...string) (map[string]any, bool) {
	cur := root
	for _, k := range keys {
		next, ok := object(cur[k])
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func number(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func float(m map[string]any, key string) float64 {
	f, _ := number(m, key)
	return f
}

// integer truncates toward zero and saturates at the int range; converting an
// out-of-range float64 to int is implementation-defined.
func integer(m map[string]any, key string) int {
	f := math.Trunc(float(m, key))
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// saturatingAdd adds without wrapping past the int range.
func saturatingAdd(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}

func text(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// anyPositive reports whether at least one numeric field of m is above zero.
func anyPositive(m map[string]any) bool {
	for k := range m {
		if f, ok := number(m, k); ok && f > 0 {
			return true
		}
	}
	return false
}
