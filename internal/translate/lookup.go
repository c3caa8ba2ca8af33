// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/trainjob-migrate/pkg/types"
)

// mapping returns m[key] as a mapping. present is false when the key is
// absent or null; ok is false when the value exists but is not a mapping.
func mapping(m types.Document, key string) (v types.Document, present, ok bool) {
	raw, found := m[key]
	if !found || raw == nil {
		return nil, false, true
	}
	v, ok = raw.(map[string]any)
	return v, true, ok
}

// sequence returns m[key] as a sequence, with the same present/ok
// semantics as mapping.
func sequence(m types.Document, key string) (v []any, present, ok bool) {
	raw, found := m[key]
	if !found || raw == nil {
		return nil, false, true
	}
	v, ok = raw.([]any)
	return v, true, ok
}

// path walks nested mappings and returns the mapping at the end of keys.
// A missing or non-mapping step yields nil.
func path(m types.Document, keys ...string) types.Document {
	cur := m
	for _, k := range keys {
		next, present, ok := mapping(cur, k)
		if !present || !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// replicas reads the replica count of a role. Absent or null means 0.
func replicas(role types.Document) (int, error) {
	raw, found := role["replicas"]
	if !found || raw == nil {
		return 0, nil
	}
	var n int64
	switch v := raw.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case uint64:
		if v > math.MaxInt32 {
			return 0, fmt.Errorf("replicas %d out of range", v)
		}
		n = int64(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("replicas %v is not an integer", v)
		}
		n = int64(v)
	default:
		return 0, fmt.Errorf("replicas has type %T, want integer", raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("replicas %d is negative", n)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("replicas %d out of range", n)
	}
	return int(n), nil
}

// quantityPresent reports whether a resource quantity is set to something
// other than an empty string or zero.
func quantityPresent(v any) bool {
	switch q := v.(type) {
	case nil:
		return false
	case string:
		s := strings.TrimSpace(q)
		if s == "" {
			return false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f != 0
		}
		return true
	case int:
		return q != 0
	case int64:
		return q != 0
	case uint64:
		return q != 0
	case float64:
		return q != 0
	case bool:
		return q
	default:
		return true
	}
}

// clone deep-copies a decoded YAML value so the output never aliases the
// input tree.
func clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = clone(e)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, e := range t {
			out[k] = clone(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = clone(e)
		}
		return out
	default:
		return v
	}
}

// empty reports whether v is null, an empty sequence or an empty mapping.
func empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	case map[any]any:
		return len(t) == 0
	case string:
		return t == ""
	default:
		return false
	}
}
