package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPath reports a path that cannot be walked in the given document.
var ErrPath = errors.New("document: invalid path")

// Clone returns a deep copy of a decoded JSON object. A nil input yields an
// empty, non-nil map.
func Clone(src map[string]any) map[string]any {
	if len(src) == 0 {
		return make(map[string]any)
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = CloneValue(v)
	}
	return out
}

// CloneValue deep-copies maps and slices; scalars are returned as-is.
func CloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		clone := make(map[string]any, len(typed))
		for k, v := range typed {
			clone[k] = CloneValue(v)
		}
		return clone
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = CloneValue(v)
		}
		return clone
	default:
		return typed
	}
}

// Get resolves a dotted path.
func Get(root map[string]any, path string) (any, bool) {
	if root == nil || path == "" {
		return nil, false
	}
	current := any(root)
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// String resolves a dotted path and reports the value only when it is a
// string.
func String(root map[string]any, path string) (string, bool) {
	v, ok := Get(root, path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Map resolves a dotted path that must point at an object.
func Map(root map[string]any, path string) (map[string]any, bool) {
	v, ok := Get(root, path)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

// List resolves a dotted path that must point at an array.
func List(root map[string]any, path string) ([]any, bool) {
	v, ok := Get(root, path)
	if !ok {
		return nil, false
	}
	l, ok := v.([]any)
	return l, ok
}

// Set writes value at path. Missing or non-object intermediate map segments
// are replaced by fresh objects; numeric segments must address an existing
// slice element.
func Set(root map[string]any, path string, value any) error {
	if root == nil {
		return fmt.Errorf("%w: root map is nil", ErrPath)
	}
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrPath)
	}
	segments := strings.Split(path, ".")
	current := any(root)
	for i, segment := range segments {
		last := i == len(segments)-1
		switch node := current.(type) {
		case map[string]any:
			if last {
				node[segment] = value
				return nil
			}
			next := node[segment]
			if _, isList := next.([]any); isList && isIndex(segments[i+1]) {
				current = next
				continue
			}
			child, ok := next.(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[segment] = child
			}
			current = child
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return fmt.Errorf("%w: index %q out of range in %q", ErrPath, segment, path)
			}
			if last {
				node[idx] = value
				return nil
			}
			child, ok := node[idx].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[idx] = child
			}
			current = child
		default:
			return fmt.Errorf("%w: unexpected container at %q", ErrPath, segment)
		}
	}
	return nil
}

// Delete removes the key addressed by path. It reports whether anything was
// removed. Slice elements cannot be deleted.
func Delete(root map[string]any, path string) bool {
	if root == nil || path == "" {
		return false
	}
	parentPath, key := "", path
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		parentPath, key = path[:idx], path[idx+1:]
	}
	parent := root
	if parentPath != "" {
		m, ok := Map(root, parentPath)
		if !ok {
			return false
		}
		parent = m
	}
	if _, ok := parent[key]; !ok {
		return false
	}
	delete(parent, key)
	return true
}

func isIndex(segment string) bool {
	idx, err := strconv.Atoi(segment)
	return err == nil && idx >= 0
}
