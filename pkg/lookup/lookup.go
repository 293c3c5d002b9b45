package lookup

import (
	"strconv"
	"strings"
)

// Getter lets custom containers participate in path resolution without
// exposing their internal representation.
type Getter interface {
	Get(key string) (any, bool)
}

// Resolve walks a dotted path against source and returns the value at the
// end of the path. The boolean reports whether every segment resolved; a
// missing key, an out-of-range index, or a scalar mid-path all yield false.
//
// An empty path resolves to the source itself.
func Resolve(source any, path string) (any, bool) {
	if path == "" {
		return source, true
	}

	current := source
	for segment := range strings.SplitSeq(path, ".") {
		if segment == "" {
			return nil, false
		}

		next, ok := step(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}

	return current, true
}

// Has reports whether the full path resolves against source.
func Has(source any, path string) bool {
	_, ok := Resolve(source, path)
	return ok
}

// String resolves path and returns the value as a string. Non-string
// terminal values and unresolved paths return ok=false.
func String(source any, path string) (string, bool) {
	v, ok := Resolve(source, path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func step(current any, segment string) (any, bool) {
	switch c := current.(type) {
	case nil:
		return nil, false
	case Getter:
		return c.Get(segment)
	case map[string]any:
		v, ok := c[segment]
		return v, ok
	case []any:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 || idx >= len(c) {
			return nil, false
		}
		return c[idx], true
	default:
		return nil, false
	}
}
