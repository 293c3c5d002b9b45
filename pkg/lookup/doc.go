// Package lookup resolves dotted property paths against generic structured
// data without reflection.
//
// A path like "billing.card.number" is split on dots and each segment is
// resolved against the current value: map keys for map[string]any, numeric
// indices for []any, and the Getter interface for custom containers. A path
// that runs into a missing key, an out-of-range index, or a scalar returns
// ok=false rather than an error, which callers treat as "value absent".
//
// Basic usage:
//
//	data := map[string]any{"user": map[string]any{"email": "a@b.co"}}
//	v, ok := lookup.Resolve(data, "user.email") // "a@b.co", true
package lookup
