package utm

import (
	"net/url"
	"strings"
)

// Query is an ordered query-string mapping with one value per key.
//
// Keys keep the position they were first inserted at. Setting an existing key
// replaces its value in place; setting a new key appends it.
type Query struct {
	keys   []string
	values map[string]string
}

// NewQuery creates an empty query mapping
func NewQuery() *Query {
	return &Query{values: make(map[string]string)}
}

// ParseQuery decodes a raw query string into an ordered mapping.
//
// Blank values are kept, a key without "=" maps to "", empty segments are
// skipped and a repeated key keeps its first position with its last value.
// Segments that fail to unescape are kept as written.
func ParseQuery(raw string) *Query {
	q := NewQuery()
	for _, segment := range strings.Split(raw, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		q.Set(unescape(key), unescape(value))
	}
	return q
}

func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// Get returns the value for key and whether it is present
func (q *Query) Get(key string) (string, bool) {
	v, ok := q.values[key]
	return v, ok
}

// Has reports whether key is present
func (q *Query) Has(key string) bool {
	_, ok := q.values[key]
	return ok
}

// Set writes value for key, keeping the key's position if it already exists
func (q *Query) Set(key, value string) {
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = value
}

// SetIfNotBlank writes value only when it is non-empty after trimming.
// A blank value leaves any existing entry untouched.
func (q *Query) SetIfNotBlank(key, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	q.Set(key, value)
	return true
}

// Keys returns the keys in order
func (q *Query) Keys() []string {
	keys := make([]string, len(q.keys))
	copy(keys, q.keys)
	return keys
}

// Len returns the number of keys
func (q *Query) Len() int {
	return len(q.keys)
}

// Encode serializes the mapping as "k=v&k=v" in key order using standard
// query escaping (spaces become "+").
func (q *Query) Encode() string {
	var b strings.Builder
	for i, key := range q.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.values[key]))
	}
	return b.String()
}
