// Package jsonv navigates untyped portal JSON. The portal is self-describing
// and unversioned: optional or missing fields are the normal case for many
// keys, so every extraction reports presence explicitly and the caller
// decides between a default and a hard failure.
package jsonv

import "encoding/json"

// Decode parses a raw body into an untyped JSON value.
func Decode(body []byte) (interface{}, bool) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, false
	}
	return v, true
}

// DecodeList parses a raw body that is expected to be a JSON array of
// objects. The portal returns an empty object instead of an empty array on
// some list endpoints, so a failed parse is reported, not assumed fatal.
func DecodeList(body []byte) ([]map[string]interface{}, bool) {
	var raw []map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, false
	}
	return raw, true
}

// At walks a path of string keys and int indices into nested maps/arrays.
func At(v interface{}, path ...interface{}) (interface{}, bool) {
	cur := v
	for _, p := range path {
		switch key := p.(type) {
		case string:
			m, ok := cur.(map[string]interface{})
			if !ok {
				return nil, false
			}
			cur, ok = m[key]
			if !ok {
				return nil, false
			}
		case int:
			a, ok := cur.([]interface{})
			if !ok || key < 0 || key >= len(a) {
				return nil, false
			}
			cur = a[key]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Str extracts a string at path.
func Str(v interface{}, path ...interface{}) (string, bool) {
	got, ok := At(v, path...)
	if !ok {
		return "", false
	}
	s, ok := got.(string)
	return s, ok
}

// Num extracts a number at path. encoding/json decodes all JSON numbers as
// float64.
func Num(v interface{}, path ...interface{}) (float64, bool) {
	got, ok := At(v, path...)
	if !ok {
		return 0, false
	}
	n, ok := got.(float64)
	return n, ok
}

// Uint extracts a non-negative whole number at path.
func Uint(v interface{}, path ...interface{}) (uint64, bool) {
	n, ok := Num(v, path...)
	if !ok || n < 0 || n != float64(uint64(n)) {
		return 0, false
	}
	return uint64(n), true
}

// Bool extracts a boolean at path.
func Bool(v interface{}, path ...interface{}) (bool, bool) {
	got, ok := At(v, path...)
	if !ok {
		return false, false
	}
	b, ok := got.(bool)
	return b, ok
}

// Arr extracts an array at path.
func Arr(v interface{}, path ...interface{}) ([]interface{}, bool) {
	got, ok := At(v, path...)
	if !ok {
		return nil, false
	}
	a, ok := got.([]interface{})
	return a, ok
}
