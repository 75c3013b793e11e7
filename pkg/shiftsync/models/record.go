// Package models defines data structures shared by the loaders, the Grist
// client and the board generators.
package models

import (
	"bytes"
	"encoding/json"
)

// Record represents a single row of named fields.
// Field order follows insertion order so that inferred columns come out in
// the same order as the source data.
type Record struct {
	// Keys lists field names in insertion order.
	Keys []string
	// Values maps field name to value.
	Values map[string]any
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{Values: make(map[string]any)}
}

// RecordOf builds a record from alternating key/value pairs.
// Non-string keys are ignored.
func RecordOf(pairs ...any) *Record {
	r := NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		if k, ok := pairs[i].(string); ok {
			r.Set(k, pairs[i+1])
		}
	}
	return r
}

// Set assigns a field, appending the key if it is new.
func (r *Record) Set(key string, value any) {
	if r.Values == nil {
		r.Values = make(map[string]any)
	}
	if _, ok := r.Values[key]; !ok {
		r.Keys = append(r.Keys, key)
	}
	r.Values[key] = value
}

// Get returns a field value.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// Has reports whether the field is present (even if nil).
func (r *Record) Has(key string) bool {
	_, ok := r.Values[key]
	return ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.Keys)
}

// MarshalJSON encodes the record as a JSON object in key order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
