package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordKeepsInsertionOrder(t *testing.T) {
	r := NewRecord()
	r.Set("zeta", 1)
	r.Set("alpha", "a")
	r.Set("mid", nil)
	r.Set("zeta", 2)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Keys)
	assert.Equal(t, 3, r.Len())

	v, ok := r.Get("zeta")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.True(t, r.Has("mid"))
	assert.False(t, r.Has("missing"))
}

func TestRecordMarshalJSON(t *testing.T) {
	r := RecordOf("b", 1, "a", "x", "c", nil, 42, "ignored")

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":"x","c":null}`, string(data))
}

func TestSheetRecords(t *testing.T) {
	s := Sheet{
		Header: []string{"Date", "Customer", "Exception Type"},
		Rows: [][]any{
			{"2025-09-01", "Sample Customer A", nil},
			{"2025-09-02"},
		},
	}

	records := s.Records()
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Date", "Customer", "Exception Type"}, records[1].Keys)

	v, _ := records[1].Get("Customer")
	assert.Nil(t, v)
}

func TestColumnTypeOrDefault(t *testing.T) {
	assert.Equal(t, TypeText, Column{ID: "x"}.TypeOrDefault())
	assert.Equal(t, TypeInt, Column{ID: "x", Type: TypeInt}.TypeOrDefault())
}
