package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCSV(t *testing.T) {
	input := "\ufeffdate,client,employee,bill_rate\n" +
		"2025-09-01,\"Smith, Tony\",\"Nolen, Carlos\",$26.36\n" +
		"2025-09-02,\"Davis, Mary\",,$25.00\n" +
		"2025-09-03,Short\n"

	records, err := DecodeCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"date", "client", "employee", "bill_rate"}, records[0].Keys)

	v, _ := records[0].Get("client")
	assert.Equal(t, "Smith, Tony", v)

	v, ok := records[1].Get("employee")
	assert.True(t, ok)
	assert.Nil(t, v, "empty strings become nil")

	v, ok = records[2].Get("bill_rate")
	assert.True(t, ok)
	assert.Nil(t, v, "short rows are padded with nil")
}

func TestDecodeCSVEmpty(t *testing.T) {
	records, err := DecodeCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = DecodeCSV(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}
