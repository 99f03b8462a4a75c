// file: internals/helpers/csv_test.go
package helper

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCSV(t *testing.T) {
	data, err := BuildCSV(
		[]string{"unit", "reading", "amount"},
		[][]string{
			{"A-101", "112.5", "37500"},
			{"A-102", "80", "24000"},
		},
	)
	require.NoError(t, err)

	// BOM so Excel opens it as UTF-8
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	body := string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	assert.Equal(t, "unit,reading,amount\nA-101,112.5,37500\nA-102,80,24000\n", body)
}

func TestBuildCSV_QuotesFieldsWithCommas(t *testing.T) {
	data, err := BuildCSV([]string{"name"}, [][]string{{`Tower A, Floor 2`}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Tower A, Floor 2"`)
}
