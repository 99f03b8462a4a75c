// file: internals/features/finance/payments/service/order_id_test.go
package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderID_RoundTrip(t *testing.T) {
	billingID := uuid.New()

	orderID := BuildOrderID(billingID)
	assert.True(t, strings.HasPrefix(orderID, "PH-"))

	got, err := ParseOrderID(orderID)
	require.NoError(t, err)
	assert.Equal(t, billingID, got)
}

func TestParseOrderID_Rejects(t *testing.T) {
	cases := []string{
		"",
		"PH-",
		"PH-not-a-uuid-at-all-x",
		"XX-7c9e6679-7425-40de-944b-e07fc1f90ae7-1700000000",
		"7c9e6679-7425-40de-944b-e07fc1f90ae7",
	}
	for _, c := range cases {
		_, err := ParseOrderID(c)
		assert.Error(t, err, c)
	}
}
