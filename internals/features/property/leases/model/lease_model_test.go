// file: internals/features/property/leases/model/lease_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaseStatusValid(t *testing.T) {
	for _, s := range []LeaseStatus{
		LeaseStatusActive, LeaseStatusPending, LeaseStatusExpired, LeaseStatusTerminated,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, LeaseStatus("suspended").Valid())
	assert.False(t, LeaseStatus("").Valid())
}
