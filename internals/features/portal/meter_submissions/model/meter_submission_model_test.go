// file: internals/features/portal/meter_submissions/model/meter_submission_model_test.go
package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHasPendingForFeeType(t *testing.T) {
	water := uuid.New()
	power := uuid.New()

	rows := []TenantMeterSubmission{
		{MeterSubmissionFeeTypeID: water, MeterSubmissionStatus: MeterSubmissionStatusPending},
		{MeterSubmissionFeeTypeID: power, MeterSubmissionStatus: MeterSubmissionStatusApproved},
	}

	// the open water submission blocks a second one
	assert.True(t, HasPendingForFeeType(rows, water))

	// reviewed submissions do not block
	assert.False(t, HasPendingForFeeType(rows, power))

	// other fee types unaffected
	assert.False(t, HasPendingForFeeType(rows, uuid.New()))

	assert.False(t, HasPendingForFeeType(nil, water))
}

func TestHasPendingForFeeType_RejectedDoesNotBlockResubmit(t *testing.T) {
	water := uuid.New()
	rows := []TenantMeterSubmission{
		{MeterSubmissionFeeTypeID: water, MeterSubmissionStatus: MeterSubmissionStatusRejected},
	}
	assert.False(t, HasPendingForFeeType(rows, water))
}
