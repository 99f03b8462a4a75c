// file: internals/features/maintenance/requests/model/maintenance_request_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	all := []MaintenanceStatus{
		MaintenanceStatusOpen, MaintenanceStatusInProgress,
		MaintenanceStatusResolved, MaintenanceStatusClosed,
	}

	allowed := map[MaintenanceStatus][]MaintenanceStatus{
		MaintenanceStatusOpen:       {MaintenanceStatusInProgress, MaintenanceStatusResolved},
		MaintenanceStatusInProgress: {MaintenanceStatusResolved},
		MaintenanceStatusResolved:   {MaintenanceStatusClosed},
		MaintenanceStatusClosed:     {},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestMaintenanceStatusValid(t *testing.T) {
	assert.True(t, MaintenanceStatusOpen.Valid())
	assert.True(t, MaintenanceStatusClosed.Valid())
	assert.False(t, MaintenanceStatus("reopened").Valid())
}

func TestMaintenancePriorityValid(t *testing.T) {
	for _, p := range []MaintenancePriority{
		MaintenancePriorityLow, MaintenancePriorityMedium,
		MaintenancePriorityHigh, MaintenancePriorityUrgent,
	} {
		assert.True(t, p.Valid(), string(p))
	}
	assert.False(t, MaintenancePriority("critical").Valid())
}
