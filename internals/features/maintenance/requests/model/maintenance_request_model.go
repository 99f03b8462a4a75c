// file: internals/features/maintenance/requests/model/maintenance_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================
   Enums (Go-side)
   ========================= */

type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "open"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusResolved   MaintenanceStatus = "resolved"
	MaintenanceStatusClosed     MaintenanceStatus = "closed"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusOpen, MaintenanceStatusInProgress, MaintenanceStatusResolved, MaintenanceStatusClosed:
		return true
	}
	return false
}

// CanTransitionTo enforces the forward-only order. A trivial fix may jump
// open -> resolved without passing through in_progress.
func (s MaintenanceStatus) CanTransitionTo(next MaintenanceStatus) bool {
	switch s {
	case MaintenanceStatusOpen:
		return next == MaintenanceStatusInProgress || next == MaintenanceStatusResolved
	case MaintenanceStatusInProgress:
		return next == MaintenanceStatusResolved
	case MaintenanceStatusResolved:
		return next == MaintenanceStatusClosed
	}
	return false
}

type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "low"
	MaintenancePriorityMedium MaintenancePriority = "medium"
	MaintenancePriorityHigh   MaintenancePriority = "high"
	MaintenancePriorityUrgent MaintenancePriority = "urgent"
)

func (p MaintenancePriority) Valid() bool {
	switch p {
	case MaintenancePriorityLow, MaintenancePriorityMedium, MaintenancePriorityHigh, MaintenancePriorityUrgent:
		return true
	}
	return false
}

/* =========================
   Model: maintenance_requests
   ========================= */

type MaintenanceRequest struct {
	MaintenanceRequestID uuid.UUID `json:"maintenance_request_id" gorm:"column:maintenance_request_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	MaintenanceRequestCompanyID uuid.UUID `json:"maintenance_request_company_id" gorm:"column:maintenance_request_company_id;type:uuid;not null;index"`

	MaintenanceRequestUnitID   uuid.UUID  `json:"maintenance_request_unit_id"             gorm:"column:maintenance_request_unit_id;type:uuid;not null;index"`
	MaintenanceRequestTenantID *uuid.UUID `json:"maintenance_request_tenant_id,omitempty" gorm:"column:maintenance_request_tenant_id;type:uuid;index"`

	MaintenanceRequestTitle       string  `json:"maintenance_request_title"                 gorm:"column:maintenance_request_title;type:varchar(160);not null"`
	MaintenanceRequestDescription *string `json:"maintenance_request_description,omitempty" gorm:"column:maintenance_request_description;type:text"`

	MaintenanceRequestPriority MaintenancePriority `json:"maintenance_request_priority" gorm:"column:maintenance_request_priority;type:varchar(10);not null;default:'medium'"`
	MaintenanceRequestStatus   MaintenanceStatus   `json:"maintenance_request_status"   gorm:"column:maintenance_request_status;type:varchar(15);not null;default:'open'"`

	MaintenanceRequestPhotos pq.StringArray `json:"maintenance_request_photos" gorm:"column:maintenance_request_photos;type:text[]"`

	MaintenanceRequestResolutionNotes *string `json:"maintenance_request_resolution_notes,omitempty" gorm:"column:maintenance_request_resolution_notes;type:text"`

	// transition timestamps
	MaintenanceRequestStartedAt  *time.Time `json:"maintenance_request_started_at,omitempty"  gorm:"column:maintenance_request_started_at;type:timestamptz"`
	MaintenanceRequestResolvedAt *time.Time `json:"maintenance_request_resolved_at,omitempty" gorm:"column:maintenance_request_resolved_at;type:timestamptz"`
	MaintenanceRequestClosedAt   *time.Time `json:"maintenance_request_closed_at,omitempty"   gorm:"column:maintenance_request_closed_at;type:timestamptz"`

	MaintenanceRequestCreatedAt time.Time `json:"maintenance_request_created_at" gorm:"column:maintenance_request_created_at;type:timestamptz;not null;default:now()"`
	MaintenanceRequestUpdatedAt time.Time `json:"maintenance_request_updated_at" gorm:"column:maintenance_request_updated_at;type:timestamptz;not null;default:now()"`
}

func (MaintenanceRequest) TableName() string { return "maintenance_requests" }

func (m *MaintenanceRequest) BeforeCreate(tx *gorm.DB) error {
	m.MaintenanceRequestUpdatedAt = time.Now().UTC()
	return nil
}
func (m *MaintenanceRequest) BeforeUpdate(tx *gorm.DB) error {
	m.MaintenanceRequestUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("maintenance_request_company_id = ?", companyID)
	}
}
func ScopeByTenant(tenantID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("maintenance_request_tenant_id = ?", tenantID)
	}
}
