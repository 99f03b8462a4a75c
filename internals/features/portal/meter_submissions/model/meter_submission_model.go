// file: internals/features/portal/meter_submissions/model/meter_submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (Go-side)
   ========================= */

type MeterSubmissionStatus string

const (
	MeterSubmissionStatusPending  MeterSubmissionStatus = "pending"
	MeterSubmissionStatusApproved MeterSubmissionStatus = "approved"
	MeterSubmissionStatusRejected MeterSubmissionStatus = "rejected"
)

/* =========================
   Model: tenant_meter_submissions
   ========================= */

// TenantMeterSubmission is a renter-submitted meter value awaiting staff
// review. At most one pending submission may exist per (tenant, fee_type);
// a reviewed submission is never re-opened.
type TenantMeterSubmission struct {
	MeterSubmissionID uuid.UUID `json:"meter_submission_id" gorm:"column:meter_submission_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	MeterSubmissionCompanyID uuid.UUID `json:"meter_submission_company_id" gorm:"column:meter_submission_company_id;type:uuid;not null;index"`

	MeterSubmissionTenantID  uuid.UUID `json:"meter_submission_tenant_id"   gorm:"column:meter_submission_tenant_id;type:uuid;not null;index:idx_meter_submissions_tenant_fee"`
	MeterSubmissionUnitID    uuid.UUID `json:"meter_submission_unit_id"     gorm:"column:meter_submission_unit_id;type:uuid;not null"`
	MeterSubmissionFeeTypeID uuid.UUID `json:"meter_submission_fee_type_id" gorm:"column:meter_submission_fee_type_id;type:uuid;not null;index:idx_meter_submissions_tenant_fee"`

	MeterSubmissionValue    float64   `json:"meter_submission_value"     gorm:"column:meter_submission_value;type:numeric(14,3);not null"`
	MeterSubmissionDate     time.Time `json:"meter_submission_date"      gorm:"column:meter_submission_date;type:date;not null"`
	MeterSubmissionPhotoURL *string   `json:"meter_submission_photo_url,omitempty" gorm:"column:meter_submission_photo_url;type:text"`
	MeterSubmissionNotes    *string   `json:"meter_submission_notes,omitempty"     gorm:"column:meter_submission_notes;type:text"`

	MeterSubmissionStatus          MeterSubmissionStatus `json:"meter_submission_status" gorm:"column:meter_submission_status;type:varchar(20);not null;default:'pending'"`
	MeterSubmissionRejectionReason *string               `json:"meter_submission_rejection_reason,omitempty" gorm:"column:meter_submission_rejection_reason;type:text"`

	// set on approval; the MeterReading created from this submission
	MeterSubmissionMeterReadingID *uuid.UUID `json:"meter_submission_meter_reading_id,omitempty" gorm:"column:meter_submission_meter_reading_id;type:uuid"`

	MeterSubmissionReviewedBy *uuid.UUID `json:"meter_submission_reviewed_by,omitempty" gorm:"column:meter_submission_reviewed_by;type:uuid"`
	MeterSubmissionReviewedAt *time.Time `json:"meter_submission_reviewed_at,omitempty" gorm:"column:meter_submission_reviewed_at;type:timestamptz"`

	MeterSubmissionCreatedAt time.Time `json:"meter_submission_created_at" gorm:"column:meter_submission_created_at;type:timestamptz;not null;default:now()"`
	MeterSubmissionUpdatedAt time.Time `json:"meter_submission_updated_at" gorm:"column:meter_submission_updated_at;type:timestamptz;not null;default:now()"`
}

func (TenantMeterSubmission) TableName() string { return "tenant_meter_submissions" }

func (m *TenantMeterSubmission) BeforeCreate(tx *gorm.DB) error {
	m.MeterSubmissionUpdatedAt = time.Now().UTC()
	return nil
}
func (m *TenantMeterSubmission) BeforeUpdate(tx *gorm.DB) error {
	m.MeterSubmissionUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("meter_submission_company_id = ?", companyID)
	}
}
func ScopeByTenant(tenantID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("meter_submission_tenant_id = ?", tenantID)
	}
}
func ScopePending(db *gorm.DB) *gorm.DB {
	return db.Where("meter_submission_status = ?", MeterSubmissionStatusPending)
}

// HasPendingForFeeType reports whether rows contain a pending submission for
// the fee type. At most one pending submission per (tenant, fee_type) may
// exist; a second submit gets 409 until staff review the open one.
func HasPendingForFeeType(rows []TenantMeterSubmission, feeTypeID uuid.UUID) bool {
	for i := range rows {
		if rows[i].MeterSubmissionStatus == MeterSubmissionStatusPending &&
			rows[i].MeterSubmissionFeeTypeID == feeTypeID {
			return true
		}
	}
	return false
}
