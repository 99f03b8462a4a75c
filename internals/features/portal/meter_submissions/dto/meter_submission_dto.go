// file: internals/features/portal/meter_submissions/dto/meter_submission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "propertyhub_backend/internals/features/portal/meter_submissions/model"
)

/* =========================
   Request DTO
   ========================= */

type SubmitMeterReadingRequest struct {
	MeterSubmissionFeeTypeID uuid.UUID `json:"meter_submission_fee_type_id" validate:"required"`
	MeterSubmissionValue     float64   `json:"meter_submission_value"       validate:"required,gte=0"`
	MeterSubmissionDate      *string   `json:"meter_submission_date"`
	MeterSubmissionPhotoURL  *string   `json:"meter_submission_photo_url"   validate:"omitempty,url"`
	MeterSubmissionNotes     *string   `json:"meter_submission_notes"`
}

type RejectMeterSubmissionRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

/* =========================
   Response DTO
   ========================= */

type MeterSubmissionResponse struct {
	MeterSubmissionID              uuid.UUID  `json:"meter_submission_id"`
	MeterSubmissionCompanyID       uuid.UUID  `json:"meter_submission_company_id"`
	MeterSubmissionTenantID        uuid.UUID  `json:"meter_submission_tenant_id"`
	MeterSubmissionUnitID          uuid.UUID  `json:"meter_submission_unit_id"`
	MeterSubmissionFeeTypeID       uuid.UUID  `json:"meter_submission_fee_type_id"`
	MeterSubmissionValue           float64    `json:"meter_submission_value"`
	MeterSubmissionDate            time.Time  `json:"meter_submission_date"`
	MeterSubmissionPhotoURL        *string    `json:"meter_submission_photo_url,omitempty"`
	MeterSubmissionNotes           *string    `json:"meter_submission_notes,omitempty"`
	MeterSubmissionStatus          string     `json:"meter_submission_status"`
	MeterSubmissionRejectionReason *string    `json:"meter_submission_rejection_reason,omitempty"`
	MeterSubmissionMeterReadingID  *uuid.UUID `json:"meter_submission_meter_reading_id,omitempty"`
	MeterSubmissionReviewedBy      *uuid.UUID `json:"meter_submission_reviewed_by,omitempty"`
	MeterSubmissionReviewedAt      *time.Time `json:"meter_submission_reviewed_at,omitempty"`
	MeterSubmissionCreatedAt       time.Time  `json:"meter_submission_created_at"`
}

func FromModelMeterSubmission(m *model.TenantMeterSubmission) *MeterSubmissionResponse {
	return &MeterSubmissionResponse{
		MeterSubmissionID:              m.MeterSubmissionID,
		MeterSubmissionCompanyID:       m.MeterSubmissionCompanyID,
		MeterSubmissionTenantID:        m.MeterSubmissionTenantID,
		MeterSubmissionUnitID:          m.MeterSubmissionUnitID,
		MeterSubmissionFeeTypeID:       m.MeterSubmissionFeeTypeID,
		MeterSubmissionValue:           m.MeterSubmissionValue,
		MeterSubmissionDate:            m.MeterSubmissionDate,
		MeterSubmissionPhotoURL:        m.MeterSubmissionPhotoURL,
		MeterSubmissionNotes:           m.MeterSubmissionNotes,
		MeterSubmissionStatus:          string(m.MeterSubmissionStatus),
		MeterSubmissionRejectionReason: m.MeterSubmissionRejectionReason,
		MeterSubmissionMeterReadingID:  m.MeterSubmissionMeterReadingID,
		MeterSubmissionReviewedBy:      m.MeterSubmissionReviewedBy,
		MeterSubmissionReviewedAt:      m.MeterSubmissionReviewedAt,
		MeterSubmissionCreatedAt:       m.MeterSubmissionCreatedAt,
	}
}

func FromModelMeterSubmissions(rows []model.TenantMeterSubmission) []MeterSubmissionResponse {
	out := make([]MeterSubmissionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModelMeterSubmission(&rows[i]))
	}
	return out
}
