// file: internals/features/maintenance/requests/dto/maintenance_request_dto.go
package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"

	model "propertyhub_backend/internals/features/maintenance/requests/model"
	helper "propertyhub_backend/internals/helpers"
)

var errPriorityInvalid = errors.New("maintenance_request_priority invalid")

/* =========================
   Request DTO
   ========================= */

type CreateMaintenanceRequestRequest struct {
	MaintenanceRequestUnitID      uuid.UUID  `json:"maintenance_request_unit_id"   validate:"required"`
	MaintenanceRequestTenantID    *uuid.UUID `json:"maintenance_request_tenant_id"`
	MaintenanceRequestTitle       string     `json:"maintenance_request_title"     validate:"required,max=160"`
	MaintenanceRequestDescription *string    `json:"maintenance_request_description"`
	MaintenanceRequestPriority    *string    `json:"maintenance_request_priority"  validate:"omitempty,oneof=low medium high urgent"`
}

func (r *CreateMaintenanceRequestRequest) ToModel(companyID uuid.UUID) *model.MaintenanceRequest {
	m := &model.MaintenanceRequest{
		MaintenanceRequestCompanyID:   companyID,
		MaintenanceRequestUnitID:      r.MaintenanceRequestUnitID,
		MaintenanceRequestTenantID:    r.MaintenanceRequestTenantID,
		MaintenanceRequestTitle:       r.MaintenanceRequestTitle,
		MaintenanceRequestDescription: r.MaintenanceRequestDescription,
		MaintenanceRequestPriority:    model.MaintenancePriorityMedium,
		MaintenanceRequestStatus:      model.MaintenanceStatusOpen,
	}
	if r.MaintenanceRequestPriority != nil {
		m.MaintenanceRequestPriority = model.MaintenancePriority(*r.MaintenanceRequestPriority)
	}
	return m
}

type PatchMaintenanceRequestRequest struct {
	MaintenanceRequestTitle       helper.PatchField[string] `json:"maintenance_request_title"`
	MaintenanceRequestDescription helper.PatchField[string] `json:"maintenance_request_description"`
	MaintenanceRequestPriority    helper.PatchField[string] `json:"maintenance_request_priority"`
}

func (r *PatchMaintenanceRequestRequest) ApplyTo(m *model.MaintenanceRequest) error {
	if r.MaintenanceRequestTitle.Set && !r.MaintenanceRequestTitle.Null {
		m.MaintenanceRequestTitle = *r.MaintenanceRequestTitle.Value
	}
	if r.MaintenanceRequestDescription.Set {
		if r.MaintenanceRequestDescription.Null {
			m.MaintenanceRequestDescription = nil
		} else {
			v := *r.MaintenanceRequestDescription.Value
			m.MaintenanceRequestDescription = &v
		}
	}
	if r.MaintenanceRequestPriority.Set && !r.MaintenanceRequestPriority.Null {
		p := model.MaintenancePriority(*r.MaintenanceRequestPriority.Value)
		if !p.Valid() {
			return errPriorityInvalid
		}
		m.MaintenanceRequestPriority = p
	}
	return nil
}

// TransitionMaintenanceRequestRequest moves the request along the lifecycle.
type TransitionMaintenanceRequestRequest struct {
	Status          string  `json:"status" validate:"required,oneof=in_progress resolved closed"`
	ResolutionNotes *string `json:"resolution_notes"`
}

/* =========================
   Response DTO
   ========================= */

type MaintenanceRequestResponse struct {
	MaintenanceRequestID              uuid.UUID  `json:"maintenance_request_id"`
	MaintenanceRequestCompanyID       uuid.UUID  `json:"maintenance_request_company_id"`
	MaintenanceRequestUnitID          uuid.UUID  `json:"maintenance_request_unit_id"`
	MaintenanceRequestTenantID        *uuid.UUID `json:"maintenance_request_tenant_id,omitempty"`
	MaintenanceRequestTitle           string     `json:"maintenance_request_title"`
	MaintenanceRequestDescription     *string    `json:"maintenance_request_description,omitempty"`
	MaintenanceRequestPriority        string     `json:"maintenance_request_priority"`
	MaintenanceRequestStatus          string     `json:"maintenance_request_status"`
	MaintenanceRequestPhotos          []string   `json:"maintenance_request_photos"`
	MaintenanceRequestResolutionNotes *string    `json:"maintenance_request_resolution_notes,omitempty"`
	MaintenanceRequestStartedAt       *time.Time `json:"maintenance_request_started_at,omitempty"`
	MaintenanceRequestResolvedAt      *time.Time `json:"maintenance_request_resolved_at,omitempty"`
	MaintenanceRequestClosedAt        *time.Time `json:"maintenance_request_closed_at,omitempty"`
	MaintenanceRequestCreatedAt       time.Time  `json:"maintenance_request_created_at"`
	MaintenanceRequestUpdatedAt       time.Time  `json:"maintenance_request_updated_at"`
}

func FromModelMaintenanceRequest(m *model.MaintenanceRequest) *MaintenanceRequestResponse {
	photos := []string(m.MaintenanceRequestPhotos)
	if photos == nil {
		photos = []string{}
	}
	return &MaintenanceRequestResponse{
		MaintenanceRequestID:              m.MaintenanceRequestID,
		MaintenanceRequestCompanyID:       m.MaintenanceRequestCompanyID,
		MaintenanceRequestUnitID:          m.MaintenanceRequestUnitID,
		MaintenanceRequestTenantID:        m.MaintenanceRequestTenantID,
		MaintenanceRequestTitle:           m.MaintenanceRequestTitle,
		MaintenanceRequestDescription:     m.MaintenanceRequestDescription,
		MaintenanceRequestPriority:        string(m.MaintenanceRequestPriority),
		MaintenanceRequestStatus:          string(m.MaintenanceRequestStatus),
		MaintenanceRequestPhotos:          photos,
		MaintenanceRequestResolutionNotes: m.MaintenanceRequestResolutionNotes,
		MaintenanceRequestStartedAt:       m.MaintenanceRequestStartedAt,
		MaintenanceRequestResolvedAt:      m.MaintenanceRequestResolvedAt,
		MaintenanceRequestClosedAt:        m.MaintenanceRequestClosedAt,
		MaintenanceRequestCreatedAt:       m.MaintenanceRequestCreatedAt,
		MaintenanceRequestUpdatedAt:       m.MaintenanceRequestUpdatedAt,
	}
}

func FromModelMaintenanceRequests(rows []model.MaintenanceRequest) []MaintenanceRequestResponse {
	out := make([]MaintenanceRequestResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModelMaintenanceRequest(&rows[i]))
	}
	return out
}
