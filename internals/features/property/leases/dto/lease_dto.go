// file: internals/features/property/leases/dto/lease_dto.go
package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"

	model "propertyhub_backend/internals/features/property/leases/model"
	helper "propertyhub_backend/internals/helpers"
)

var errMonthlyRent = errors.New("lease_monthly_rent must be greater than 0")

/* =========================
   Request DTO
   ========================= */

type CreateLeaseRequest struct {
	LeaseTenantID    uuid.UUID  `json:"lease_tenant_id"    validate:"required"`
	LeaseUnitID      uuid.UUID  `json:"lease_unit_id"      validate:"required"`
	LeaseMonthlyRent float64    `json:"lease_monthly_rent" validate:"required,gt=0"`
	LeaseDeposit     *float64   `json:"lease_deposit"      validate:"omitempty,gte=0"`
	LeaseStartDate   time.Time  `json:"lease_start_date"   validate:"required"`
	LeaseEndDate     *time.Time `json:"lease_end_date"`
	LeaseNotes       *string    `json:"lease_notes"`
}

func (r *CreateLeaseRequest) ToModel(companyID uuid.UUID) *model.Lease {
	return &model.Lease{
		LeaseCompanyID:   companyID,
		LeaseTenantID:    r.LeaseTenantID,
		LeaseUnitID:      r.LeaseUnitID,
		LeaseMonthlyRent: r.LeaseMonthlyRent,
		LeaseDeposit:     r.LeaseDeposit,
		LeaseStartDate:   r.LeaseStartDate,
		LeaseEndDate:     r.LeaseEndDate,
		LeaseStatus:      model.LeaseStatusPending,
		LeaseNotes:       r.LeaseNotes,
	}
}

// PatchLeaseRequest covers the mutable contract fields. Status transitions go
// through the dedicated activate/renew/terminate endpoints, never via PATCH.
type PatchLeaseRequest struct {
	LeaseMonthlyRent helper.PatchField[float64]   `json:"lease_monthly_rent"`
	LeaseDeposit     helper.PatchField[float64]   `json:"lease_deposit"`
	LeaseEndDate     helper.PatchField[time.Time] `json:"lease_end_date"`
	LeaseNotes       helper.PatchField[string]    `json:"lease_notes"`
}

func (r *PatchLeaseRequest) ApplyTo(l *model.Lease) error {
	if r.LeaseMonthlyRent.Set && !r.LeaseMonthlyRent.Null {
		if *r.LeaseMonthlyRent.Value <= 0 {
			return errMonthlyRent
		}
		l.LeaseMonthlyRent = *r.LeaseMonthlyRent.Value
	}
	if r.LeaseDeposit.Set {
		if r.LeaseDeposit.Null {
			l.LeaseDeposit = nil
		} else {
			v := *r.LeaseDeposit.Value
			l.LeaseDeposit = &v
		}
	}
	if r.LeaseEndDate.Set {
		if r.LeaseEndDate.Null {
			l.LeaseEndDate = nil
		} else {
			v := *r.LeaseEndDate.Value
			l.LeaseEndDate = &v
		}
	}
	if r.LeaseNotes.Set {
		if r.LeaseNotes.Null {
			l.LeaseNotes = nil
		} else {
			v := *r.LeaseNotes.Value
			l.LeaseNotes = &v
		}
	}
	return nil
}

type RenewLeaseRequest struct {
	LeaseMonthlyRent *float64   `json:"lease_monthly_rent" validate:"omitempty,gt=0"`
	LeaseStartDate   time.Time  `json:"lease_start_date"   validate:"required"`
	LeaseEndDate     *time.Time `json:"lease_end_date"`
}

type TerminateLeaseRequest struct {
	LeaseTerminatedAt *time.Time `json:"lease_terminated_at"`
	LeaseNotes        *string    `json:"lease_notes"`
}

/* =========================
   Response DTO
   ========================= */

type LeaseResponse struct {
	LeaseID           uuid.UUID  `json:"lease_id"`
	LeaseCompanyID    uuid.UUID  `json:"lease_company_id"`
	LeaseTenantID     uuid.UUID  `json:"lease_tenant_id"`
	LeaseUnitID       uuid.UUID  `json:"lease_unit_id"`
	LeaseMonthlyRent  float64    `json:"lease_monthly_rent"`
	LeaseDeposit      *float64   `json:"lease_deposit,omitempty"`
	LeaseStartDate    time.Time  `json:"lease_start_date"`
	LeaseEndDate      *time.Time `json:"lease_end_date,omitempty"`
	LeaseStatus       string     `json:"lease_status"`
	LeaseTerminatedAt *time.Time `json:"lease_terminated_at,omitempty"`
	LeaseNotes        *string    `json:"lease_notes,omitempty"`
	LeaseCreatedAt    time.Time  `json:"lease_created_at"`
	LeaseUpdatedAt    time.Time  `json:"lease_updated_at"`

	TenantName *string `json:"tenant_name,omitempty"`
	UnitNumber *string `json:"unit_number,omitempty"`
}

func FromModelLease(l *model.Lease) *LeaseResponse {
	resp := &LeaseResponse{
		LeaseID:           l.LeaseID,
		LeaseCompanyID:    l.LeaseCompanyID,
		LeaseTenantID:     l.LeaseTenantID,
		LeaseUnitID:       l.LeaseUnitID,
		LeaseMonthlyRent:  l.LeaseMonthlyRent,
		LeaseDeposit:      l.LeaseDeposit,
		LeaseStartDate:    l.LeaseStartDate,
		LeaseEndDate:      l.LeaseEndDate,
		LeaseStatus:       string(l.LeaseStatus),
		LeaseTerminatedAt: l.LeaseTerminatedAt,
		LeaseNotes:        l.LeaseNotes,
		LeaseCreatedAt:    l.LeaseCreatedAt,
		LeaseUpdatedAt:    l.LeaseUpdatedAt,
	}
	if l.Tenant != nil {
		name := l.Tenant.TenantName
		resp.TenantName = &name
	}
	if l.Unit != nil {
		num := l.Unit.UnitNumber
		resp.UnitNumber = &num
	}
	return resp
}

func FromModelLeases(rows []model.Lease) []LeaseResponse {
	out := make([]LeaseResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModelLease(&rows[i]))
	}
	return out
}
