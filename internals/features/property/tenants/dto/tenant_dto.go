// file: internals/features/property/tenants/dto/tenant_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "propertyhub_backend/internals/features/property/tenants/model"
	helper "propertyhub_backend/internals/helpers"
)

type CreateTenantRequest struct {
	TenantName             string     `json:"tenant_name"              validate:"required,max=200"`
	TenantEmail            *string    `json:"tenant_email"             validate:"omitempty,email"`
	TenantPhone            *string    `json:"tenant_phone"             validate:"omitempty,max=50"`
	TenantIDCardNumber     *string    `json:"tenant_id_card_number"    validate:"omitempty,max=60"`
	TenantEmergencyContact *string    `json:"tenant_emergency_contact"`
	TenantPortalUserID     *uuid.UUID `json:"tenant_portal_user_id"`
}

func (r *CreateTenantRequest) ToModel(companyID uuid.UUID) *model.Tenant {
	return &model.Tenant{
		TenantCompanyID:        companyID,
		TenantName:             r.TenantName,
		TenantEmail:            r.TenantEmail,
		TenantPhone:            r.TenantPhone,
		TenantIDCardNumber:     r.TenantIDCardNumber,
		TenantEmergencyContact: r.TenantEmergencyContact,
		TenantPortalUserID:     r.TenantPortalUserID,
	}
}

type PatchTenantRequest struct {
	TenantName             helper.PatchField[string]    `json:"tenant_name"`
	TenantEmail            helper.PatchField[string]    `json:"tenant_email"`
	TenantPhone            helper.PatchField[string]    `json:"tenant_phone"`
	TenantIDCardNumber     helper.PatchField[string]    `json:"tenant_id_card_number"`
	TenantEmergencyContact helper.PatchField[string]    `json:"tenant_emergency_contact"`
	TenantPortalUserID     helper.PatchField[uuid.UUID] `json:"tenant_portal_user_id"`
}

func (r *PatchTenantRequest) ApplyTo(t *model.Tenant) {
	if r.TenantName.Set && r.TenantName.Value != nil {
		t.TenantName = *r.TenantName.Value
	}
	if r.TenantEmail.Set {
		if r.TenantEmail.Null {
			t.TenantEmail = nil
		} else {
			t.TenantEmail = r.TenantEmail.Value
		}
	}
	if r.TenantPhone.Set {
		if r.TenantPhone.Null {
			t.TenantPhone = nil
		} else {
			t.TenantPhone = r.TenantPhone.Value
		}
	}
	if r.TenantIDCardNumber.Set {
		if r.TenantIDCardNumber.Null {
			t.TenantIDCardNumber = nil
		} else {
			t.TenantIDCardNumber = r.TenantIDCardNumber.Value
		}
	}
	if r.TenantEmergencyContact.Set {
		if r.TenantEmergencyContact.Null {
			t.TenantEmergencyContact = nil
		} else {
			t.TenantEmergencyContact = r.TenantEmergencyContact.Value
		}
	}
	if r.TenantPortalUserID.Set {
		if r.TenantPortalUserID.Null {
			t.TenantPortalUserID = nil
		} else {
			t.TenantPortalUserID = r.TenantPortalUserID.Value
		}
	}
}

type TenantResponse struct {
	TenantID               uuid.UUID  `json:"tenant_id"`
	TenantCompanyID        uuid.UUID  `json:"tenant_company_id"`
	TenantName             string     `json:"tenant_name"`
	TenantEmail            *string    `json:"tenant_email,omitempty"`
	TenantPhone            *string    `json:"tenant_phone,omitempty"`
	TenantIDCardNumber     *string    `json:"tenant_id_card_number,omitempty"`
	TenantEmergencyContact *string    `json:"tenant_emergency_contact,omitempty"`
	TenantPortalUserID     *uuid.UUID `json:"tenant_portal_user_id,omitempty"`
	TenantCreatedAt        time.Time  `json:"tenant_created_at"`
	TenantUpdatedAt        time.Time  `json:"tenant_updated_at"`
}

func FromModelTenant(t *model.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:               t.TenantID,
		TenantCompanyID:        t.TenantCompanyID,
		TenantName:             t.TenantName,
		TenantEmail:            t.TenantEmail,
		TenantPhone:            t.TenantPhone,
		TenantIDCardNumber:     t.TenantIDCardNumber,
		TenantEmergencyContact: t.TenantEmergencyContact,
		TenantPortalUserID:     t.TenantPortalUserID,
		TenantCreatedAt:        t.TenantCreatedAt,
		TenantUpdatedAt:        t.TenantUpdatedAt,
	}
}

func FromModelTenants(rows []model.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelTenant(&rows[i]))
	}
	return out
}
