// file: internals/features/property/properties/dto/property_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "propertyhub_backend/internals/features/property/properties/model"
	helper "propertyhub_backend/internals/helpers"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreatePropertyRequest struct {
	PropertyName        string  `json:"property_name"         validate:"required,max=200"`
	PropertyAddress     *string `json:"property_address"`
	PropertyCity        *string `json:"property_city"         validate:"omitempty,max=120"`
	PropertyPostalCode  *string `json:"property_postal_code"  validate:"omitempty,max=20"`
	PropertyTotalFloors *int    `json:"property_total_floors" validate:"omitempty,min=1"`
	PropertyNotes       *string `json:"property_notes"`
}

func (r *CreatePropertyRequest) ToModel(companyID uuid.UUID) *model.Property {
	return &model.Property{
		PropertyCompanyID:   companyID,
		PropertyName:        r.PropertyName,
		PropertyAddress:     r.PropertyAddress,
		PropertyCity:        r.PropertyCity,
		PropertyPostalCode:  r.PropertyPostalCode,
		PropertyTotalFloors: r.PropertyTotalFloors,
		PropertyNotes:       r.PropertyNotes,
		PropertyIsActive:    true,
	}
}

/* =========================================================
   REQUEST: Patch
   ========================================================= */

type PatchPropertyRequest struct {
	PropertyName        helper.PatchField[string] `json:"property_name"`
	PropertyAddress     helper.PatchField[string] `json:"property_address"`
	PropertyCity        helper.PatchField[string] `json:"property_city"`
	PropertyPostalCode  helper.PatchField[string] `json:"property_postal_code"`
	PropertyTotalFloors helper.PatchField[int]    `json:"property_total_floors"`
	PropertyNotes       helper.PatchField[string] `json:"property_notes"`
	PropertyIsActive    helper.PatchField[bool]   `json:"property_is_active"`
}

func (r *PatchPropertyRequest) ApplyTo(p *model.Property) {
	if r.PropertyName.Set && r.PropertyName.Value != nil {
		p.PropertyName = *r.PropertyName.Value
	}
	if r.PropertyAddress.Set {
		if r.PropertyAddress.Null {
			p.PropertyAddress = nil
		} else {
			p.PropertyAddress = r.PropertyAddress.Value
		}
	}
	if r.PropertyCity.Set {
		if r.PropertyCity.Null {
			p.PropertyCity = nil
		} else {
			p.PropertyCity = r.PropertyCity.Value
		}
	}
	if r.PropertyPostalCode.Set {
		if r.PropertyPostalCode.Null {
			p.PropertyPostalCode = nil
		} else {
			p.PropertyPostalCode = r.PropertyPostalCode.Value
		}
	}
	if r.PropertyTotalFloors.Set {
		if r.PropertyTotalFloors.Null {
			p.PropertyTotalFloors = nil
		} else {
			p.PropertyTotalFloors = r.PropertyTotalFloors.Value
		}
	}
	if r.PropertyNotes.Set {
		if r.PropertyNotes.Null {
			p.PropertyNotes = nil
		} else {
			p.PropertyNotes = r.PropertyNotes.Value
		}
	}
	if r.PropertyIsActive.Set && r.PropertyIsActive.Value != nil {
		p.PropertyIsActive = *r.PropertyIsActive.Value
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type PropertyResponse struct {
	PropertyID          uuid.UUID `json:"property_id"`
	PropertyCompanyID   uuid.UUID `json:"property_company_id"`
	PropertyName        string    `json:"property_name"`
	PropertyAddress     *string   `json:"property_address,omitempty"`
	PropertyCity        *string   `json:"property_city,omitempty"`
	PropertyPostalCode  *string   `json:"property_postal_code,omitempty"`
	PropertyTotalFloors *int      `json:"property_total_floors,omitempty"`
	PropertyNotes       *string   `json:"property_notes,omitempty"`
	PropertyIsActive    bool      `json:"property_is_active"`
	PropertyCreatedAt   time.Time `json:"property_created_at"`
	PropertyUpdatedAt   time.Time `json:"property_updated_at"`
}

func FromModelProperty(p *model.Property) PropertyResponse {
	return PropertyResponse{
		PropertyID:          p.PropertyID,
		PropertyCompanyID:   p.PropertyCompanyID,
		PropertyName:        p.PropertyName,
		PropertyAddress:     p.PropertyAddress,
		PropertyCity:        p.PropertyCity,
		PropertyPostalCode:  p.PropertyPostalCode,
		PropertyTotalFloors: p.PropertyTotalFloors,
		PropertyNotes:       p.PropertyNotes,
		PropertyIsActive:    p.PropertyIsActive,
		PropertyCreatedAt:   p.PropertyCreatedAt,
		PropertyUpdatedAt:   p.PropertyUpdatedAt,
	}
}

func FromModelProperties(rows []model.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelProperty(&rows[i]))
	}
	return out
}
