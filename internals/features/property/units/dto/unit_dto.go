// file: internals/features/property/units/dto/unit_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	model "propertyhub_backend/internals/features/property/units/model"
	helper "propertyhub_backend/internals/helpers"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateUnitRequest struct {
	UnitPropertyID   uuid.UUID `json:"unit_property_id"   validate:"required"`
	UnitNumber       string    `json:"unit_number"        validate:"required,max=40"`
	UnitFloor        *int      `json:"unit_floor"`
	UnitAreaSqm      *float64  `json:"unit_area_sqm"      validate:"omitempty,min=0"`
	UnitBedroomCount *int      `json:"unit_bedroom_count" validate:"omitempty,min=0"`
	UnitStatus       *string   `json:"unit_status"        validate:"omitempty,oneof=vacant occupied maintenance"`
}

func (r *CreateUnitRequest) ToModel(companyID uuid.UUID) *model.Unit {
	u := &model.Unit{
		UnitCompanyID:    companyID,
		UnitPropertyID:   r.UnitPropertyID,
		UnitNumber:       r.UnitNumber,
		UnitFloor:        r.UnitFloor,
		UnitAreaSqm:      r.UnitAreaSqm,
		UnitBedroomCount: r.UnitBedroomCount,
		UnitStatus:       model.UnitStatusVacant,
	}
	if r.UnitStatus != nil {
		u.UnitStatus = model.UnitStatus(*r.UnitStatus)
	}
	return u
}

/* =========================================================
   REQUEST: Patch
   ========================================================= */

type PatchUnitRequest struct {
	UnitNumber       helper.PatchField[string]  `json:"unit_number"`
	UnitFloor        helper.PatchField[int]     `json:"unit_floor"`
	UnitAreaSqm      helper.PatchField[float64] `json:"unit_area_sqm"`
	UnitBedroomCount helper.PatchField[int]     `json:"unit_bedroom_count"`
	UnitStatus       helper.PatchField[string]  `json:"unit_status"`
}

func (r *PatchUnitRequest) ApplyTo(u *model.Unit) error {
	if r.UnitNumber.Set && r.UnitNumber.Value != nil {
		u.UnitNumber = *r.UnitNumber.Value
	}
	if r.UnitFloor.Set {
		if r.UnitFloor.Null {
			u.UnitFloor = nil
		} else {
			u.UnitFloor = r.UnitFloor.Value
		}
	}
	if r.UnitAreaSqm.Set {
		if r.UnitAreaSqm.Null {
			u.UnitAreaSqm = nil
		} else {
			u.UnitAreaSqm = r.UnitAreaSqm.Value
		}
	}
	if r.UnitBedroomCount.Set {
		if r.UnitBedroomCount.Null {
			u.UnitBedroomCount = nil
		} else {
			u.UnitBedroomCount = r.UnitBedroomCount.Value
		}
	}
	if r.UnitStatus.Set && r.UnitStatus.Value != nil {
		st := model.UnitStatus(*r.UnitStatus.Value)
		if !st.Valid() {
			return errInvalidStatus
		}
		u.UnitStatus = st
	}
	return nil
}

var errInvalidStatus = &invalidStatusError{}

type invalidStatusError struct{}

func (e *invalidStatusError) Error() string { return "unit_status invalid" }

/* =========================================================
   REQUEST: floor-plan layout
   ========================================================= */

type UpdateUnitLayoutRequest struct {
	X float64 `json:"x" validate:"min=0"`
	Y float64 `json:"y" validate:"min=0"`
	W float64 `json:"w" validate:"gt=0"`
	H float64 `json:"h" validate:"gt=0"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UnitResponse struct {
	UnitID           uuid.UUID                `json:"unit_id"`
	UnitCompanyID    uuid.UUID                `json:"unit_company_id"`
	UnitPropertyID   uuid.UUID                `json:"unit_property_id"`
	UnitNumber       string                   `json:"unit_number"`
	UnitFloor        *int                     `json:"unit_floor,omitempty"`
	UnitAreaSqm      *float64                 `json:"unit_area_sqm,omitempty"`
	UnitBedroomCount *int                     `json:"unit_bedroom_count,omitempty"`
	UnitStatus       string                   `json:"unit_status"`
	UnitLayout       *model.UnitLayoutPayload `json:"unit_layout,omitempty"`
	UnitCreatedAt    time.Time                `json:"unit_created_at"`
	UnitUpdatedAt    time.Time                `json:"unit_updated_at"`
}

func FromModelUnit(u *model.Unit) UnitResponse {
	resp := UnitResponse{
		UnitID:           u.UnitID,
		UnitCompanyID:    u.UnitCompanyID,
		UnitPropertyID:   u.UnitPropertyID,
		UnitNumber:       u.UnitNumber,
		UnitFloor:        u.UnitFloor,
		UnitAreaSqm:      u.UnitAreaSqm,
		UnitBedroomCount: u.UnitBedroomCount,
		UnitStatus:       string(u.UnitStatus),
		UnitCreatedAt:    u.UnitCreatedAt,
		UnitUpdatedAt:    u.UnitUpdatedAt,
	}
	if len(u.UnitLayout) > 0 {
		var layout model.UnitLayoutPayload
		if err := json.Unmarshal(u.UnitLayout, &layout); err == nil {
			resp.UnitLayout = &layout
		}
	}
	return resp
}

func FromModelUnits(rows []model.Unit) []UnitResponse {
	out := make([]UnitResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelUnit(&rows[i]))
	}
	return out
}
