// file: internals/features/finance/fee_types/dto/fee_type_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "propertyhub_backend/internals/features/finance/fee_types/model"
	helper "propertyhub_backend/internals/helpers"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateFeeTypeRequest struct {
	FeeTypeName            string   `json:"fee_type_name"              validate:"required,max=120"`
	FeeTypeCalculationType string   `json:"fee_type_calculation_type"  validate:"required,oneof=fixed per_sqm metered custom"`
	FeeTypeDefaultAmount   *float64 `json:"fee_type_default_amount"    validate:"omitempty,min=0"`
	FeeTypeDefaultUnitPrice *float64 `json:"fee_type_default_unit_price" validate:"omitempty,min=0"`
	FeeTypeIsActive        *bool    `json:"fee_type_is_active"`
	FeeTypeDisplayOrder    *int     `json:"fee_type_display_order"     validate:"omitempty,min=0"`
}

func (r *CreateFeeTypeRequest) ToModel(companyID uuid.UUID) *model.FeeType {
	ft := &model.FeeType{
		FeeTypeCompanyID:       companyID,
		FeeTypeName:            r.FeeTypeName,
		FeeTypeCalculationType: model.FeeCalculationType(r.FeeTypeCalculationType),
		FeeTypeIsActive:        true, // default true
	}
	if r.FeeTypeDefaultAmount != nil {
		ft.FeeTypeDefaultAmount = *r.FeeTypeDefaultAmount
	}
	if r.FeeTypeDefaultUnitPrice != nil {
		ft.FeeTypeDefaultUnitPrice = r.FeeTypeDefaultUnitPrice
	}
	if r.FeeTypeIsActive != nil {
		ft.FeeTypeIsActive = *r.FeeTypeIsActive
	}
	if r.FeeTypeDisplayOrder != nil {
		ft.FeeTypeDisplayOrder = *r.FeeTypeDisplayOrder
	}
	return ft
}

/* =========================================================
   REQUEST: Patch (partial update)
   ========================================================= */

type PatchFeeTypeRequest struct {
	FeeTypeName             helper.PatchField[string]  `json:"fee_type_name"`
	FeeTypeDefaultAmount    helper.PatchField[float64] `json:"fee_type_default_amount"`
	FeeTypeDefaultUnitPrice helper.PatchField[float64] `json:"fee_type_default_unit_price"`
	FeeTypeIsActive         helper.PatchField[bool]    `json:"fee_type_is_active"`
	FeeTypeDisplayOrder     helper.PatchField[int]     `json:"fee_type_display_order"`
	// calculation_type is immutable after creation: historical billing items
	// already carry amounts computed under the original rule
}

func (r *PatchFeeTypeRequest) ApplyTo(ft *model.FeeType) {
	if r.FeeTypeName.Set && r.FeeTypeName.Value != nil {
		ft.FeeTypeName = *r.FeeTypeName.Value
	}
	if r.FeeTypeDefaultAmount.Set && r.FeeTypeDefaultAmount.Value != nil {
		ft.FeeTypeDefaultAmount = *r.FeeTypeDefaultAmount.Value
	}
	if r.FeeTypeDefaultUnitPrice.Set {
		if r.FeeTypeDefaultUnitPrice.Null {
			ft.FeeTypeDefaultUnitPrice = nil
		} else {
			ft.FeeTypeDefaultUnitPrice = r.FeeTypeDefaultUnitPrice.Value
		}
	}
	if r.FeeTypeIsActive.Set && r.FeeTypeIsActive.Value != nil {
		ft.FeeTypeIsActive = *r.FeeTypeIsActive.Value
	}
	if r.FeeTypeDisplayOrder.Set && r.FeeTypeDisplayOrder.Value != nil {
		ft.FeeTypeDisplayOrder = *r.FeeTypeDisplayOrder.Value
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type FeeTypeResponse struct {
	FeeTypeID               uuid.UUID `json:"fee_type_id"`
	FeeTypeCompanyID        uuid.UUID `json:"fee_type_company_id"`
	FeeTypeName             string    `json:"fee_type_name"`
	FeeTypeCalculationType  string    `json:"fee_type_calculation_type"`
	FeeTypeDefaultAmount    float64   `json:"fee_type_default_amount"`
	FeeTypeDefaultUnitPrice *float64  `json:"fee_type_default_unit_price,omitempty"`
	FeeTypeIsActive         bool      `json:"fee_type_is_active"`
	FeeTypeDisplayOrder     int       `json:"fee_type_display_order"`
	FeeTypeCreatedAt        time.Time `json:"fee_type_created_at"`
	FeeTypeUpdatedAt        time.Time `json:"fee_type_updated_at"`
}

func FromModelFeeType(ft *model.FeeType) FeeTypeResponse {
	return FeeTypeResponse{
		FeeTypeID:               ft.FeeTypeID,
		FeeTypeCompanyID:        ft.FeeTypeCompanyID,
		FeeTypeName:             ft.FeeTypeName,
		FeeTypeCalculationType:  string(ft.FeeTypeCalculationType),
		FeeTypeDefaultAmount:    ft.FeeTypeDefaultAmount,
		FeeTypeDefaultUnitPrice: ft.FeeTypeDefaultUnitPrice,
		FeeTypeIsActive:         ft.FeeTypeIsActive,
		FeeTypeDisplayOrder:     ft.FeeTypeDisplayOrder,
		FeeTypeCreatedAt:        ft.FeeTypeCreatedAt,
		FeeTypeUpdatedAt:        ft.FeeTypeUpdatedAt,
	}
}

func FromModelFeeTypes(rows []model.FeeType) []FeeTypeResponse {
	out := make([]FeeTypeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelFeeType(&rows[i]))
	}
	return out
}
