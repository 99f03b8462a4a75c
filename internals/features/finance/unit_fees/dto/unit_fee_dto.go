// file: internals/features/finance/unit_fees/dto/unit_fee_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	feeTypeDto "propertyhub_backend/internals/features/finance/fee_types/dto"
	model "propertyhub_backend/internals/features/finance/unit_fees/model"
	helper "propertyhub_backend/internals/helpers"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateUnitFeeRequest struct {
	UnitFeeUnitID          uuid.UUID `json:"unit_fee_unit_id"     validate:"required"`
	UnitFeeFeeTypeID       uuid.UUID `json:"unit_fee_fee_type_id" validate:"required"`
	UnitFeeCustomAmount    *float64  `json:"unit_fee_custom_amount"     validate:"omitempty,min=0"`
	UnitFeeCustomUnitPrice *float64  `json:"unit_fee_custom_unit_price" validate:"omitempty,min=0"`
	UnitFeeIsActive        *bool     `json:"unit_fee_is_active"`
}

func (r *CreateUnitFeeRequest) ToModel(companyID uuid.UUID) *model.UnitFee {
	uf := &model.UnitFee{
		UnitFeeCompanyID:       companyID,
		UnitFeeUnitID:          r.UnitFeeUnitID,
		UnitFeeFeeTypeID:       r.UnitFeeFeeTypeID,
		UnitFeeCustomAmount:    r.UnitFeeCustomAmount,
		UnitFeeCustomUnitPrice: r.UnitFeeCustomUnitPrice,
		UnitFeeIsActive:        true,
	}
	if r.UnitFeeIsActive != nil {
		uf.UnitFeeIsActive = *r.UnitFeeIsActive
	}
	return uf
}

/* =========================================================
   REQUEST: Patch
   ========================================================= */

type PatchUnitFeeRequest struct {
	UnitFeeCustomAmount    helper.PatchField[float64] `json:"unit_fee_custom_amount"`
	UnitFeeCustomUnitPrice helper.PatchField[float64] `json:"unit_fee_custom_unit_price"`
	UnitFeeIsActive        helper.PatchField[bool]    `json:"unit_fee_is_active"`
}

func (r *PatchUnitFeeRequest) ApplyTo(uf *model.UnitFee) {
	if r.UnitFeeCustomAmount.Set {
		if r.UnitFeeCustomAmount.Null {
			uf.UnitFeeCustomAmount = nil
		} else {
			uf.UnitFeeCustomAmount = r.UnitFeeCustomAmount.Value
		}
	}
	if r.UnitFeeCustomUnitPrice.Set {
		if r.UnitFeeCustomUnitPrice.Null {
			uf.UnitFeeCustomUnitPrice = nil
		} else {
			uf.UnitFeeCustomUnitPrice = r.UnitFeeCustomUnitPrice.Value
		}
	}
	if r.UnitFeeIsActive.Set && r.UnitFeeIsActive.Value != nil {
		uf.UnitFeeIsActive = *r.UnitFeeIsActive.Value
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UnitFeeResponse struct {
	UnitFeeID              uuid.UUID                   `json:"unit_fee_id"`
	UnitFeeCompanyID       uuid.UUID                   `json:"unit_fee_company_id"`
	UnitFeeUnitID          uuid.UUID                   `json:"unit_fee_unit_id"`
	UnitFeeFeeTypeID       uuid.UUID                   `json:"unit_fee_fee_type_id"`
	UnitFeeCustomAmount    *float64                    `json:"unit_fee_custom_amount,omitempty"`
	UnitFeeCustomUnitPrice *float64                    `json:"unit_fee_custom_unit_price,omitempty"`
	UnitFeeIsActive        bool                        `json:"unit_fee_is_active"`
	UnitFeeCreatedAt       time.Time                   `json:"unit_fee_created_at"`
	UnitFeeUpdatedAt       time.Time                   `json:"unit_fee_updated_at"`
	FeeType                *feeTypeDto.FeeTypeResponse `json:"fee_type,omitempty"`
}

func FromModelUnitFee(uf *model.UnitFee) UnitFeeResponse {
	resp := UnitFeeResponse{
		UnitFeeID:              uf.UnitFeeID,
		UnitFeeCompanyID:       uf.UnitFeeCompanyID,
		UnitFeeUnitID:          uf.UnitFeeUnitID,
		UnitFeeFeeTypeID:       uf.UnitFeeFeeTypeID,
		UnitFeeCustomAmount:    uf.UnitFeeCustomAmount,
		UnitFeeCustomUnitPrice: uf.UnitFeeCustomUnitPrice,
		UnitFeeIsActive:        uf.UnitFeeIsActive,
		UnitFeeCreatedAt:       uf.UnitFeeCreatedAt,
		UnitFeeUpdatedAt:       uf.UnitFeeUpdatedAt,
	}
	if uf.FeeType != nil {
		ft := feeTypeDto.FromModelFeeType(uf.FeeType)
		resp.FeeType = &ft
	}
	return resp
}

func FromModelUnitFees(rows []model.UnitFee) []UnitFeeResponse {
	out := make([]UnitFeeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelUnitFee(&rows[i]))
	}
	return out
}
