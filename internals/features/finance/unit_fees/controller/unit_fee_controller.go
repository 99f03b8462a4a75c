// file: internals/features/finance/unit_fees/controller/unit_fee_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "propertyhub_backend/internals/features/finance/unit_fees/dto"
	model "propertyhub_backend/internals/features/finance/unit_fees/model"
	helper "propertyhub_backend/internals/helpers"
)

type UnitFeeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUnitFeeController(db *gorm.DB) *UnitFeeController {
	return &UnitFeeController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *UnitFeeController) Create(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateUnitFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	uf := req.ToModel(companyID)
	if err := ctl.DB.Create(uf).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "unit fee created", dto.FromModelUnitFee(uf))
}

// ========== ListByUnit ==========
// GET /unit-fees?unit_id=&active=
func (ctl *UnitFeeController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctl.DB.Model(&model.UnitFee{}).
		Scopes(model.ScopeByCompany(companyID)).
		Preload("FeeType")

	if unitIDStr := strings.TrimSpace(c.Query("unit_id")); unitIDStr != "" {
		unitID, err := uuid.Parse(unitIDStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "unit_id invalid")
		}
		q = q.Scopes(model.ScopeByUnit(unitID))
	}
	if strings.EqualFold(c.Query("active"), "true") {
		q = q.Scopes(model.ScopeActive)
	}

	var rows []model.UnitFee
	if err := q.Order("unit_fee_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "unit fees", dto.FromModelUnitFees(rows))
}

// ========== Patch ==========
func (ctl *UnitFeeController) Patch(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "unit_fee_id invalid")
	}

	var uf model.UnitFee
	if err := ctl.DB.
		Where("unit_fee_id = ? AND unit_fee_company_id = ?", id, companyID).
		First(&uf).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "unit fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchUnitFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.ApplyTo(&uf)

	if err := ctl.DB.Save(&uf).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "unit fee updated", dto.FromModelUnitFee(&uf))
}

// ========== Delete ==========
func (ctl *UnitFeeController) Delete(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "unit_fee_id invalid")
	}

	res := ctl.DB.
		Where("unit_fee_id = ? AND unit_fee_company_id = ?", id, companyID).
		Delete(&model.UnitFee{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "unit fee not found")
	}

	return helper.JsonDeleted(c, "unit fee deleted", fiber.Map{"unit_fee_id": id})
}
