// file: internals/features/finance/fee_types/controller/fee_type_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "propertyhub_backend/internals/features/finance/fee_types/dto"
	model "propertyhub_backend/internals/features/finance/fee_types/model"
	helper "propertyhub_backend/internals/helpers"
)

type FeeTypeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeTypeController(db *gorm.DB) *FeeTypeController {
	return &FeeTypeController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *FeeTypeController) Create(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateFeeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ft := req.ToModel(companyID)
	if err := ctl.DB.Create(ft).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "fee type created", dto.FromModelFeeType(ft))
}

// ========== List ==========
// GET /fee-types?active=true&page=&per_page=
func (ctl *FeeTypeController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.FeeType{}).
		Scopes(model.ScopeByCompany(companyID))
	if strings.EqualFold(c.Query("active"), "true") {
		q = q.Scopes(model.ScopeActive)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.FeeType
	if err := q.
		Order("fee_type_display_order ASC, fee_type_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "fee types", dto.FromModelFeeTypes(rows), &p)
}

// ========== GetByID ==========
func (ctl *FeeTypeController) GetByID(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fee_type_id invalid")
	}

	var ft model.FeeType
	if err := ctl.DB.
		Where("fee_type_id = ? AND fee_type_company_id = ?", id, companyID).
		First(&ft).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee type not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "fee type", dto.FromModelFeeType(&ft))
}

// ========== Patch ==========
func (ctl *FeeTypeController) Patch(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fee_type_id invalid")
	}

	var ft model.FeeType
	if err := ctl.DB.
		Where("fee_type_id = ? AND fee_type_company_id = ?", id, companyID).
		First(&ft).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee type not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchFeeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.ApplyTo(&ft)

	if err := ctl.DB.Save(&ft).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "fee type updated", dto.FromModelFeeType(&ft))
}

// ========== Deactivate ==========
// Fee types are never hard-deleted so historical billing items stay resolvable.
func (ctl *FeeTypeController) Deactivate(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fee_type_id invalid")
	}

	res := ctl.DB.Model(&model.FeeType{}).
		Where("fee_type_id = ? AND fee_type_company_id = ?", id, companyID).
		Update("fee_type_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "fee type not found")
	}

	return helper.JsonUpdated(c, "fee type deactivated", fiber.Map{"fee_type_id": id})
}

// ========== Reorder ==========
// PUT /fee-types/reorder {"fee_type_ids": [...]} — display order follows slice order
func (ctl *FeeTypeController) Reorder(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var req struct {
		FeeTypeIDs []uuid.UUID `json:"fee_type_ids" validate:"required,min=1"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		for i, ftID := range req.FeeTypeIDs {
			if err := tx.Model(&model.FeeType{}).
				Where("fee_type_id = ? AND fee_type_company_id = ?", ftID, companyID).
				Update("fee_type_display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "fee types reordered", fiber.Map{"count": len(req.FeeTypeIDs)})
}
