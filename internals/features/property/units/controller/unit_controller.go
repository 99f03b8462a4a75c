// file: internals/features/property/units/controller/unit_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subscriptionModel "propertyhub_backend/internals/features/admin/subscriptions/model"
	dto "propertyhub_backend/internals/features/property/units/dto"
	model "propertyhub_backend/internals/features/property/units/model"
	helper "propertyhub_backend/internals/helpers"
)

type UnitController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUnitController(db *gorm.DB) *UnitController {
	return &UnitController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *UnitController) Create(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// plan quota
	if err := subscriptionModel.CheckUnitQuota(ctl.DB, companyID); err != nil {
		return helper.FromFiberError(c, err)
	}

	u := req.ToModel(companyID)
	if err := ctl.DB.Create(u).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "unit number already exists in this property")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "unit created", dto.FromModelUnit(u))
}

// ========== List ==========
// GET /units?property_id=&status=&page=&per_page=
func (ctl *UnitController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.Unit{}).
		Scopes(model.ScopeByCompany(companyID), model.ScopeAlive)

	if propIDStr := strings.TrimSpace(c.Query("property_id")); propIDStr != "" {
		propID, err := uuid.Parse(propIDStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "property_id invalid")
		}
		q = q.Scopes(model.ScopeByProperty(propID))
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.UnitStatus(status).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status invalid")
		}
		q = q.Where("unit_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Unit
	if err := q.
		Order("unit_number ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "units", dto.FromModelUnits(rows), &p)
}

// ========== GetByID ==========
func (ctl *UnitController) GetByID(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "unit_id invalid")
	}

	var u model.Unit
	if err := ctl.DB.
		Scopes(model.ScopeAlive).
		Where("unit_id = ? AND unit_company_id = ?", id, companyID).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "unit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "unit", dto.FromModelUnit(&u))
}

// ========== Patch ==========
func (ctl *UnitController) Patch(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "unit_id invalid")
	}

	var u model.Unit
	if err := ctl.DB.
		Scopes(model.ScopeAlive).
		Where("unit_id = ? AND unit_company_id = ?", id, companyID).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "unit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.ApplyTo(&u); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "unit updated", dto.FromModelUnit(&u))
}

// ========== UpdateLayout ==========
// PATCH /units/:id/layout — floor-plan editor saves position/size
func (ctl *UnitController) UpdateLayout(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "unit_id invalid")
	}

	var req dto.UpdateUnitLayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var u model.Unit
	if err := ctl.DB.
		Scopes(model.ScopeAlive).
		Where("unit_id = ? AND unit_company_id = ?", id, companyID).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "unit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := u.SetUnitLayout(&model.UnitLayoutPayload{X: req.X, Y: req.Y, W: req.W, H: req.H}); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Save(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "unit layout saved", dto.FromModelUnit(&u))
}

// ========== Delete (soft delete) ==========
func (ctl *UnitController) Delete(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "unit_id invalid")
	}

	now := time.Now().UTC()
	res := ctl.DB.Model(&model.Unit{}).
		Where("unit_id = ? AND unit_company_id = ? AND unit_deleted_at IS NULL", id, companyID).
		Update("unit_deleted_at", now)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "unit not found")
	}

	return helper.JsonDeleted(c, "unit deleted", fiber.Map{"unit_id": id})
}
