// file: internals/features/property/properties/controller/property_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "propertyhub_backend/internals/features/admin/audit_logs/model"
	dto "propertyhub_backend/internals/features/property/properties/dto"
	model "propertyhub_backend/internals/features/property/properties/model"
	helper "propertyhub_backend/internals/helpers"
)

type PropertyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPropertyController(db *gorm.DB) *PropertyController {
	return &PropertyController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *PropertyController) Create(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	p := req.ToModel(companyID)
	if err := ctl.DB.Create(p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	auditModel.Record(ctl.DB, c, companyID, "property.create", "property", p.PropertyID, p)

	return helper.JsonCreated(c, "property created", dto.FromModelProperty(p))
}

// ========== List ==========
// GET /properties?search=&page=&per_page=
func (ctl *PropertyController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.Property{}).
		Scopes(model.ScopeByCompany(companyID), model.ScopeAlive)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("property_name ILIKE ? OR property_address ILIKE ? OR property_city ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Property
	if err := q.
		Order("property_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "properties", dto.FromModelProperties(rows), &p)
}

// ========== GetByID ==========
func (ctl *PropertyController) GetByID(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "property_id invalid")
	}

	var p model.Property
	if err := ctl.DB.
		Scopes(model.ScopeAlive).
		Where("property_id = ? AND property_company_id = ?", id, companyID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "property not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "property", dto.FromModelProperty(&p))
}

// ========== Patch ==========
func (ctl *PropertyController) Patch(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "property_id invalid")
	}

	var p model.Property
	if err := ctl.DB.
		Scopes(model.ScopeAlive).
		Where("property_id = ? AND property_company_id = ?", id, companyID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "property not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchPropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.ApplyTo(&p)

	if err := ctl.DB.Save(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	auditModel.Record(ctl.DB, c, companyID, "property.update", "property", p.PropertyID, req)

	return helper.JsonUpdated(c, "property updated", dto.FromModelProperty(&p))
}

// ========== Delete (soft delete) ==========
func (ctl *PropertyController) Delete(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "property_id invalid")
	}

	now := time.Now().UTC()
	res := ctl.DB.Model(&model.Property{}).
		Where("property_id = ? AND property_company_id = ? AND property_deleted_at IS NULL", id, companyID).
		Update("property_deleted_at", now)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "property not found")
	}

	auditModel.Record(ctl.DB, c, companyID, "property.delete", "property", id, nil)

	return helper.JsonDeleted(c, "property deleted", fiber.Map{"property_id": id})
}
