// file: internals/features/property/tenants/controller/tenant_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "propertyhub_backend/internals/features/property/tenants/dto"
	model "propertyhub_backend/internals/features/property/tenants/model"
	helper "propertyhub_backend/internals/helpers"
)

type TenantController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *TenantController) Create(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	t := req.ToModel(companyID)
	if err := ctl.DB.Create(t).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "tenant created", dto.FromModelTenant(t))
}

// ========== List ==========
func (ctl *TenantController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.Tenant{}).
		Scopes(model.ScopeByCompany(companyID), model.ScopeAlive)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("tenant_name ILIKE ? OR tenant_email ILIKE ? OR tenant_phone ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Tenant
	if err := q.
		Order("tenant_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "tenants", dto.FromModelTenants(rows), &p)
}

// ========== GetByID ==========
func (ctl *TenantController) GetByID(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "tenant_id invalid")
	}

	var t model.Tenant
	if err := ctl.DB.
		Scopes(model.ScopeAlive).
		Where("tenant_id = ? AND tenant_company_id = ?", id, companyID).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tenant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "tenant", dto.FromModelTenant(&t))
}

// ========== Patch ==========
func (ctl *TenantController) Patch(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "tenant_id invalid")
	}

	var t model.Tenant
	if err := ctl.DB.
		Scopes(model.ScopeAlive).
		Where("tenant_id = ? AND tenant_company_id = ?", id, companyID).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tenant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.ApplyTo(&t)

	if err := ctl.DB.Save(&t).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "tenant updated", dto.FromModelTenant(&t))
}

// ========== Delete (soft delete) ==========
func (ctl *TenantController) Delete(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "tenant_id invalid")
	}

	// a tenant holding an active lease cannot be removed
	var activeLeases int64
	if err := ctl.DB.Table("leases").
		Where("lease_tenant_id = ? AND lease_status = 'active'", id).
		Count(&activeLeases).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if activeLeases > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "tenant still has an active lease")
	}

	now := time.Now().UTC()
	res := ctl.DB.Model(&model.Tenant{}).
		Where("tenant_id = ? AND tenant_company_id = ? AND tenant_deleted_at IS NULL", id, companyID).
		Update("tenant_deleted_at", now)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "tenant not found")
	}

	return helper.JsonDeleted(c, "tenant deleted", fiber.Map{"tenant_id": id})
}
