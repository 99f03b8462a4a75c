// file: internals/features/property/leases/controller/lease_controller.go
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
	dto "propertyhub_backend/internals/features/property/leases/dto"
	model "propertyhub_backend/internals/features/property/leases/model"
	unitModel "propertyhub_backend/internals/features/property/units/model"
	helper "propertyhub_backend/internals/helpers"
)

type LeaseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLeaseController(db *gorm.DB) *LeaseController {
	return &LeaseController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *LeaseController) findOwned(id, companyID uuid.UUID) (*model.Lease, error) {
	var l model.Lease
	err := ctl.DB.
		Where("lease_id = ? AND lease_company_id = ?", id, companyID).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

/* =========================
   CRUD
   ========================= */

// ========== Create ==========
// New leases start as pending. Unit occupancy only flips on activation.
func (ctl *LeaseController) Create(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateLeaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.LeaseEndDate != nil && !req.LeaseEndDate.After(req.LeaseStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_end_date must be after lease_start_date")
	}

	// tenant and unit must belong to the same company
	var unit unitModel.Unit
	if err := ctl.DB.
		Scopes(unitModel.ScopeAlive).
		Where("unit_id = ? AND unit_company_id = ?", req.LeaseUnitID, companyID).
		First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "unit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var tenantCount int64
	if err := ctl.DB.Table("tenants").
		Where("tenant_id = ? AND tenant_company_id = ? AND tenant_deleted_at IS NULL", req.LeaseTenantID, companyID).
		Count(&tenantCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if tenantCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "tenant not found")
	}

	// one non-closed lease per unit
	var openCount int64
	if err := ctl.DB.Model(&model.Lease{}).
		Where("lease_unit_id = ? AND lease_status IN ?", req.LeaseUnitID,
			[]model.LeaseStatus{model.LeaseStatusActive, model.LeaseStatusPending}).
		Count(&openCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if openCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "unit already has an active or pending lease")
	}

	l := req.ToModel(companyID)
	if err := ctl.DB.Create(l).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	auditModel.Record(ctl.DB, c, companyID, "lease.create", "lease", l.LeaseID, fiber.Map{
		"tenant_id": l.LeaseTenantID, "unit_id": l.LeaseUnitID,
	})
	return helper.JsonCreated(c, "lease created", dto.FromModelLease(l))
}

// ========== List ==========
// GET /leases?tenant_id=&unit_id=&status=&page=&per_page=
func (ctl *LeaseController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.Lease{}).
		Scopes(model.ScopeByCompany(companyID))

	if s := strings.TrimSpace(c.Query("tenant_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "tenant_id invalid")
		}
		q = q.Where("lease_tenant_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("unit_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "unit_id invalid")
		}
		q = q.Where("lease_unit_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !model.LeaseStatus(s).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status invalid")
		}
		q = q.Where("lease_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Lease
	if err := q.
		Preload("Tenant").Preload("Unit").
		Order("lease_start_date DESC, lease_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "leases", dto.FromModelLeases(rows), &p)
}

// ========== GetByID ==========
func (ctl *LeaseController) GetByID(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_id invalid")
	}

	var l model.Lease
	if err := ctl.DB.
		Preload("Tenant").Preload("Unit").
		Where("lease_id = ? AND lease_company_id = ?", id, companyID).
		First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lease not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "lease", dto.FromModelLease(&l))
}

// ========== Patch ==========
func (ctl *LeaseController) Patch(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_id invalid")
	}

	l, err := ctl.findOwned(id, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lease not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if l.LeaseStatus == model.LeaseStatusTerminated || l.LeaseStatus == model.LeaseStatusExpired {
		return helper.JsonError(c, fiber.StatusConflict, "lease is closed and can no longer be edited")
	}

	var req dto.PatchLeaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.ApplyTo(l); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(l).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "lease updated", dto.FromModelLease(l))
}

/* =========================
   Lifecycle transitions
   ========================= */

// ========== Activate ==========
// POST /leases/:id/activate — pending -> active, unit flips to occupied.
func (ctl *LeaseController) Activate(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_id invalid")
	}

	l, err := ctl.findOwned(id, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lease not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if l.LeaseStatus != model.LeaseStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "only pending leases can be activated")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Lease{}).
			Where("lease_id = ?", l.LeaseID).
			Updates(map[string]interface{}{
				"lease_status":     model.LeaseStatusActive,
				"lease_updated_at": time.Now().UTC(),
			}).Error; err != nil {
			return err
		}
		return tx.Model(&unitModel.Unit{}).
			Where("unit_id = ?", l.LeaseUnitID).
			Updates(map[string]interface{}{
				"unit_status":     unitModel.UnitStatusOccupied,
				"unit_updated_at": time.Now().UTC(),
			}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	l.LeaseStatus = model.LeaseStatusActive
	auditModel.Record(ctl.DB, c, companyID, "lease.activate", "lease", l.LeaseID, nil)
	return helper.JsonUpdated(c, "lease activated", dto.FromModelLease(l))
}

// ========== Renew ==========
// POST /leases/:id/renew — the old active lease is marked expired and a new
// active lease is created on the same unit/tenant, carrying the old rent
// unless the request overrides it.
func (ctl *LeaseController) Renew(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_id invalid")
	}

	var req dto.RenewLeaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.LeaseEndDate != nil && !req.LeaseEndDate.After(req.LeaseStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_end_date must be after lease_start_date")
	}

	old, err := ctl.findOwned(id, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lease not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if old.LeaseStatus != model.LeaseStatusActive {
		return helper.JsonError(c, fiber.StatusConflict, "only active leases can be renewed")
	}

	rent := old.LeaseMonthlyRent
	if req.LeaseMonthlyRent != nil {
		rent = *req.LeaseMonthlyRent
	}

	next := &model.Lease{
		LeaseCompanyID:   companyID,
		LeaseTenantID:    old.LeaseTenantID,
		LeaseUnitID:      old.LeaseUnitID,
		LeaseMonthlyRent: rent,
		LeaseDeposit:     old.LeaseDeposit,
		LeaseStartDate:   req.LeaseStartDate,
		LeaseEndDate:     req.LeaseEndDate,
		LeaseStatus:      model.LeaseStatusActive,
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Lease{}).
			Where("lease_id = ?", old.LeaseID).
			Updates(map[string]interface{}{
				"lease_status":     model.LeaseStatusExpired,
				"lease_updated_at": time.Now().UTC(),
			}).Error; err != nil {
			return err
		}
		return tx.Create(next).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	auditModel.Record(ctl.DB, c, companyID, "lease.renew", "lease", next.LeaseID, fiber.Map{
		"previous_lease_id": old.LeaseID,
	})
	return helper.JsonCreated(c, "lease renewed", dto.FromModelLease(next))
}

// ========== Terminate ==========
// POST /leases/:id/terminate — active -> terminated, unit back to vacant.
func (ctl *LeaseController) Terminate(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lease_id invalid")
	}

	var req dto.TerminateLeaseRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	l, err := ctl.findOwned(id, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lease not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if l.LeaseStatus != model.LeaseStatusActive && l.LeaseStatus != model.LeaseStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "lease already closed")
	}

	terminatedAt := time.Now().UTC()
	if req.LeaseTerminatedAt != nil {
		terminatedAt = req.LeaseTerminatedAt.UTC()
	}

	updates := map[string]interface{}{
		"lease_status":        model.LeaseStatusTerminated,
		"lease_terminated_at": terminatedAt,
		"lease_updated_at":    time.Now().UTC(),
	}
	if req.LeaseNotes != nil {
		updates["lease_notes"] = *req.LeaseNotes
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Lease{}).
			Where("lease_id = ?", l.LeaseID).
			Updates(updates).Error; err != nil {
			return err
		}
		// only vacate when this lease was the one occupying the unit
		if l.LeaseStatus != model.LeaseStatusActive {
			return nil
		}
		return tx.Model(&unitModel.Unit{}).
			Where("unit_id = ? AND unit_status = ?", l.LeaseUnitID, unitModel.UnitStatusOccupied).
			Updates(map[string]interface{}{
				"unit_status":     unitModel.UnitStatusVacant,
				"unit_updated_at": time.Now().UTC(),
			}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	l.LeaseStatus = model.LeaseStatusTerminated
	l.LeaseTerminatedAt = &terminatedAt
	auditModel.Record(ctl.DB, c, companyID, "lease.terminate", "lease", l.LeaseID, nil)
	return helper.JsonUpdated(c, "lease terminated", dto.FromModelLease(l))
}
