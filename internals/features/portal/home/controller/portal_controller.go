// file: internals/features/portal/home/controller/portal_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billingDTO "propertyhub_backend/internals/features/finance/billings/dto"
	billingModel "propertyhub_backend/internals/features/finance/billings/model"
	maintenanceDTO "propertyhub_backend/internals/features/maintenance/requests/dto"
	maintenanceModel "propertyhub_backend/internals/features/maintenance/requests/model"
	leaseDTO "propertyhub_backend/internals/features/property/leases/dto"
	leaseModel "propertyhub_backend/internals/features/property/leases/model"
	helper "propertyhub_backend/internals/helpers"
)

// PortalController serves the renter-facing read pages. Every query is scoped
// by the tenant id carried in the token, never by request parameters.
type PortalController struct {
	DB *gorm.DB
}

func NewPortalController(db *gorm.DB) *PortalController {
	return &PortalController{DB: db}
}

// ========== MyLease ==========
// GET /portal/lease — the tenant's current (most recent active) lease.
func (ctl *PortalController) MyLease(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return err
	}

	var lease leaseModel.Lease
	if err := ctl.DB.
		Preload("Unit").Preload("Tenant").
		Scopes(leaseModel.ScopeByCompany(companyID), leaseModel.ScopeActive).
		Where("lease_tenant_id = ?", tenantID).
		Order("lease_start_date DESC").
		First(&lease).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "no active lease")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "my lease", leaseDTO.FromModelLease(&lease))
}

// ========== MyBillings ==========
// GET /portal/billings?status=&page=&per_page=
func (ctl *PortalController) MyBillings(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&billingModel.Billing{}).
		Scopes(billingModel.ScopeByCompany(companyID), billingModel.ScopeByTenant(tenantID))

	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !billingModel.BillingStatus(s).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status invalid")
		}
		if billingModel.BillingStatus(s) == billingModel.BillingStatusOverdue {
			q = q.Where("billing_status IN ? AND billing_due_date < ?",
				[]billingModel.BillingStatus{billingModel.BillingStatusPending, billingModel.BillingStatusPartial},
				time.Now().UTC())
		} else {
			q = q.Where("billing_status = ?", s)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []billingModel.Billing
	if err := q.
		Order("billing_month DESC, billing_number DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "my billings", billingDTO.FromModelBillings(rows, time.Now().UTC()), &p)
}

// ========== MyBillingDetail ==========
// GET /portal/billings/:id — detail with items, own billings only.
func (ctl *PortalController) MyBillingDetail(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "billing_id invalid")
	}

	var b billingModel.Billing
	if err := ctl.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("billing_item_display_order ASC")
		}).
		Where("billing_id = ? AND billing_company_id = ? AND billing_tenant_id = ?", id, companyID, tenantID).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "billing not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "my billing", billingDTO.FromModelBilling(&b, time.Now().UTC()))
}

// ========== MyMaintenance ==========
// GET /portal/maintenance-requests
func (ctl *PortalController) MyMaintenance(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&maintenanceModel.MaintenanceRequest{}).
		Scopes(maintenanceModel.ScopeByCompany(companyID), maintenanceModel.ScopeByTenant(tenantID))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []maintenanceModel.MaintenanceRequest
	if err := q.
		Order("maintenance_request_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "my maintenance requests", maintenanceDTO.FromModelMaintenanceRequests(rows), &p)
}

// ========== CreateMaintenance ==========
// POST /portal/maintenance-requests — tenant files a request for their unit.
func (ctl *PortalController) CreateMaintenance(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return err
	}

	var body struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		Priority    *string `json:"priority"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(body.Title) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "title is required")
	}

	var lease leaseModel.Lease
	if err := ctl.DB.
		Scopes(leaseModel.ScopeByCompany(companyID), leaseModel.ScopeActive).
		Where("lease_tenant_id = ?", tenantID).
		Order("lease_start_date DESC").
		First(&lease).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "no active lease for this tenant")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := &maintenanceModel.MaintenanceRequest{
		MaintenanceRequestCompanyID:   companyID,
		MaintenanceRequestUnitID:      lease.LeaseUnitID,
		MaintenanceRequestTenantID:    &tenantID,
		MaintenanceRequestTitle:       strings.TrimSpace(body.Title),
		MaintenanceRequestDescription: body.Description,
		MaintenanceRequestPriority:    maintenanceModel.MaintenancePriorityMedium,
		MaintenanceRequestStatus:      maintenanceModel.MaintenanceStatusOpen,
	}
	if body.Priority != nil && maintenanceModel.MaintenancePriority(*body.Priority).Valid() {
		m.MaintenanceRequestPriority = maintenanceModel.MaintenancePriority(*body.Priority)
	}

	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "maintenance request created", maintenanceDTO.FromModelMaintenanceRequest(m))
}
