// file: internals/features/finance/billings/controller/billing_controller.go
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
	dto "propertyhub_backend/internals/features/finance/billings/dto"
	model "propertyhub_backend/internals/features/finance/billings/model"
	service "propertyhub_backend/internals/features/finance/billings/service"
	helper "propertyhub_backend/internals/helpers"
)

type BillingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{
		DB:        db,
		Validator: validator.New(),
	}
}

const dateLayout = "2006-01-02"

// ========== Generate ==========
// POST /billings/generate — wizard confirm step. Returns the per-lease report.
func (ctl *BillingController) Generate(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.GenerateBillingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	monthStart, err := service.ParseBillingMonth(strings.TrimSpace(req.BillingMonth))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	issueDate, err := time.Parse(dateLayout, strings.TrimSpace(req.IssueDate))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "issue_date must be YYYY-MM-DD")
	}
	dueDate, err := time.Parse(dateLayout, strings.TrimSpace(req.DueDate))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "due_date must be YYYY-MM-DD")
	}

	report, err := service.Generate(ctl.DB, service.GenerateInput{
		CompanyID:  companyID,
		MonthStart: monthStart,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		LeaseIDs:   req.LeaseIDs,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	auditModel.Record(ctl.DB, c, companyID, "billing.generate", "billing", uuid.Nil, fiber.Map{
		"billing_month":   req.BillingMonth,
		"selected":        len(req.LeaseIDs),
		"generated_count": report.GeneratedCount,
	})
	return helper.JsonCreated(c, "billings generated", report)
}

// ========== List ==========
// GET /billings?month=&status=&tenant_id=&lease_id=&page=&per_page=
func (ctl *BillingController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.Billing{}).
		Scopes(model.ScopeByCompany(companyID))

	if s := strings.TrimSpace(c.Query("month")); s != "" {
		monthStart, err := service.ParseBillingMonth(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Scopes(model.ScopeByMonth(monthStart))
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !model.BillingStatus(s).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status invalid")
		}
		// overdue is derived, not stored: match the rows that read as overdue
		if model.BillingStatus(s) == model.BillingStatusOverdue {
			q = q.Where("billing_status IN ? AND billing_due_date < ?",
				[]model.BillingStatus{model.BillingStatusPending, model.BillingStatusPartial}, time.Now().UTC())
		} else {
			q = q.Where("billing_status = ?", s)
		}
	}
	if s := strings.TrimSpace(c.Query("tenant_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "tenant_id invalid")
		}
		q = q.Scopes(model.ScopeByTenant(id))
	}
	if s := strings.TrimSpace(c.Query("lease_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "lease_id invalid")
		}
		q = q.Where("billing_lease_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Billing
	if err := q.
		Order("billing_month DESC, billing_number DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "billings", dto.FromModelBillings(rows, time.Now().UTC()), &p)
}

// ========== GetByID ==========
// GET /billings/:id — detail with line items.
func (ctl *BillingController) GetByID(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "billing_id invalid")
	}

	var b model.Billing
	if err := ctl.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("billing_item_display_order ASC")
		}).
		Where("billing_id = ? AND billing_company_id = ?", id, companyID).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "billing not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "billing", dto.FromModelBilling(&b, time.Now().UTC()))
}

// ========== Cancel ==========
// POST /billings/:id/cancel — one-way; refused once fully paid.
func (ctl *BillingController) Cancel(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "billing_id invalid")
	}

	var b model.Billing
	if err := ctl.DB.
		Where("billing_id = ? AND billing_company_id = ?", id, companyID).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "billing not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if b.BillingStatus == model.BillingStatusCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "billing already cancelled")
	}
	if b.BillingStatus == model.BillingStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "paid billing cannot be cancelled")
	}

	now := time.Now().UTC()
	if err := ctl.DB.Model(&model.Billing{}).
		Where("billing_id = ?", b.BillingID).
		Updates(map[string]interface{}{
			"billing_status":       model.BillingStatusCancelled,
			"billing_cancelled_at": now,
			"billing_updated_at":   now,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	b.BillingStatus = model.BillingStatusCancelled
	b.BillingCancelledAt = &now
	auditModel.Record(ctl.DB, c, companyID, "billing.cancel", "billing", b.BillingID, nil)
	return helper.JsonUpdated(c, "billing cancelled", dto.FromModelBilling(&b, now))
}
