// file: internals/features/finance/payments/controller/payment_controller.go
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
	billingModel "propertyhub_backend/internals/features/finance/billings/model"
	dto "propertyhub_backend/internals/features/finance/payments/dto"
	model "propertyhub_backend/internals/features/finance/payments/model"
	service "propertyhub_backend/internals/features/finance/payments/service"
	helper "propertyhub_backend/internals/helpers"
)

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *PaymentController) findBilling(id, companyID uuid.UUID) (*billingModel.Billing, error) {
	var b billingModel.Billing
	err := ctl.DB.
		Where("billing_id = ? AND billing_company_id = ?", id, companyID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ========== Record ==========
// POST /payments — staff records an offline payment against a billing.
func (ctl *PaymentController) Record(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	billing, err := ctl.findBilling(req.PaymentBillingID, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "billing not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	paidAt := time.Now().UTC()
	if req.PaymentPaidAt != nil {
		paidAt = req.PaymentPaidAt.UTC()
	}

	payment := &model.Payment{
		PaymentCompanyID: companyID,
		PaymentBillingID: billing.BillingID,
		PaymentTenantID:  billing.BillingTenantID,
		PaymentAmount:    req.PaymentAmount,
		PaymentMethod:    model.PaymentMethod(req.PaymentMethod),
		PaymentPaidAt:    paidAt,
		PaymentReference: req.PaymentReference,
		PaymentNotes:     req.PaymentNotes,
	}
	if actorID, err := helper.GetUserIDFromToken(c); err == nil {
		payment.PaymentRecordedBy = &actorID
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		return service.ApplyPayment(tx, billing, payment)
	})
	if err != nil {
		if errors.Is(err, service.ErrBillingCancelled) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		if errors.Is(err, service.ErrAmountInvalid) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	auditModel.Record(ctl.DB, c, companyID, "payment.record", "payment", payment.PaymentID, fiber.Map{
		"billing_id": billing.BillingID,
		"amount":     payment.PaymentAmount,
		"method":     payment.PaymentMethod,
	})
	return helper.JsonCreated(c, "payment recorded", fiber.Map{
		"payment":        dto.FromModelPayment(payment),
		"billing_status": billing.BillingStatus,
		"paid_amount":    billing.BillingPaidAmount,
	})
}

// ========== List ==========
// GET /payments?billing_id=&tenant_id=&page=&per_page=
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.Payment{}).
		Scopes(model.ScopeByCompany(companyID))

	if s := strings.TrimSpace(c.Query("billing_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "billing_id invalid")
		}
		q = q.Scopes(model.ScopeByBilling(id))
	}
	if s := strings.TrimSpace(c.Query("tenant_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "tenant_id invalid")
		}
		q = q.Where("payment_tenant_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Payment
	if err := q.
		Order("payment_paid_at DESC, payment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "payments", dto.FromModelPayments(rows), &p)
}

// ========== Webhook ==========
// POST /payments/webhook — Midtrans notification endpoint (no auth; Midtrans
// calls it server-to-server).
func (ctl *PaymentController) HandleWebhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := service.HandlePaymentWebhook(ctl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "webhook processed", nil)
}
