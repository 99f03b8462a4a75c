// file: internals/features/finance/payments/controller/checkout_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billingModel "propertyhub_backend/internals/features/finance/billings/model"
	service "propertyhub_backend/internals/features/finance/payments/service"
	helper "propertyhub_backend/internals/helpers"
)

type CheckoutController struct {
	DB *gorm.DB
}

func NewCheckoutController(db *gorm.DB) *CheckoutController {
	return &CheckoutController{DB: db}
}

// ========== CreateSnapToken ==========
// POST /portal/billings/:id/checkout — tenant pays an open billing online.
func (ctl *CheckoutController) CreateSnapToken(c *fiber.Ctx) error {
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

	var billing billingModel.Billing
	if err := ctl.DB.
		Where("billing_id = ? AND billing_company_id = ? AND billing_tenant_id = ?", id, companyID, tenantID).
		First(&billing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "billing not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if billing.BillingStatus == billingModel.BillingStatusCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "cancelled billing cannot be paid")
	}
	if billing.BillingPaidAmount >= billing.BillingTotalAmount {
		return helper.JsonError(c, fiber.StatusConflict, "billing is already fully paid")
	}

	var tenantName, tenantEmail string
	ctl.DB.Table("tenants").
		Select("tenant_name, COALESCE(tenant_email, '')").
		Where("tenant_id = ?", tenantID).
		Row().Scan(&tenantName, &tenantEmail)

	orderID := service.BuildOrderID(billing.BillingID)
	token, err := service.GenerateSnapToken(&billing, orderID, tenantName, tenantEmail)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "payment gateway error: "+err.Error())
	}

	return helper.JsonCreated(c, "checkout created", fiber.Map{
		"order_id":       orderID,
		"snap_token":     token,
		"billing_number": billing.BillingNumber,
		"amount":         billing.BillingTotalAmount - billing.BillingPaidAmount,
	})
}
