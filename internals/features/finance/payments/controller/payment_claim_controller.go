// file: internals/features/finance/payments/controller/payment_claim_controller.go
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

type PaymentClaimController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentClaimController(db *gorm.DB) *PaymentClaimController {
	return &PaymentClaimController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =========================
   Tenant portal side
   ========================= */

// ========== Submit ==========
// POST /portal/payment-claims — tenant reports an offline payment.
func (ctl *PaymentClaimController) Submit(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SubmitPaymentClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// the billing must be the tenant's own and still payable
	var billing billingModel.Billing
	if err := ctl.DB.
		Where("billing_id = ? AND billing_company_id = ? AND billing_tenant_id = ?",
			req.PaymentClaimBillingID, companyID, tenantID).
		First(&billing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "billing not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if billing.BillingStatus == billingModel.BillingStatusCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "cancelled billing cannot be claimed")
	}
	if billing.BillingStatus == billingModel.BillingStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "billing is already fully paid")
	}

	// one pending claim per billing
	var pending int64
	if err := ctl.DB.Model(&model.PaymentClaim{}).
		Scopes(model.ScopeClaimsPending).
		Where("payment_claim_billing_id = ?", billing.BillingID).
		Count(&pending).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if pending > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "a pending claim already exists for this billing")
	}

	claim := &model.PaymentClaim{
		PaymentClaimCompanyID: companyID,
		PaymentClaimBillingID: billing.BillingID,
		PaymentClaimTenantID:  tenantID,
		PaymentClaimAmount:    req.PaymentClaimAmount,
		PaymentClaimProofURL:  req.PaymentClaimProofURL,
		PaymentClaimNotes:     req.PaymentClaimNotes,
		PaymentClaimStatus:    model.PaymentClaimStatusPending,
	}
	if err := ctl.DB.Create(claim).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "payment claim submitted", dto.FromModelPaymentClaim(claim))
}

// ========== MyClaims ==========
// GET /portal/payment-claims
func (ctl *PaymentClaimController) MyClaims(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.PaymentClaim{}).
		Scopes(model.ScopeClaimsByCompany(companyID)).
		Where("payment_claim_tenant_id = ?", tenantID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PaymentClaim
	if err := q.
		Order("payment_claim_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "payment claims", dto.FromModelPaymentClaims(rows), &p)
}

/* =========================
   Staff review side
   ========================= */

// ========== List ==========
// GET /payment-claims?status=&page=&per_page=
func (ctl *PaymentClaimController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.PaymentClaim{}).
		Scopes(model.ScopeClaimsByCompany(companyID))

	if s := strings.TrimSpace(c.Query("status")); s != "" {
		switch model.PaymentClaimStatus(s) {
		case model.PaymentClaimStatusPending, model.PaymentClaimStatusApproved, model.PaymentClaimStatusRejected:
			q = q.Where("payment_claim_status = ?", s)
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "status invalid")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PaymentClaim
	if err := q.
		Order("payment_claim_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "payment claims", dto.FromModelPaymentClaims(rows), &p)
}

func (ctl *PaymentClaimController) findPendingClaim(id, companyID uuid.UUID) (*model.PaymentClaim, error) {
	var claim model.PaymentClaim
	err := ctl.DB.
		Scopes(model.ScopeClaimsByCompany(companyID)).
		Where("payment_claim_id = ?", id).
		First(&claim).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// ========== Approve ==========
// POST /payment-claims/:id/approve — creates the Payment and settles it into
// the billing in one transaction.
func (ctl *PaymentClaimController) Approve(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_claim_id invalid")
	}

	claim, err := ctl.findPendingClaim(id, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment claim not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if claim.PaymentClaimStatus != model.PaymentClaimStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "payment claim already reviewed")
	}

	var billing billingModel.Billing
	if err := ctl.DB.
		Where("billing_id = ?", claim.PaymentClaimBillingID).
		First(&billing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now().UTC()
	payment := &model.Payment{
		PaymentCompanyID: companyID,
		PaymentBillingID: billing.BillingID,
		PaymentTenantID:  claim.PaymentClaimTenantID,
		PaymentAmount:    claim.PaymentClaimAmount,
		PaymentMethod:    model.PaymentMethodTransfer,
		PaymentPaidAt:    now,
		PaymentNotes:     claim.PaymentClaimNotes,
	}
	var reviewerID *uuid.UUID
	if actorID, err := helper.GetUserIDFromToken(c); err == nil {
		payment.PaymentRecordedBy = &actorID
		reviewerID = &actorID
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := service.ApplyPayment(tx, &billing, payment); err != nil {
			return err
		}
		return tx.Model(&model.PaymentClaim{}).
			Where("payment_claim_id = ?", claim.PaymentClaimID).
			Updates(map[string]interface{}{
				"payment_claim_status":      model.PaymentClaimStatusApproved,
				"payment_claim_payment_id":  payment.PaymentID,
				"payment_claim_reviewed_by": reviewerID,
				"payment_claim_reviewed_at": now,
				"payment_claim_updated_at":  now,
			}).Error
	})
	if err != nil {
		if errors.Is(err, service.ErrBillingCancelled) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	claim.PaymentClaimStatus = model.PaymentClaimStatusApproved
	claim.PaymentClaimPaymentID = &payment.PaymentID
	claim.PaymentClaimReviewedBy = reviewerID
	claim.PaymentClaimReviewedAt = &now

	auditModel.Record(ctl.DB, c, companyID, "payment_claim.approve", "payment_claim", claim.PaymentClaimID, fiber.Map{
		"billing_id": billing.BillingID,
		"amount":     claim.PaymentClaimAmount,
	})
	return helper.JsonUpdated(c, "payment claim approved", dto.FromModelPaymentClaim(claim))
}

// ========== Reject ==========
// POST /payment-claims/:id/reject — reason is mandatory.
func (ctl *PaymentClaimController) Reject(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_claim_id invalid")
	}

	var req dto.RejectPaymentClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "rejection reason is required")
	}

	claim, err := ctl.findPendingClaim(id, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment claim not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if claim.PaymentClaimStatus != model.PaymentClaimStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "payment claim already reviewed")
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"payment_claim_status":           model.PaymentClaimStatusRejected,
		"payment_claim_rejection_reason": req.Reason,
		"payment_claim_reviewed_at":      now,
		"payment_claim_updated_at":       now,
	}
	if actorID, err := helper.GetUserIDFromToken(c); err == nil {
		updates["payment_claim_reviewed_by"] = actorID
		claim.PaymentClaimReviewedBy = &actorID
	}

	if err := ctl.DB.Model(&model.PaymentClaim{}).
		Where("payment_claim_id = ?", claim.PaymentClaimID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	claim.PaymentClaimStatus = model.PaymentClaimStatusRejected
	claim.PaymentClaimRejectionReason = &req.Reason
	claim.PaymentClaimReviewedAt = &now

	auditModel.Record(ctl.DB, c, companyID, "payment_claim.reject", "payment_claim", claim.PaymentClaimID, nil)
	return helper.JsonUpdated(c, "payment claim rejected", dto.FromModelPaymentClaim(claim))
}
