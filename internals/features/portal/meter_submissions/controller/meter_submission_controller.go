// file: internals/features/portal/meter_submissions/controller/meter_submission_controller.go
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
	feeTypeModel "propertyhub_backend/internals/features/finance/fee_types/model"
	readingModel "propertyhub_backend/internals/features/finance/meter_readings/model"
	readingService "propertyhub_backend/internals/features/finance/meter_readings/service"
	unitFeeModel "propertyhub_backend/internals/features/finance/unit_fees/model"
	dto "propertyhub_backend/internals/features/portal/meter_submissions/dto"
	model "propertyhub_backend/internals/features/portal/meter_submissions/model"
	leaseModel "propertyhub_backend/internals/features/property/leases/model"
	helper "propertyhub_backend/internals/helpers"
)

type MeterSubmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMeterSubmissionController(db *gorm.DB) *MeterSubmissionController {
	return &MeterSubmissionController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =========================
   Tenant portal side
   ========================= */

// ========== Submit ==========
// POST /portal/meter-submissions — tenant reports a meter value for the unit
// of their active lease. One pending submission per (tenant, fee_type).
func (ctl *MeterSubmissionController) Submit(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SubmitMeterReadingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// the submission binds to the unit of the tenant's active lease
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

	var feeType feeTypeModel.FeeType
	if err := ctl.DB.
		Scopes(feeTypeModel.ScopeByCompany(companyID), feeTypeModel.ScopeActive).
		Where("fee_type_id = ?", req.MeterSubmissionFeeTypeID).
		First(&feeType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee type not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if feeType.FeeTypeCalculationType != feeTypeModel.FeeCalcMetered {
		return helper.JsonError(c, fiber.StatusBadRequest, "fee type is not metered")
	}

	var open []model.TenantMeterSubmission
	if err := ctl.DB.
		Scopes(model.ScopeByCompany(companyID), model.ScopeByTenant(tenantID), model.ScopePending).
		Find(&open).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if model.HasPendingForFeeType(open, feeType.FeeTypeID) {
		return helper.JsonError(c, fiber.StatusConflict, "a pending submission already exists for this fee type")
	}

	subDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.MeterSubmissionDate != nil {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(*req.MeterSubmissionDate))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "meter_submission_date must be YYYY-MM-DD")
		}
		subDate = d
	}

	sub := &model.TenantMeterSubmission{
		MeterSubmissionCompanyID: companyID,
		MeterSubmissionTenantID:  tenantID,
		MeterSubmissionUnitID:    lease.LeaseUnitID,
		MeterSubmissionFeeTypeID: feeType.FeeTypeID,
		MeterSubmissionValue:     req.MeterSubmissionValue,
		MeterSubmissionDate:      subDate,
		MeterSubmissionPhotoURL:  req.MeterSubmissionPhotoURL,
		MeterSubmissionNotes:     req.MeterSubmissionNotes,
		MeterSubmissionStatus:    model.MeterSubmissionStatusPending,
	}
	if err := ctl.DB.Create(sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "meter reading submitted", dto.FromModelMeterSubmission(sub))
}

// ========== MySubmissions ==========
// GET /portal/meter-submissions
func (ctl *MeterSubmissionController) MySubmissions(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}
	tenantID, err := helper.GetTenantIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.TenantMeterSubmission{}).
		Scopes(model.ScopeByCompany(companyID), model.ScopeByTenant(tenantID))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.TenantMeterSubmission
	if err := q.
		Order("meter_submission_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "meter submissions", dto.FromModelMeterSubmissions(rows), &p)
}

/* =========================
   Staff review side
   ========================= */

// ========== List ==========
// GET /meter-submissions?status=&page=&per_page=
func (ctl *MeterSubmissionController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.TenantMeterSubmission{}).
		Scopes(model.ScopeByCompany(companyID))

	if s := strings.TrimSpace(c.Query("status")); s != "" {
		switch model.MeterSubmissionStatus(s) {
		case model.MeterSubmissionStatusPending, model.MeterSubmissionStatusApproved, model.MeterSubmissionStatusRejected:
			q = q.Where("meter_submission_status = ?", s)
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "status invalid")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.TenantMeterSubmission
	if err := q.
		Order("meter_submission_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "meter submissions", dto.FromModelMeterSubmissions(rows), &p)
}

// findOwned fetches a submission within the company scope regardless of its
// status; callers check the status themselves.
func (ctl *MeterSubmissionController) findOwned(id, companyID uuid.UUID) (*model.TenantMeterSubmission, error) {
	var sub model.TenantMeterSubmission
	err := ctl.DB.
		Scopes(model.ScopeByCompany(companyID)).
		Where("meter_submission_id = ?", id).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ========== Approve ==========
// POST /meter-submissions/:id/approve — materializes the submission into a
// MeterReading (previous auto-filled from the latest recorded reading, price
// from the unit-fee override then the fee-type default) and links it.
func (ctl *MeterSubmissionController) Approve(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "meter_submission_id invalid")
	}

	sub, err := ctl.findOwned(id, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "meter submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if sub.MeterSubmissionStatus != model.MeterSubmissionStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "meter submission already reviewed")
	}

	latest, err := readingModel.LatestReading(ctl.DB, companyID, sub.MeterSubmissionUnitID, sub.MeterSubmissionFeeTypeID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var overridePrice *float64
	var override unitFeeModel.UnitFee
	err = ctl.DB.
		Scopes(unitFeeModel.ScopeByCompany(companyID), unitFeeModel.ScopeActive).
		Where("unit_fee_unit_id = ? AND unit_fee_fee_type_id = ?", sub.MeterSubmissionUnitID, sub.MeterSubmissionFeeTypeID).
		Order("unit_fee_created_at ASC").
		First(&override).Error
	if err == nil {
		overridePrice = override.UnitFeeCustomUnitPrice
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var defaultPrice *float64
	var feeType feeTypeModel.FeeType
	if err := ctl.DB.
		Where("fee_type_id = ?", sub.MeterSubmissionFeeTypeID).
		First(&feeType).Error; err == nil {
		defaultPrice = feeType.FeeTypeDefaultUnitPrice
	}

	reading, err := readingService.BuildReading(readingService.ReadingInput{
		CompanyID:     companyID,
		UnitID:        sub.MeterSubmissionUnitID,
		FeeTypeID:     sub.MeterSubmissionFeeTypeID,
		ReadingDate:   sub.MeterSubmissionDate,
		Current:       sub.MeterSubmissionValue,
		OverridePrice: overridePrice,
		DefaultPrice:  defaultPrice,
		Latest:        latest,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	now := time.Now().UTC()
	var reviewerID *uuid.UUID
	if actorID, err := helper.GetUserIDFromToken(c); err == nil {
		reviewerID = &actorID
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reading).Error; err != nil {
			return err
		}
		return tx.Model(&model.TenantMeterSubmission{}).
			Where("meter_submission_id = ?", sub.MeterSubmissionID).
			Updates(map[string]interface{}{
				"meter_submission_status":           model.MeterSubmissionStatusApproved,
				"meter_submission_meter_reading_id": reading.MeterReadingID,
				"meter_submission_reviewed_by":      reviewerID,
				"meter_submission_reviewed_at":      now,
				"meter_submission_updated_at":       now,
			}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	sub.MeterSubmissionStatus = model.MeterSubmissionStatusApproved
	sub.MeterSubmissionMeterReadingID = &reading.MeterReadingID
	sub.MeterSubmissionReviewedBy = reviewerID
	sub.MeterSubmissionReviewedAt = &now

	auditModel.Record(ctl.DB, c, companyID, "meter_submission.approve", "meter_submission", sub.MeterSubmissionID, fiber.Map{
		"meter_reading_id": reading.MeterReadingID,
	})
	return helper.JsonUpdated(c, "meter submission approved", dto.FromModelMeterSubmission(sub))
}

// ========== Reject ==========
// POST /meter-submissions/:id/reject — reason is mandatory.
func (ctl *MeterSubmissionController) Reject(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "meter_submission_id invalid")
	}

	var req dto.RejectMeterSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "rejection reason is required")
	}

	sub, err := ctl.findOwned(id, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "meter submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if sub.MeterSubmissionStatus != model.MeterSubmissionStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "meter submission already reviewed")
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"meter_submission_status":           model.MeterSubmissionStatusRejected,
		"meter_submission_rejection_reason": req.Reason,
		"meter_submission_reviewed_at":      now,
		"meter_submission_updated_at":       now,
	}
	if actorID, err := helper.GetUserIDFromToken(c); err == nil {
		updates["meter_submission_reviewed_by"] = actorID
		sub.MeterSubmissionReviewedBy = &actorID
	}

	if err := ctl.DB.Model(&model.TenantMeterSubmission{}).
		Where("meter_submission_id = ?", sub.MeterSubmissionID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	sub.MeterSubmissionStatus = model.MeterSubmissionStatusRejected
	sub.MeterSubmissionRejectionReason = &req.Reason
	sub.MeterSubmissionReviewedAt = &now

	auditModel.Record(ctl.DB, c, companyID, "meter_submission.reject", "meter_submission", sub.MeterSubmissionID, nil)
	return helper.JsonUpdated(c, "meter submission rejected", dto.FromModelMeterSubmission(sub))
}
