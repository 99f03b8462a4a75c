// file: internals/features/admin/subscriptions/controller/subscription_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "propertyhub_backend/internals/features/admin/subscriptions/model"
	helper "propertyhub_backend/internals/helpers"
)

type SubscriptionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{
		DB:        db,
		Validator: validator.New(),
	}
}

type upsertSubscriptionRequest struct {
	SubscriptionCompanyID   uuid.UUID  `json:"subscription_company_id" validate:"required"`
	SubscriptionPlan        string     `json:"subscription_plan"        validate:"required,max=40"`
	MaxUnits                int        `json:"max_units"                validate:"gte=0"`
	MaxUsers                int        `json:"max_users"                validate:"gte=0"`
	SubscriptionPeriodStart *time.Time `json:"subscription_period_start"`
	SubscriptionPeriodEnd   *time.Time `json:"subscription_period_end"`
	SubscriptionStatus      string     `json:"subscription_status"      validate:"required,oneof=trial active past_due cancelled"`
}

// ========== Upsert ==========
// PUT /system/subscriptions — system admin sets a company's plan. One row per
// company; repeated calls replace the existing plan.
func (ctl *SubscriptionController) Upsert(c *fiber.Ctx) error {
	var req upsertSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var sub model.Subscription
	err := ctl.DB.
		Where("subscription_company_id = ?", req.SubscriptionCompanyID).
		First(&sub).Error
	isNew := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !isNew {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	sub.SubscriptionCompanyID = req.SubscriptionCompanyID
	sub.SubscriptionPlan = strings.TrimSpace(req.SubscriptionPlan)
	sub.SubscriptionPeriodStart = req.SubscriptionPeriodStart
	sub.SubscriptionPeriodEnd = req.SubscriptionPeriodEnd
	sub.SubscriptionStatus = model.SubscriptionStatus(req.SubscriptionStatus)
	if err := sub.SetSubscriptionLimits(&model.SubscriptionLimitsPayload{
		MaxUnits: req.MaxUnits,
		MaxUsers: req.MaxUsers,
	}); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if isNew {
		if err := ctl.DB.Create(&sub).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonCreated(c, "subscription created", sub)
	}
	if err := ctl.DB.Save(&sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "subscription updated", sub)
}

// ========== List ==========
// GET /system/subscriptions?status=&page=&per_page=
func (ctl *SubscriptionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.Subscription{})
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !model.SubscriptionStatus(s).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status invalid")
		}
		q = q.Where("subscription_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Subscription
	if err := q.
		Order("subscription_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "subscriptions", rows, &p)
}

// ========== MySubscription ==========
// GET /subscriptions/me — company admin views the current plan.
func (ctl *SubscriptionController) MySubscription(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var sub model.Subscription
	if err := ctl.DB.
		Where("subscription_company_id = ?", companyID).
		Order("subscription_created_at DESC").
		First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "no subscription on record")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "subscription", sub)
}
