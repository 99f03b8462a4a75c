// file: internals/features/admin/subscriptions/model/subscription_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Enums (Go-side)
   ========================= */

type SubscriptionStatus string

const (
	SubStatusTrial     SubscriptionStatus = "trial"
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusPastDue   SubscriptionStatus = "past_due"
	SubStatusCancelled SubscriptionStatus = "cancelled"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubStatusTrial, SubStatusActive, SubStatusPastDue, SubStatusCancelled:
		return true
	}
	return false
}

/* =========================
   Limits payload (JSONB)
   ========================= */

type SubscriptionLimitsPayload struct {
	MaxUnits int `json:"max_units"` // 0 = unlimited
	MaxUsers int `json:"max_users"` // 0 = unlimited
}

/* =========================
   Model: subscriptions
   ========================= */

type Subscription struct {
	SubscriptionID uuid.UUID `json:"subscription_id" gorm:"column:subscription_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	SubscriptionCompanyID uuid.UUID `json:"subscription_company_id" gorm:"column:subscription_company_id;type:uuid;not null;index"`

	SubscriptionPlan string `json:"subscription_plan" gorm:"column:subscription_plan;type:varchar(40);not null;default:'trial'"`

	SubscriptionLimits datatypes.JSON `json:"subscription_limits,omitempty" gorm:"column:subscription_limits;type:jsonb"`

	SubscriptionPeriodStart *time.Time `json:"subscription_period_start,omitempty" gorm:"column:subscription_period_start;type:date"`
	SubscriptionPeriodEnd   *time.Time `json:"subscription_period_end,omitempty"   gorm:"column:subscription_period_end;type:date"`

	SubscriptionStatus SubscriptionStatus `json:"subscription_status" gorm:"column:subscription_status;type:varchar(20);not null;default:'trial'"`

	SubscriptionCreatedAt time.Time `json:"subscription_created_at" gorm:"column:subscription_created_at;type:timestamptz;not null;default:now()"`
	SubscriptionUpdatedAt time.Time `json:"subscription_updated_at" gorm:"column:subscription_updated_at;type:timestamptz;not null;default:now()"`
}

func (Subscription) TableName() string { return "subscriptions" }

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	s.SubscriptionUpdatedAt = time.Now().UTC()
	return nil
}
func (s *Subscription) BeforeUpdate(tx *gorm.DB) error {
	s.SubscriptionUpdatedAt = time.Now().UTC()
	return nil
}

func (s *Subscription) SetSubscriptionLimits(v *SubscriptionLimitsPayload) error {
	if v == nil {
		s.SubscriptionLimits = nil
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.SubscriptionLimits = datatypes.JSON(b)
	return nil
}

func (s *Subscription) Limits() SubscriptionLimitsPayload {
	var out SubscriptionLimitsPayload
	if len(s.SubscriptionLimits) > 0 {
		_ = json.Unmarshal(s.SubscriptionLimits, &out)
	}
	return out
}

/* =========================
   Quota check
   ========================= */

// CheckUnitQuota rejects unit creation when the company's plan limit is hit.
// A company without a subscription row is treated as unlimited (legacy data).
func CheckUnitQuota(db *gorm.DB, companyID uuid.UUID) error {
	var sub Subscription
	err := db.
		Where("subscription_company_id = ? AND subscription_status IN ?", companyID,
			[]string{string(SubStatusTrial), string(SubStatusActive)}).
		Order("subscription_created_at DESC").
		First(&sub).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	limits := sub.Limits()
	if limits.MaxUnits <= 0 {
		return nil
	}

	var count int64
	if err := db.Table("units").
		Where("unit_company_id = ? AND unit_deleted_at IS NULL", companyID).
		Count(&count).Error; err != nil {
		return err
	}
	if count >= int64(limits.MaxUnits) {
		return fiber.NewError(fiber.StatusForbidden, "unit limit for the current plan reached")
	}
	return nil
}
