// file: internals/features/admin/audit_logs/model/audit_log_model.go
package model

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "propertyhub_backend/internals/helpers"
)

/* =========================
   Model: audit_logs
   ========================= */

type AuditLog struct {
	AuditLogID uuid.UUID `json:"audit_log_id" gorm:"column:audit_log_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope (nullable: system-admin actions have no company)
	AuditLogCompanyID *uuid.UUID `json:"audit_log_company_id,omitempty" gorm:"column:audit_log_company_id;type:uuid;index"`

	AuditLogActorID *uuid.UUID `json:"audit_log_actor_id,omitempty" gorm:"column:audit_log_actor_id;type:uuid"`

	AuditLogAction     string    `json:"audit_log_action"      gorm:"column:audit_log_action;type:varchar(80);not null"`
	AuditLogEntityType string    `json:"audit_log_entity_type" gorm:"column:audit_log_entity_type;type:varchar(40);not null"`
	AuditLogEntityID   uuid.UUID `json:"audit_log_entity_id"   gorm:"column:audit_log_entity_id;type:uuid;not null"`

	// snapshot of the mutation payload (JSONB, nullable)
	AuditLogPayload datatypes.JSON `json:"audit_log_payload,omitempty" gorm:"column:audit_log_payload;type:jsonb"`

	AuditLogIP string `json:"audit_log_ip" gorm:"column:audit_log_ip;type:varchar(64)"`

	AuditLogCreatedAt time.Time `json:"audit_log_created_at" gorm:"column:audit_log_created_at;type:timestamptz;not null;default:now()"`
}

func (AuditLog) TableName() string { return "audit_logs" }

/* =========================
   Recorder
   ========================= */

// Record appends an audit row. Best-effort: an audit failure never fails the
// request that triggered it.
func Record(db *gorm.DB, c *fiber.Ctx, companyID uuid.UUID, action, entityType string, entityID uuid.UUID, payload any) {
	row := AuditLog{
		AuditLogAction:     strings.TrimSpace(action),
		AuditLogEntityType: strings.TrimSpace(entityType),
		AuditLogEntityID:   entityID,
		AuditLogIP:         c.IP(),
	}
	if companyID != uuid.Nil {
		row.AuditLogCompanyID = &companyID
	}
	if actorID, err := helper.GetUserIDFromToken(c); err == nil {
		row.AuditLogActorID = &actorID
	}
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			row.AuditLogPayload = datatypes.JSON(b)
		}
	}

	if err := db.Create(&row).Error; err != nil {
		log.Printf("[AUDIT] failed to record %s %s: %v", action, entityID, err)
	}
}

/* =========================
   Scopes
   ========================= */

func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("audit_log_company_id = ?", companyID)
	}
}
