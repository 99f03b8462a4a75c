// file: internals/features/admin/audit_logs/controller/audit_log_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "propertyhub_backend/internals/features/admin/audit_logs/model"
	helper "propertyhub_backend/internals/helpers"
)

type AuditLogController struct {
	DB *gorm.DB
}

func NewAuditLogController(db *gorm.DB) *AuditLogController {
	return &AuditLogController{DB: db}
}

// ========== List ==========
// GET /audit-logs?action=&entity_type=&entity_id=&page=&per_page=
// Rows are append-only; this is the only read surface.
func (ctl *AuditLogController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.AuditLog{}).
		Where("audit_log_company_id = ?", companyID)

	if s := strings.TrimSpace(c.Query("action")); s != "" {
		q = q.Where("audit_log_action = ?", s)
	}
	if s := strings.TrimSpace(c.Query("entity_type")); s != "" {
		q = q.Where("audit_log_entity_type = ?", s)
	}
	if s := strings.TrimSpace(c.Query("entity_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "entity_id invalid")
		}
		q = q.Where("audit_log_entity_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AuditLog
	if err := q.
		Order("audit_log_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "audit logs", rows, &p)
}
