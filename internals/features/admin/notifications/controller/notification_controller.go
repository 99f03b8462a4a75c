// file: internals/features/admin/notifications/controller/notification_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	auditModel "propertyhub_backend/internals/features/admin/audit_logs/model"
	"propertyhub_backend/internals/features/admin/notifications/dto"
	"propertyhub_backend/internals/features/admin/notifications/model"
	helper "propertyhub_backend/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validate: validator.New()}
}

// ========== CREATE ==========
// POST /api/a/notifications
func (ctrl *NotificationController) Create(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var createdBy *uuid.UUID
	if uid, err := helper.GetUserIDFromToken(c); err == nil {
		createdBy = &uid
	}

	row := req.ToModel(companyID, createdBy)
	if err := ctrl.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notification")
	}

	auditModel.Record(ctrl.DB, c, companyID, "notification.create", "notification", row.NotificationID, fiber.Map{
		"title":        row.NotificationTitle,
		"target_roles": []string(row.NotificationTargetRoles),
	})

	return helper.JsonCreated(c, "Notification created", dto.FromModelNotification(row, false))
}

// ========== LIST (mine) ==========
// GET /api/a/notifications and GET /api/u/notifications
// Returns announcements targeted at any of the caller's roles, newest first,
// each annotated with the caller's read state.
func (ctrl *NotificationController) ListMine(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	roles := helper.RolesFromToken(c)
	if len(roles) == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "No role in token")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Notification{}).
		Scopes(model.ScopeByCompany(companyID)).
		Where("notification_target_roles && ?", pq.StringArray(roles))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var rows []model.Notification
	if err := q.
		Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	readSet, err := ctrl.readSetFor(userID, rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch read state")
	}

	out := make([]dto.NotificationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelNotification(&rows[i], readSet[rows[i].NotificationID]))
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "notifications", out, &p)
}

// ========== MARK READ ==========
// POST /api/a/notifications/:id/read and POST /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	var row model.Notification
	if err := ctrl.DB.
		Scopes(model.ScopeByCompany(companyID)).
		First(&row, "notification_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notification")
	}

	read := model.NotificationRead{
		NotificationReadNotificationID: row.NotificationID,
		NotificationReadUserID:         userID,
	}
	// repeated mark-read is a no-op
	if err := ctrl.DB.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&read).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark notification as read")
	}

	return helper.JsonUpdated(c, "Notification marked as read", dto.FromModelNotification(&row, true))
}

// ========== DELETE ==========
// DELETE /api/a/notifications/:id
func (ctrl *NotificationController) Delete(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	res := ctrl.DB.
		Scopes(model.ScopeByCompany(companyID)).
		Delete(&model.Notification{}, "notification_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}

	ctrl.DB.Where("notification_read_notification_id = ?", id).Delete(&model.NotificationRead{})

	auditModel.Record(ctrl.DB, c, companyID, "notification.delete", "notification", id, nil)

	return helper.JsonDeleted(c, "Notification deleted", fiber.Map{"notification_id": id})
}

/* =========================
   Internal
   ========================= */

func (ctrl *NotificationController) readSetFor(userID uuid.UUID, rows []model.Notification) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].NotificationID)
	}
	var readIDs []uuid.UUID
	if err := ctrl.DB.Model(&model.NotificationRead{}).
		Where("notification_read_user_id = ? AND notification_read_notification_id IN ?", userID, ids).
		Pluck("notification_read_notification_id", &readIDs).Error; err != nil {
		return nil, err
	}
	for _, id := range readIDs {
		out[id] = true
	}
	return out, nil
}
