// file: internals/features/admin/notifications/dto/notification_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "propertyhub_backend/internals/features/admin/notifications/model"
)

/* =========================
   Requests
   ========================= */

type CreateNotificationRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=160"`
	Body        *string  `json:"body,omitempty"`
	TargetRoles []string `json:"target_roles" validate:"required,min=1,dive,oneof=owner admin staff tenant"`
}

func (r *CreateNotificationRequest) ToModel(companyID uuid.UUID, createdBy *uuid.UUID) *model.Notification {
	roles := make([]string, 0, len(r.TargetRoles))
	for _, role := range r.TargetRoles {
		roles = append(roles, strings.ToLower(strings.TrimSpace(role)))
	}
	return &model.Notification{
		NotificationCompanyID:   companyID,
		NotificationTitle:       strings.TrimSpace(r.Title),
		NotificationBody:        r.Body,
		NotificationTargetRoles: pq.StringArray(roles),
		NotificationCreatedBy:   createdBy,
	}
}

/* =========================
   Responses
   ========================= */

type NotificationResponse struct {
	NotificationID uuid.UUID `json:"notification_id"`
	Title          string    `json:"title"`
	Body           *string   `json:"body,omitempty"`
	TargetRoles    []string  `json:"target_roles"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromModelNotification(m *model.Notification, isRead bool) NotificationResponse {
	return NotificationResponse{
		NotificationID: m.NotificationID,
		Title:          m.NotificationTitle,
		Body:           m.NotificationBody,
		TargetRoles:    []string(m.NotificationTargetRoles),
		IsRead:         isRead,
		CreatedAt:      m.NotificationCreatedAt,
	}
}
