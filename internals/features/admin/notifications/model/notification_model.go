// file: internals/features/admin/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================
   Model: notifications
   ========================= */

// Notification is an in-app announcement targeted at one or more roles within
// a company. Delivery channels (email/SMS) are out of scope; rows are read by
// the dashboard and portal polling.
type Notification struct {
	NotificationID uuid.UUID `json:"notification_id" gorm:"column:notification_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	NotificationCompanyID uuid.UUID `json:"notification_company_id" gorm:"column:notification_company_id;type:uuid;not null;index"`

	NotificationTitle string  `json:"notification_title" gorm:"column:notification_title;type:varchar(160);not null"`
	NotificationBody  *string `json:"notification_body,omitempty" gorm:"column:notification_body;type:text"`

	// roles that see this announcement
	NotificationTargetRoles pq.StringArray `json:"notification_target_roles" gorm:"column:notification_target_roles;type:text[];not null"`

	NotificationCreatedBy *uuid.UUID `json:"notification_created_by,omitempty" gorm:"column:notification_created_by;type:uuid"`

	NotificationCreatedAt time.Time `json:"notification_created_at" gorm:"column:notification_created_at;type:timestamptz;not null;default:now()"`
}

func (Notification) TableName() string { return "notifications" }

/* =========================
   Model: notification_reads
   ========================= */

// NotificationRead marks one notification as read by one user.
type NotificationRead struct {
	NotificationReadID uuid.UUID `json:"notification_read_id" gorm:"column:notification_read_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	NotificationReadNotificationID uuid.UUID `json:"notification_read_notification_id" gorm:"column:notification_read_notification_id;type:uuid;not null;index:idx_notification_reads_pair,unique"`
	NotificationReadUserID         uuid.UUID `json:"notification_read_user_id"         gorm:"column:notification_read_user_id;type:uuid;not null;index:idx_notification_reads_pair,unique"`

	NotificationReadAt time.Time `json:"notification_read_at" gorm:"column:notification_read_at;type:timestamptz;not null;default:now()"`
}

func (NotificationRead) TableName() string { return "notification_reads" }

/* =========================
   Scopes
   ========================= */

func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("notification_company_id = ?", companyID)
	}
}

// ScopeForRole keeps announcements whose target list contains the role.
func ScopeForRole(role string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("? = ANY(notification_target_roles)", role)
	}
}
