package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
)

// CalendarEvent is a dated entry on a user's calendar, including the
// payment-deadline reminders emitted at finalization.
type CalendarEvent struct {
	ID               uuid.UUID               `gorm:"column:id;type:uuid;primaryKey"`
	UserID           uuid.UUID               `gorm:"column:user_id;type:uuid;not null;index"`
	Title            string                  `gorm:"column:title;not null"`
	Description      string                  `gorm:"column:description"`
	EventType        enums.CalendarEventType `gorm:"column:event_type;not null"`
	Date             time.Time               `gorm:"column:date;not null;index"`
	EndDate          *time.Time              `gorm:"column:end_date"`
	AllDay           bool                    `gorm:"column:all_day;not null;default:false"`
	RelatedID        *uuid.UUID              `gorm:"column:related_id;type:uuid"`
	NotificationSent bool                    `gorm:"column:notification_sent;not null;default:false"`
	CreatedAt        time.Time               `gorm:"column:created_at;autoCreateTime"`
}
