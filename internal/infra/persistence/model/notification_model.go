package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// NotificationModel mirrors the 'notifications' table, an append-only log of sent e-mails.
type NotificationModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Emails    pq.StringArray `gorm:"type:text[];not null"`
	Title     string         `gorm:"type:varchar(255);not null;index"`
	Content   string         `gorm:"type:text;not null"`
	AdminID   *uuid.UUID     `gorm:"type:uuid;index"`
	CreatedAt time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&PackageModel{},
		&NotificationModel{},
	}
}
