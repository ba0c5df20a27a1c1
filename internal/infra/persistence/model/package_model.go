package model

import (
	"time"

	"github.com/google/uuid"
)

// PackageModel mirrors the 'packages' table. The attachment columns are either
// all set or all null. DeletedAt is a plain column: soft deletion is driven by
// IsDeleted, not by GORM's DeletedAt scope.
type PackageModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeliveryPersonID  *uuid.UUID `gorm:"type:uuid;index"`
	ProductQuantity   int        `gorm:"not null;check:product_quantity > 0"`
	Status            string     `gorm:"type:varchar(20);not null;index"`
	Latitude          float64    `gorm:"type:decimal(10,8);not null"`
	Longitude         float64    `gorm:"type:decimal(11,8);not null"`
	FileName          *string    `gorm:"type:varchar(255);index"`
	FileType          *string    `gorm:"type:varchar(10)"`
	FileBody          []byte     `gorm:"type:bytea"`
	CreatedAt         time.Time  `gorm:"index"`
	DeliveryAt        *time.Time
	AvailablePickupAt *time.Time
	PickupAt          *time.Time
	ReturnedAt        *time.Time
	IsDeleted         bool `gorm:"not null;default:false;index"`
	DeletedAt         *time.Time
}

// TableName explicitly sets the table name for GORM.
func (PackageModel) TableName() string {
	return "packages"
}
