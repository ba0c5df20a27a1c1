// Package model holds the GORM persistence structs. Each mirrors one table and
// is mapped to and from domain entities by the postgres repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. AdminID is set only for delivery personnel.
type UserModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(100);not null"`
	CPF       string     `gorm:"column:cpf;type:varchar(11);uniqueIndex;not null"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string     `gorm:"type:varchar(255);not null"`
	Role      string     `gorm:"type:varchar(20);not null;index"`
	Latitude  float64    `gorm:"type:decimal(10,8);not null"`
	Longitude float64    `gorm:"type:decimal(11,8);not null"`
	AdminID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
