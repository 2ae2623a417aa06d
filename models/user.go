package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID               string     `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"not null" json:"name"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Role             Role       `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	ResetToken       *string    `gorm:"index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	Cart             Cart       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders           []Order    `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
