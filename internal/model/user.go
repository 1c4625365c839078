package model

import (
	"time"
)

type UserRole string

const (
	Member UserRole = "user"
	Admin  UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Username          string    `gorm:"size:100;unique;not null" json:"username"`
	Email             string    `gorm:"size:100;unique;not null" json:"email"`
	Password          string    `gorm:"size:100;not null" json:"-"`
	Role              UserRole  `gorm:"size:20;default:'user'" json:"role"`
	EmailVerified     bool      `gorm:"default:false" json:"emailVerified"`
	VerificationToken string    `gorm:"size:64;index" json:"-"`
	TokenExpiry       time.Time `json:"-"`
	LastLogin         time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == Admin
}
