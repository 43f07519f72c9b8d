package models

import (
	"time"

	"gorm.io/gorm"
)

type Admin struct {
	gorm.Model
	Email     string     `json:"email" gorm:"unique;not null"`
	FullName  string     `json:"fullName" gorm:"default:''"`
	Password  string     `json:"-" gorm:"not null"`
	Role      string     `json:"role" gorm:"default:'ADMIN'"`
	IsActive  bool       `json:"isActive" gorm:"default:true"`
	LastLogin *time.Time `json:"lastLogin"`
	IsDeleted bool       `json:"isDeleted" gorm:"default:false"`
}

func (a Admin) EntityID() uint { return a.ID }
