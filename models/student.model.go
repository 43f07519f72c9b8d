package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubStatus enum values
const (
	SubActive  = "active"
	SubExpired = "expired"
	SubPastDue = "past_due"
	SubNone    = "none"
)

// Student is a child account owned by a Parent. Subscription status is set
// by the payment flow; nothing in this service transitions it automatically.
type Student struct {
	gorm.Model
	ParentID    uint   `json:"parentId" gorm:"index;not null"`
	Username    string `json:"username" gorm:"unique;not null"`
	DisplayName string `json:"displayName" gorm:"not null"`
	Grade       int    `json:"grade" gorm:"not null"`
	SchoolName  string `json:"schoolName" gorm:"default:''"`

	// Gamification
	XPTotal        int                         `json:"xpTotal" gorm:"default:0"`
	Level          int                         `json:"level" gorm:"default:1"`
	Coins          int                         `json:"coins" gorm:"default:0"`
	AvatarEquipped datatypes.JSONType[map[string]uint] `json:"avatarEquipped"` // slot -> shop item id

	// Per-child subscription
	SubPlanID     *uint      `json:"subPlanId"`
	SubStatus     string     `json:"subStatus" gorm:"type:varchar(20);default:'none'"`
	SubValidUntil *time.Time `json:"subValidUntil"`

	IsDeleted bool `json:"isDeleted" gorm:"default:false"`
}

func (s Student) EntityID() uint { return s.ID }
