package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubscriptionPlan is a purchasable access tier.
type SubscriptionPlan struct {
	gorm.Model
	Name          string                      `json:"name" gorm:"not null"`
	Slug          string                      `json:"slug" gorm:"index;not null"`
	Price         float64                     `json:"price" gorm:"not null;default:0"`
	OriginalPrice float64                     `json:"originalPrice" gorm:"default:0"`
	DurationDays  int                         `json:"durationDays" gorm:"not null"`
	Features      datatypes.JSONSlice[string] `json:"features"`
	IsActive      bool                        `json:"isActive" gorm:"default:true"`
	IsRecommended bool                        `json:"isRecommended" gorm:"default:false"`
	IsDeleted     bool                        `json:"isDeleted" gorm:"default:false"`
}

func (p SubscriptionPlan) EntityID() uint { return p.ID }
