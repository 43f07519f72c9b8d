package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudentInventory records an item a student owns. The item snapshot is
// denormalized so the row stays renderable after the shop item changes.
type StudentInventory struct {
	gorm.Model
	StudentID  uint                         `json:"studentId" gorm:"index;not null"`
	ItemID     uint                         `json:"itemId" gorm:"index;not null"`
	AcquiredAt time.Time                    `json:"acquiredAt" gorm:"not null"`
	Item       datatypes.JSONType[ShopItem] `json:"item"`
	IsDeleted  bool                         `json:"isDeleted" gorm:"default:false"`
}

func (si StudentInventory) EntityID() uint { return si.ID }
