package models

import "gorm.io/gorm"

// Shop item slot enum values
const (
	ItemHead       = "head"
	ItemOutfit     = "outfit"
	ItemBackground = "background"
)

// ShopItem is an avatar cosmetic purchasable with coins.
type ShopItem struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Type      string `json:"type" gorm:"type:varchar(20);not null"`
	CostCoins int    `json:"costCoins" gorm:"not null;default:0"`
	AssetURL  string `json:"assetUrl" gorm:"not null"` // absolute http(s) URL
	IsPremium bool   `json:"isPremium" gorm:"default:false"`
	IsDeleted bool   `json:"isDeleted" gorm:"default:false"`
}

func (i ShopItem) EntityID() uint { return i.ID }
