package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Parent is a guardian account. ChildrenIDs is the authoritative, ordered
// list of the parent's students; deleting a parent never cascades.
type Parent struct {
	gorm.Model
	Email       string                    `json:"email" gorm:"unique;not null"`
	FullName    string                    `json:"fullName" gorm:"not null"`
	Phone       string                    `json:"phone" gorm:"default:''"`
	ChildrenIDs datatypes.JSONSlice[uint] `json:"childrenIds"`
	IsDeleted   bool                      `json:"isDeleted" gorm:"default:false"`
}

func (p Parent) EntityID() uint { return p.ID }
