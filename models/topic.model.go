package models

import "gorm.io/gorm"

// Subject enum values
const (
	SubjectMath    = "math"
	SubjectScience = "science"
	SubjectEnglish = "english"
)

// Topic is a curriculum unit. Slug is URL safe ([a-z0-9-]), derived from the
// name when the request carries none.
type Topic struct {
	gorm.Model
	Name       string `json:"name" gorm:"not null"`
	Slug       string `json:"slug" gorm:"index;not null"`
	Subject    string `json:"subject" gorm:"type:varchar(20);not null"`
	GradeLevel int    `json:"gradeLevel" gorm:"not null"`
	OrderIndex int    `json:"order" gorm:"default:0"`
	IconURL    string `json:"iconUrl" gorm:"default:''"`
	IsDeleted  bool   `json:"isDeleted" gorm:"default:false"`

	// Denormalized, filled on read paths; never persisted.
	QuestionCount int64 `json:"questionCount,omitempty" gorm:"-"`
}

func (t Topic) EntityID() uint { return t.ID }
