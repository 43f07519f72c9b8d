package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question type enum values
const (
	QuestionMCQ    = "mcq"
	QuestionFillIn = "fill_in"
)

// QuestionContent is the renderable body of a question.
type QuestionContent struct {
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
	LaTeX string `json:"latex,omitempty"`
}

// QuestionOption is one MCQ choice. Exactly one option per mcq question
// carries IsCorrect.
type QuestionOption struct {
	ID        string `json:"id"`
	Value     string `json:"value"`
	IsCorrect bool   `json:"isCorrect"`
}

type Question struct {
	gorm.Model
	TopicID       uint                                  `json:"topicId" gorm:"index;not null"`
	Difficulty    int                                   `json:"difficulty" gorm:"default:1"` // 1..3
	Type          string                                `json:"type" gorm:"type:varchar(20);not null"`
	Content       datatypes.JSONType[QuestionContent]   `json:"content"`
	Options       datatypes.JSONSlice[QuestionOption]   `json:"options"`
	CorrectAnswer string                                `json:"correctAnswer" gorm:"default:''"`
	Explanation   string                                `json:"explanation" gorm:"default:''"`
	IsDeleted     bool                                  `json:"isDeleted" gorm:"default:false"`
}

func (q Question) EntityID() uint { return q.ID }
