package models

import "gorm.io/gorm"

// Activity is one line of the dashboard activity feed. Rows older than the
// configured retention are pruned by the maintenance job.
type Activity struct {
	gorm.Model
	Actor  string `json:"user" gorm:"not null"`
	Action string `json:"action" gorm:"not null"`
}

func (a Activity) EntityID() uint { return a.ID }
