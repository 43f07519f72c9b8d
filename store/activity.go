package store

import (
	"context"
	"log"

	"belajaradmin/models"
)

// LogActivity appends one line to the dashboard activity feed. Feed writes
// are best effort; a failure is logged and never fails the admin operation.
func LogActivity(actor, action string) {
	if Activities == nil {
		return
	}
	activity := models.Activity{Actor: actor, Action: action}
	if err := Activities.Create(context.Background(), &activity); err != nil {
		log.Printf("Error recording activity: %v", err)
	}
}
