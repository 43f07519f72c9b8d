package utils

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"belajaradmin/config"
	"belajaradmin/store"
)

// InitializeMaintenanceScheduler starts the daily housekeeping job: purge
// stale cache entries and prune old activity rows. It never touches
// subscription status; that is owned by the payment flow.
func InitializeMaintenanceScheduler() *cron.Cron {
	log.Println("[MAINTENANCE] Initializing maintenance scheduler...")

	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.MaintenanceSpec, RunMaintenance); err != nil {
		log.Printf("[MAINTENANCE] Invalid cron spec %q: %v", config.AppConfig.MaintenanceSpec, err)
		return c
	}

	c.Start()
	log.Printf("[MAINTENANCE] Scheduler started with spec %q", config.AppConfig.MaintenanceSpec)
	return c
}

// RunMaintenance performs one housekeeping pass.
func RunMaintenance() {
	if store.Cache != nil {
		removed := store.Cache.Purge()
		log.Printf("[MAINTENANCE] Purged %d cache entries", removed)
	}

	pruneActivities()
}

func pruneActivities() {
	if store.Activities == nil {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.ActivityKeepDays)

	activities, err := store.Activities.List(context.Background(), nil)
	if err != nil {
		log.Printf("[MAINTENANCE] Error listing activities: %v", err)
		return
	}

	pruned := 0
	for _, a := range activities {
		if a.CreatedAt.Before(cutoff) {
			if err := store.Activities.Delete(context.Background(), a.ID); err == nil {
				pruned++
			}
		}
	}

	if pruned > 0 {
		log.Printf("[MAINTENANCE] Pruned %d activity rows older than %d days", pruned, config.AppConfig.ActivityKeepDays)
	}
}
