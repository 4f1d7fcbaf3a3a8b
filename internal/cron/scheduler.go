package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pmhub/mentor-back/internal/store"
)

// Every Saturday at midnight, matching the front desk's weekly signup cycle.
const weeklySpec = "0 0 * * 6"

// StartJobs schedules the weekly maintenance run: restore every mentor to
// available and purge the appointment book. A failed run is logged and picked
// up again the following week.
func StartJobs(st *store.Store) (*cron.Cron, error) {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		return nil, err
	}

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(weeklySpec, func() {
		log.Println("Running weekly maintenance tasks")

		if err := st.ResetWeek(context.Background()); err != nil {
			log.Println("Weekly reset failed:", err)
			return
		}
		log.Println("Mentor availability restored and appointments purged")
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
