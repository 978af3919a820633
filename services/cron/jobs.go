package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/mapspot/admin-api/model"
)

// AvailabilitySummary counts locations per availability state and writes
// the result to the cron job log. The states are derived the same way
// the read path derives them; nothing is persisted on the locations.
func (m *CronManager) AvailabilitySummary() {
	startedAt := time.Now()
	jobLog := model.CronJobLog{
		JobName:   "availability_summary",
		Status:    "started",
		StartedAt: startedAt,
	}
	if err := m.db.Create(&jobLog).Error; err != nil {
		log.Printf("availability_summary: failed to create job log: %v", err)
		return
	}

	var locations []model.Location
	if err := m.db.Find(&locations).Error; err != nil {
		m.completeJob(&jobLog, "failed", "", err)
		return
	}

	now := time.Now().UTC()
	counts := map[model.AvailabilityStatus]int{}
	for i := range locations {
		counts[model.AvailabilityOf(locations[i].IsActive, locations[i].EndDate, now)]++
	}

	message := fmt.Sprintf("inactive=%d available=%d taken=%d total=%d",
		counts[model.StatusInactive],
		counts[model.StatusAvailable],
		counts[model.StatusTaken],
		len(locations),
	)
	m.completeJob(&jobLog, "completed", message, nil)
	log.Printf("availability_summary: %s", message)
}

func (m *CronManager) completeJob(jobLog *model.CronJobLog, status, message string, jobErr error) {
	completedAt := time.Now()
	jobLog.Status = status
	jobLog.CompletedAt = &completedAt
	jobLog.Duration = int(completedAt.Sub(jobLog.StartedAt).Milliseconds())
	jobLog.Message = message
	if jobErr != nil {
		jobLog.ErrorMsg = jobErr.Error()
	}
	if err := m.db.Save(jobLog).Error; err != nil {
		log.Printf("%s: failed to update job log: %v", jobLog.JobName, err)
	}
}
