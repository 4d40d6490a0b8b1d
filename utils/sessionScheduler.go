package utils

import (
	"log"
	"time"

	"shehub/database"
	"shehub/models"

	"github.com/robfig/cron/v3"
)

// InitializeSessionScheduler sets up the mentorship session reminder scheduler
func InitializeSessionScheduler() *cron.Cron {
	log.Println("[SESSION-SCHEDULER] Initializing session reminder scheduler...")

	c := cron.New()

	// Run daily at 9 AM to remind about sessions within the next 24h
	c.AddFunc("0 9 * * *", func() {
		log.Println("[SESSION-SCHEDULER] Running daily session reminder check...")
		ProcessUpcomingSessions()
	})

	c.Start()
	log.Println("[SESSION-SCHEDULER] Scheduler started - runs daily at 9 AM")
	return c
}

// ProcessUpcomingSessions sends reminder emails to both parties of
// mentorship sessions scheduled within the next 24 hours.
func ProcessUpcomingSessions() {
	db := database.Database.Db
	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)

	var upcoming []models.Mentorship
	if err := db.
		Where("status = ? AND reminder_sent = false AND scheduled_date IS NOT NULL", models.MentorshipAccepted).
		Where("scheduled_date BETWEEN ? AND ?", now, tomorrow).
		Preload("Mentee").Preload("Mentor").
		Find(&upcoming).Error; err != nil {
		log.Printf("[SESSION-SCHEDULER] Error fetching upcoming sessions: %v", err)
		return
	}

	log.Printf("[SESSION-SCHEDULER] Found %d sessions in the next 24h", len(upcoming))

	for _, m := range upcoming {
		when := *m.ScheduledDate

		if err := SendSessionReminderEmail(m.Mentee.Email, m.Mentee.Name, m.Mentor.Name, when); err != nil {
			log.Printf("[SESSION-SCHEDULER] Error emailing mentee %d: %v", m.MenteeID, err)
			continue
		}
		if err := SendSessionReminderEmail(m.Mentor.Email, m.Mentor.Name, m.Mentee.Name, when); err != nil {
			log.Printf("[SESSION-SCHEDULER] Error emailing mentor %d: %v", m.MentorID, err)
			continue
		}

		if err := db.Model(&models.Mentorship{}).Where("id = ?", m.ID).Update("reminder_sent", true).Error; err != nil {
			log.Printf("[SESSION-SCHEDULER] Error marking reminder sent for %d: %v", m.ID, err)
		}
	}
}
