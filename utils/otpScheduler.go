package utils

import (
	"academy/database"
	"academy/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[OTP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartOTPCleanupScheduler soft-deletes expired unused OTP records every
// 15 minutes so stale codes cannot pile up.
func StartOTPCleanupScheduler() {
	c := cron.New()

	_, err := c.AddFunc("*/15 * * * *", func() {
		result := database.Database.Db.Model(&models.OTP{}).
			Where("expires_at < ? AND is_used = ? AND is_deleted = ?", time.Now(), false, false).
			Update("is_deleted", true)
		if result.Error != nil {
			logScheduler("cleanup failed: " + result.Error.Error())
			return
		}
		if result.RowsAffected > 0 {
			logScheduler("expired OTPs cleaned up")
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule OTP cleanup: %v", err)
	}

	c.Start()
	logScheduler("started")
}
