package utils

import (
	"iiacademy/database"
	"iiacademy/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeResetCodeCleanup starts the hourly purge of password reset
// codes that are used or past their expiry. Codes are single-use and
// short-lived, so dead rows only accumulate.
func InitializeResetCodeCleanup() {
	c := cron.New()

	_, err := c.AddFunc("@hourly", PurgeDeadResetCodes)
	if err != nil {
		log.Printf("[RESET-CLEANUP] Failed to schedule job: %v", err)
		return
	}

	c.Start()
	log.Println("[RESET-CLEANUP] Scheduler started (hourly)")
}

// PurgeDeadResetCodes deletes reset codes that can no longer be redeemed.
func PurgeDeadResetCodes() {
	db := database.Database.Db

	result := db.Unscoped().
		Where("is_used = ? OR expires_at < ?", true, time.Now()).
		Delete(&models.PasswordResetCode{})

	if result.Error != nil {
		log.Printf("[RESET-CLEANUP] Error purging reset codes: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[RESET-CLEANUP] Purged %d dead reset codes", result.RowsAffected)
	}
}
