package jobs

import (
	"log"
	"time"

	"cleaning-service-server/database"
	"cleaning-service-server/models"
)

// ResetTokenCleanupJob purges expired password reset tokens so the table
// never accumulates stale entries
type ResetTokenCleanupJob struct {
	stopChan chan bool
}

// NewResetTokenCleanupJob creates a new cleanup job
func NewResetTokenCleanupJob() *ResetTokenCleanupJob {
	return &ResetTokenCleanupJob{
		stopChan: make(chan bool),
	}
}

// Start begins the cleanup job
func (j *ResetTokenCleanupJob) Start() {
	go j.run()
	log.Println("🚀 Reset token cleanup job started")
}

// Stop stops the cleanup job
func (j *ResetTokenCleanupJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Reset token cleanup job stopped")
}

// run executes the cleanup loop
func (j *ResetTokenCleanupJob) run() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.purgeExpiredTokens()
		case <-j.stopChan:
			return
		}
	}
}

// purgeExpiredTokens deletes reset tokens past their validity window
func (j *ResetTokenCleanupJob) purgeExpiredTokens() {
	result := database.DB.Where("expires_at <= ?", time.Now()).Delete(&models.PasswordReset{})
	if result.Error != nil {
		log.Printf("❌ Error purging expired reset tokens: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("⏰ Purged %d expired reset tokens", result.RowsAffected)
	}
}
