package jobs

import (
	"fmt"
	"log/slog"

	"mozdelivery/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	toastExpiryJob *ToastExpiryJob
}

func NewJobManager(
	dismissExpiredHandler commands.DismissExpiredToastCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		toastExpiryJob: NewToastExpiryJob(dismissExpiredHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.toastExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start toast expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.toastExpiryJob.Stop()
}
