package jobs

import (
	"context"
	"log/slog"

	"mozdelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ToastExpirySchedule fires every second, the resolution of the toast lifetime.
const ToastExpirySchedule = "* * * * * *"

// ToastExpiryJob clears the session toast once its lifetime is over.
type ToastExpiryJob struct {
	handler commands.DismissExpiredToastCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewToastExpiryJob(handler commands.DismissExpiredToastCommandHandler, logger *slog.Logger) *ToastExpiryJob {
	return &ToastExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "toast_expiry_job"),
	}
}

// Start schedules the job and returns immediately.
func (j *ToastExpiryJob) Start() error {
	_, err := j.cron.AddFunc(ToastExpirySchedule, func() {
		ctx := context.Background()
		if j.handler.Handle(ctx) {
			j.logger.DebugContext(ctx, "Toast expired and was dismissed")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Toast expiry job started (running every second)")
	return nil
}

// Stop waits for a running tick to finish.
func (j *ToastExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Toast expiry job stopped")
}
