// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// ToastExpiryJob runs every second and dismisses the session toast once it has been on
// screen for its full lifetime. A toast that is replaced or dismissed earlier is simply
// gone by the time the job looks.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(dismissExpiredHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
