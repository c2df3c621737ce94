// Package jobs provides scheduled background tasks for the ordering webhook.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// CartExpiryJob sweeps the session cart store on an "@every <interval>"
// schedule and drops in-progress orders idle for longer than the configured
// ttl. It is only created when CART_IDLE_TTL is positive.
//
// # Usage
//
//	expiry, err := jobs.NewCartExpiryJob(handler, 30*time.Minute, time.Minute, logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(expiry)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried at the next tick. Failed job starts
// stop any already running jobs.
package jobs
