// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - republishes accepted-item events whose first publish
// failed and which were parked in the outbox.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	relay := jobs.NewOutboxRelayJob(relayHandler, "*/5 * * * * *", 50, logger)
//	jobManager := jobs.NewJobManager(relay)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules carry a seconds field. Overlapping runs of the same job are
// skipped.
//
// # Error Handling
//
// - A failed relay pass is logged and retried on the next tick
// - Per-message publish failures are recorded on the outbox row by the handler
// - Failed job starts will stop any already running jobs
package jobs
