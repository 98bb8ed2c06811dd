// Package jobs provides scheduled background tasks for the order book.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RefreshJob - Runs every thirty seconds to re-read the order set,
// keeping the local snapshot cache warm and surfacing schedule changes
// made by other clients.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(store, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Suspension
//
// The refresh job can be suspended while a client edit is in flight and
// resumed afterwards, so a background refresh never races a pending form
// submission. Ticks that fire while suspended are skipped, not queued.
package jobs
