// Package jobs runs the scheduled background work of the shipment service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// PushReceiptJob polls the push provider for delivery receipts of earlier sends
// and retires device tokens the provider reports as unregistered. The schedule
// comes from PUSH_RECEIPTS_SCHEDULE and defaults to every 30 seconds.
//
// # Usage
//
//	receiptJob, err := jobs.NewPushReceiptJob(pushChannel, "@every 30s", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	manager := jobs.NewJobManager(logger, receiptJob)
//	if err := manager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer manager.StopAll()
//
// A run that fails is logged and retried on the next tick. Runs never overlap:
// a tick that fires while the previous check is still in flight is skipped.
package jobs
