// Package catalogsync keeps the local catalog in step with the marketplace feed.
//
// A run is a fresh Pipeline taken through four stages:
//
//	Load                fetch the live feed, keep desktop and laptop entries
//	Transform           hydrate full listings in batches of at most 25 ids
//	AddNew              insert offers not seen before, never refresh old ones
//	UpdateAvailability  flip sold-out flags to match the feed, behind guards
//
// Service coalesces concurrent triggers into one run and keeps the last
// RunReport. Scheduler repeats runs on an interval. Snapshots of the raw feed
// and listings can be archived to object storage per run.
//
// Routes:
//
//	GET  /sync/status  last run report
//	POST /sync/run     run now
package catalogsync
