// Package marketplace is the HTTP client for the Woot developer API.
//
// It exposes the two calls the sync pipeline needs:
//
//   - GetLiveFeed: GET /feed/{name}, the minified list of live offers.
//   - GetFullRecords: POST /getoffers with a JSON array of at most MaxBatchSize ids,
//     returning full listings with their variants.
//
// Every request carries the x-api-key header and waits on a token bucket limiter
// so batch loops stay under the daily quota. Non-2xx responses surface as
// *StatusError and decode failures as wrapped errors; callers decide whether a
// failure is fatal.
//
// # Usage
//
//	client := marketplace.NewClient(cfg.Marketplace, logger)
//	entries, err := client.GetLiveFeed(ctx, cfg.Marketplace.Feed)
package marketplace
