package marketplace

// MaxBatchSize is the most ids the getoffers endpoint accepts per call.
const MaxBatchSize = 25

// Config holds configuration for the marketplace API client.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://developer.woot.com"`
	// APIKey is sent in the x-api-key header.
	APIKey string `mapstructure:"api_key" default:""`
	// Feed is the named feed the sync worker reads.
	Feed string `mapstructure:"feed" default:"Computers"`
	// TimeoutSeconds bounds a single HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RequestsPerSecond paces calls against the daily quota. Zero disables pacing.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"2"`
	// Burst is the limiter bucket size.
	Burst int `mapstructure:"burst" default:"1"`
}
