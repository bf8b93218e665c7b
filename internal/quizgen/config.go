package quizgen

import "time"

// Config controls generation and caching behavior.
type Config struct {
	// MaxTokens is the token budget for one batch response.
	MaxTokens int

	// Temperature for question generation.
	Temperature float64

	// Timeout bounds one remote generation call when the caller's
	// context carries no deadline of its own.
	Timeout time.Duration

	// BatchCacheTTL is how long a cached question batch stays fresh.
	BatchCacheTTL time.Duration

	// BatchCacheSize caps the number of cached topic+difficulty batches.
	BatchCacheSize int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      2000,
		Temperature:    0.8,
		Timeout:        30 * time.Second,
		BatchCacheTTL:  time.Hour,
		BatchCacheSize: 50,
	}
}
