package google

import "time"

const defaultTimeout = 60 * time.Second

// Config contains Google Gemini provider configuration.
//   - APIKey: Maps to genai.ClientConfig.APIKey
//   - BaseURL: Maps to genai.HTTPOptions.BaseURL (empty means the SDK default)
//   - Timeout: per-call deadline in seconds
//   - RequestsPerSecond, Burst: client-side rate limit
type Config struct {
	APIKey            string  `env:"GOOGLE_API_KEY"`
	BaseURL           string  `env:"GOOGLE_BASE_URL"`
	Timeout           int     `env:"GOOGLE_TIMEOUT"             envDefault:"60"`
	RequestsPerSecond float64 `env:"GOOGLE_REQUESTS_PER_SECOND" envDefault:"5"`
	Burst             int     `env:"GOOGLE_BURST"               envDefault:"5"`
}

// RequestTimeout returns the per-call deadline, 60s when unset.
func (c Config) RequestTimeout() time.Duration {
	if c.Timeout > 0 {
		return time.Duration(c.Timeout) * time.Second
	}
	return defaultTimeout
}

// CallBudget is the longest one Call may take. The adapter does not retry.
func (c Config) CallBudget() time.Duration {
	return c.RequestTimeout()
}
