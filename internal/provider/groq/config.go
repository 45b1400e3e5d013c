package groq

import "time"

const defaultTimeout = 60 * time.Second

// Config contains Groq provider configuration.
// Groq serves an OpenAI-compatible API, so fields map to OpenAI SDK options:
//   - APIKey: Maps to option.WithAPIKey()
//   - BaseURL: Maps to option.WithBaseURL()
//   - Timeout: Maps to option.WithRequestTimeout() (in seconds, 60 when unset)
//   - MaxRetries: Maps to option.WithMaxRetries()
//   - RequestsPerSecond, Burst: client-side rate limit
type Config struct {
	APIKey            string  `env:"GROQ_API_KEY"`
	BaseURL           string  `env:"GROQ_BASE_URL"            envDefault:"https://api.groq.com/openai/v1"`
	Timeout           int     `env:"GROQ_TIMEOUT"             envDefault:"60"`
	MaxRetries        int     `env:"GROQ_MAX_RETRIES"         envDefault:"2"`
	RequestsPerSecond float64 `env:"GROQ_REQUESTS_PER_SECOND" envDefault:"5"`
	Burst             int     `env:"GROQ_BURST"               envDefault:"5"`
}

// RequestTimeout returns the deadline of a single HTTP attempt, 60s when unset.
func (c Config) RequestTimeout() time.Duration {
	if c.Timeout > 0 {
		return time.Duration(c.Timeout) * time.Second
	}
	return defaultTimeout
}

// CallBudget is the longest one Call may take, SDK retries included.
func (c Config) CallBudget() time.Duration {
	return c.RequestTimeout() * time.Duration(max(c.MaxRetries, 0)+1)
}
