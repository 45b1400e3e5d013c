package groq_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/lessongen/internal/provider/groq"
)

func TestConfig_RequestTimeout(t *testing.T) {
	tests := []struct {
		name     string
		config   groq.Config
		timeout  time.Duration
		callWall time.Duration
	}{
		{name: "unset falls back to 60s", config: groq.Config{}, timeout: 60 * time.Second, callWall: 60 * time.Second},
		{name: "negative falls back to 60s", config: groq.Config{Timeout: -1, MaxRetries: 1}, timeout: 60 * time.Second, callWall: 120 * time.Second},
		{name: "configured", config: groq.Config{Timeout: 20, MaxRetries: 2}, timeout: 20 * time.Second, callWall: 60 * time.Second},
		{name: "negative retries count as none", config: groq.Config{Timeout: 10, MaxRetries: -3}, timeout: 10 * time.Second, callWall: 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.timeout, tt.config.RequestTimeout())
			require.Equal(t, tt.callWall, tt.config.CallBudget())
		})
	}
}
