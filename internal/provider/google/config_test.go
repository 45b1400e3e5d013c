package google_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/lessongen/internal/provider/google"
)

func TestConfig_RequestTimeout(t *testing.T) {
	require.Equal(t, 60*time.Second, google.Config{}.RequestTimeout())
	require.Equal(t, 60*time.Second, google.Config{Timeout: -5}.RequestTimeout())
	require.Equal(t, 15*time.Second, google.Config{Timeout: 15}.RequestTimeout())
	require.Equal(t, 15*time.Second, google.Config{Timeout: 15}.CallBudget())
}
