package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-screener/internal/config"
)

func testVocabulary(t *testing.T) (*config.Vocabulary, *config.Patterns) {
	t.Helper()

	vocab, err := config.DefaultVocabulary()
	require.NoError(t, err)

	patterns, err := vocab.Compile()
	require.NoError(t, err)

	return vocab, patterns
}

// tickingClock returns a clock that advances one second per call.
func tickingClock() func() time.Time {
	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		at = at.Add(time.Second)
		return at
	}
}
