package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name  string
		json  bool
		debug bool
	}{
		{"console info", false, false},
		{"json debug", true, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			log, err := New(tc.json, tc.debug)
			require.NoError(t, err)
			assert.Equal(t, tc.debug, log.Core().Enabled(-1))
		})
	}
}

func TestNewWithOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screener.log")

	log, err := New(true, false, path)
	require.NoError(t, err)
	log.Info("hello", zap.String("job_id", "abc"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"job_id":"abc"`)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
