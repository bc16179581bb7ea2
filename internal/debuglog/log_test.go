package debuglog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"DEBUG", LevelDebug},
		{"debug", LevelDebug},
		{" info ", LevelInfo},
		{"WARNING", LevelWarn},
		{"error", LevelError},
		{"off", LevelOff},
		{"none", LevelOff},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLogLevel(tt.input), "input %q", tt.input)
		assert.NotEqual(t, "UNKNOWN", tt.expected.String())
	}
}

func TestSetupFiltersByLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "test.log")

	require.NoError(t, Setup(LevelInfo, logPath))
	Debugf("debug message")
	Infof("info message")
	WithFields(map[string]interface{}{"page": 2, "component": "nav"}).Warnf("moved")
	require.NoError(t, Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	out := string(content)
	assert.NotContains(t, out, "debug message")
	assert.Contains(t, out, "[INFO] info message")
	assert.Contains(t, out, "[WARN] moved [component=nav page=2]")
}

func TestSetupOffWritesNothing(t *testing.T) {
	require.NoError(t, Setup(LevelOff, ""))
	assert.Equal(t, LevelOff, GetLevel())
	Errorf("dropped")
	assert.NoError(t, Close())
}

func TestSetLevel(t *testing.T) {
	SetLevel(LevelError)
	assert.Equal(t, LevelError, GetLevel())
	SetLevel(LevelOff)
}
