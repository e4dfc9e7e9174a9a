package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"DEBUG":    logrus.DebugLevel,
		"INFO":     logrus.InfoLevel,
		"WARNING":  logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"CRITICAL": logrus.FatalLevel,
	}
	for raw, want := range tests {
		got, err := ParseLevel(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetupFile(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})

	path := filepath.Join(t.TempDir(), "app.log")
	closer, err := Setup("DEBUG", path)
	require.NoError(t, err)

	logrus.WithField("user_id", 1).Debug("hello")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.EqualValues(t, 1, entry["user_id"])
}

func TestSetupStdout(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})

	closer, err := Setup("warning", "")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	_, err = Setup("nope", "")
	assert.Error(t, err)
}
