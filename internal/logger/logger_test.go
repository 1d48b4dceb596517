package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_JSON(t *testing.T) {
	defer Configure("info", "text", os.Stderr)

	var buf bytes.Buffer
	Configure("debug", "JSON", &buf)
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Log.WithField("wave", 3).Debug("wave spawned")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "wave spawned", entry["msg"])
	assert.Equal(t, float64(3), entry["wave"])
}

func TestConfigure_BadLevelFallsBackToInfo(t *testing.T) {
	defer Configure("info", "text", os.Stderr)

	var buf bytes.Buffer
	Configure("loud", "text", &buf)
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())

	Log.Debug("hidden")
	assert.Empty(t, buf.String())
}
