package logger_config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" warning "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
}

func TestNewJSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "json")

	l.Info("dropped")
	l.Warn("kept", "frame", 12)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.EqualValues(t, 12, rec["frame"])
}

func TestNewTextDefault(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "", "").Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestHelpersReportCallerSource(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger
	Logger = New(&buf, "debug", "json")
	t.Cleanup(func() { Logger = prev })

	Infof("level %d loaded", 2)

	var rec struct {
		Msg    string `json:"msg"`
		Source struct {
			File string `json:"file"`
		} `json:"source"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "level 2 loaded", rec.Msg)
	assert.Equal(t, "logger_config_test.go", filepath.Base(rec.Source.File))
}

func TestHelpersRespectLevel(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger
	Logger = New(&buf, "warn", "text")
	t.Cleanup(func() { Logger = prev })

	Debugf("hidden")
	Infof("hidden")
	Errorf("shown %s", "here")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown here")
}
