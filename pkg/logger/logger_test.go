package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONFieldsAndContext(t *testing.T) {
	var buf bytes.Buffer
	log := New(DEBUG, true, &buf).WithContext("component", "test")

	log.Info("rating_submitted", "rating", 4, "model_id", "m1")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rating_submitted", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, float64(4), entry["rating"])
	assert.Equal(t, "m1", entry["model_id"])
}

func TestLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(WARN, false, &buf)

	log.Debug("hidden")
	log.Info("hidden_too")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_OddKeyvals(t *testing.T) {
	var buf bytes.Buffer
	New(INFO, true, &buf).Info("odd", "lonely")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "(missing)", entry["lonely"])
}

func TestInit_ReplacesDefault(t *testing.T) {
	var buf bytes.Buffer
	Init(INFO, false, &buf)
	t.Cleanup(func() { Init(INFO, false, nil) })

	Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "k=v")
}
