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

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug", FileConfig{}).GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("not-a-level", FileConfig{}).GetLevel())
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := New("info", FileConfig{Path: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})

	log.WithField("facility_id", "f-1").Info("Facility created successfully")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "Facility created successfully", entry["msg"])
	assert.Equal(t, "f-1", entry["facility_id"])
}
