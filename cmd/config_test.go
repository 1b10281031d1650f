package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()

	v := viper.New()
	setDefaults(v)
	if yaml != "" {
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	}
	return v
}

func TestDecodeConfigDefaults(t *testing.T) {
	config, err := decodeConfig(newTestViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "data/career_dataset_cleaned.csv", config.Dataset)
	assert.Equal(t, ":5000", config.Server.Address)
	assert.Equal(t, 10*time.Second, config.Server.ShutdownTimeout)
	assert.Equal(t, "gemini-2.5-flash", config.AI.Gemini.Model)
	assert.Equal(t, 3, config.AI.Gemini.MaxAttempts)
	assert.Equal(t, time.Second, config.AI.Gemini.BackoffUnit)
	assert.Equal(t, 200, config.AI.Gemini.MaxLogLength)
}

func TestDecodeConfigFromYAML(t *testing.T) {
	config, err := decodeConfig(newTestViper(t, `
dataset: careers.csv
server:
  address: 127.0.0.1:8080
ai:
  gemini:
    model: gemini-2.0-flash
    backoff-unit: 250ms
    requests-per-minute: 30
`))
	require.NoError(t, err)

	assert.Equal(t, "careers.csv", config.Dataset)
	assert.Equal(t, "127.0.0.1:8080", config.Server.Address)
	assert.Equal(t, "gemini-2.0-flash", config.AI.Gemini.Model)
	assert.Equal(t, 250*time.Millisecond, config.AI.Gemini.BackoffUnit)
	assert.Equal(t, 30, config.AI.Gemini.RequestsPerMinute)
	assert.Equal(t, 3, config.AI.Gemini.MaxAttempts)
}

func TestDecodeConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "zero attempts", yaml: "ai:\n  gemini:\n    max-attempts: 0\n"},
		{name: "negative pacing", yaml: "ai:\n  gemini:\n    requests-per-minute: -1\n"},
		{name: "empty address", yaml: "server:\n  address: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeConfig(newTestViper(t, tt.yaml))
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestNewCounselorWithoutKeyFile(t *testing.T) {
	cfg := &GeminiConfig{
		Model:      "gemini-2.5-flash",
		APIKeyFile: filepath.Join(t.TempDir(), "missing"),
	}

	counselor := newCounselor(t.Context(), cfg, zap.NewNop())

	assert.False(t, counselor.Enabled())
	assert.Equal(t, "Error: Gemini client is not initialized. Check API key configuration.", counselor.Chat(t.Context(), "hi"))
}

func TestResumeText(t *testing.T) {
	text, err := resumeText("", []string{"coding", "and", "reading"})
	require.NoError(t, err)
	assert.Equal(t, "coding and reading", text)

	_, err = resumeText("", nil)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "resume.md")
	require.NoError(t, os.WriteFile(path, []byte("# Nurse\npatient care"), 0o600))

	text, err = resumeText(path, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "patient care")
}
