package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[LoadConfig] failed to read file")
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 80, "use_parallel": false, "frame_rate": 50000000, "seed": 7}`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Width = 80
	want.UseParallel = false
	want.FrameRate = 50 * time.Millisecond
	want.Seed = 7
	assert.Equal(t, want, config)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"width": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"random_density": 1.5}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "random_density")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "zero width", mutate: func(c *Config) { c.Width = 0 }, wantErr: true},
		{name: "negative height", mutate: func(c *Config) { c.Height = -3 }, wantErr: true},
		{name: "negative density", mutate: func(c *Config) { c.RandomDensity = -0.1 }, wantErr: true},
		{name: "full density", mutate: func(c *Config) { c.RandomDensity = 1 }},
		{name: "negative workers", mutate: func(c *Config) { c.Workers = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}
