package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-gridderiv/fft2"
	"github.com/cwbudde/algo-gridderiv/measure/regparam"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Targets, 4)
	require.Equal(t, 0.83, cfg.Targets[2].Value)
	require.Equal(t, regparam.Window{Lower: 0.80, Upper: 0.95}, cfg.Targets[3].Window)

	alphas, err := cfg.Sweep.Alphas()
	require.NoError(t, err)
	require.Len(t, alphas, 41)
	require.InDelta(t, 1e-6, alphas[0], 1e-18)
	require.InDelta(t, 1e14, alphas[40], 1e2)
}

func TestConfigJSONRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = fft2.NameGonum
	cfg.Workers = 3

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	path := writeConfig(t, "full.json", string(data))
	got, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "partial.json", `{"backend": "gonum", "sweep": {"start": -2, "stop": 4, "step": 1}}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, fft2.NameGonum, cfg.Backend)
	require.Equal(t, Sweep{Start: -2, Stop: 4, Step: 1}, cfg.Sweep)
	require.Equal(t, DefaultConfig().Targets, cfg.Targets)

	path = writeConfig(t, "targets.json", `{"targets": [{"value": 0.6, "window": {"lower": 0.5, "upper": 0.7}}]}`)
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, []regparam.Target{{Value: 0.6, Window: regparam.Window{Lower: 0.5, Upper: 0.7}}}, cfg.Targets)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "cfg.yaml", `{}`))
	require.ErrorContains(t, err, ".json extension")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "broken.json", `{"sweep": `))
	require.ErrorContains(t, err, "failed to parse")

	_, err = LoadConfig(writeConfig(t, "bad.json", `{"backend": "fftw"}`))
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, fft2.ErrUnknownBackend)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		is     error
	}{
		{"no targets", func(c *Config) { c.Targets = nil }, ErrInvalidConfig},
		{"zero step", func(c *Config) { c.Sweep.Step = 0 }, ErrInvalidConfig},
		{"reversed sweep", func(c *Config) { c.Sweep.Start, c.Sweep.Stop = 5, -5 }, ErrInvalidConfig},
		{"target out of range", func(c *Config) { c.Targets[0].Value = 1 }, regparam.ErrInvalidTarget},
		{"reversed window", func(c *Config) { c.Targets[1].Window = regparam.Window{Lower: 0.8, Upper: 0.6} }, regparam.ErrInvalidWindow},
		{"negative workers", func(c *Config) { c.Workers = -1 }, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tt.is)
		})
	}
}
