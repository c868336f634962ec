package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-gridderiv/fft2"
	"github.com/cwbudde/algo-gridderiv/measure/regparam"
	"github.com/cwbudde/algo-gridderiv/measure/sfunc"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("pipeline: invalid configuration")

const maxConfigSize = 1 << 20

// Sweep describes the trial exponents start, start+step, ... stop. Trial
// values are 10^exponent.
type Sweep struct {
	Start float64 `json:"start"`
	Stop  float64 `json:"stop"`
	Step  float64 `json:"step"`
}

// Alphas returns the trial regularization parameters.
func (s Sweep) Alphas() ([]float64, error) {
	return sfunc.LogSweep(s.Start, s.Stop, s.Step)
}

// Config holds the pipeline parameters.
type Config struct {
	Sweep   Sweep             `json:"sweep"`
	Targets []regparam.Target `json:"targets"`
	// Backend names the FFT backend ("algofft" or "gonum"). Empty selects
	// the default.
	Backend string `json:"backend,omitempty"`
	// Workers bounds concurrent sweep evaluations. 0 uses GOMAXPROCS.
	Workers int `json:"workers,omitempty"`
}

// DefaultConfig returns the standard sweep of exponents -6 to 14 in steps
// of 0.5 and the four standard targets.
func DefaultConfig() Config {
	return Config{
		Sweep: Sweep{Start: -6, Stop: 14, Step: 0.5},
		Targets: []regparam.Target{
			{Value: 0.50, Window: regparam.Window{Lower: 0.40, Upper: 0.60}},
			{Value: 0.75, Window: regparam.Window{Lower: 0.60, Upper: 0.80}},
			{Value: 0.83, Window: regparam.Window{Lower: 0.70, Upper: 0.90}},
			{Value: 0.90, Window: regparam.Window{Lower: 0.80, Upper: 0.95}},
		},
		Backend: fft2.NameAlgoFFT,
	}
}

// Validate checks the sweep, every target, the backend name and the worker
// count.
func (c Config) Validate() error {
	if _, err := sfunc.Exponents(c.Sweep.Start, c.Sweep.Stop, c.Sweep.Step); err != nil {
		return fmt.Errorf("%w: sweep: %w", ErrInvalidConfig, err)
	}
	if len(c.Targets) == 0 {
		return fmt.Errorf("%w: no targets", ErrInvalidConfig)
	}
	for i, t := range c.Targets {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: targets[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	if _, err := fft2.ByName(c.Backend); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// LoadConfig reads a JSON config file. Fields omitted from the file keep
// their DefaultConfig values; a targets list, when present, replaces the
// default list as a whole.
func LoadConfig(path string) (Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return Config{}, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	defaults := cfg.Targets
	cfg.Targets = nil
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if cfg.Targets == nil {
		cfg.Targets = defaults
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
