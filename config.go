package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds one experiment's settings.
type Config struct {
	// Qubits is the register size n; the statevector has 2^n amplitudes.
	Qubits int `yaml:"qubits"`
	// Layers is how many layer-growth steps to sweep (1..Layers).
	Layers int `yaml:"layers"`
	// Budget caps cost-function evaluations per optimizer run.
	Budget int `yaml:"budget"`
	// Seed drives target sampling, initial angles, and optimizer restarts.
	Seed int64 `yaml:"seed"`
	// Workers bounds parallel cost evaluations inside the optimizer.
	// 1 keeps everything on the calling goroutine.
	Workers int `yaml:"workers"`
}

// Default returns the default configuration: the 4-qubit, 6-layer sweep.
func Default() Config {
	return Config{
		Qubits:  4,
		Layers:  6,
		Budget:  5000,
		Seed:    1,
		Workers: 1,
	}
}

// Validate reports the first nonsensical setting.
func (c Config) Validate() error {
	if c.Qubits < 1 {
		return fmt.Errorf("config: qubits must be at least 1, got %d", c.Qubits)
	}
	if c.Qubits > 20 {
		return fmt.Errorf("config: qubits must be at most 20 for dense simulation, got %d", c.Qubits)
	}
	if c.Layers < 1 {
		return fmt.Errorf("config: layers must be at least 1, got %d", c.Layers)
	}
	if c.Budget < 1 {
		return fmt.Errorf("config: budget must be at least 1, got %d", c.Budget)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// Load reads a YAML config file. Fields left out keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file when it exists and falls back to the
// defaults when it does not.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
