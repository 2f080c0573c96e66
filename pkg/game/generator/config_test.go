package generator

import (
	"math/rand"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidate_Rejects(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero min size":       func(c *Config) { c.MinSize = 0 },
		"max below min":       func(c *Config) { c.MaxSize = c.MinSize - 2 },
		"negative path size":  func(c *Config) { c.MinPathSize = -1 },
		"zero depth":          func(c *Config) { c.Depth = 0 },
		"spread above one":    func(c *Config) { c.SpreadChance = 1.5 },
		"continue below zero": func(c *Config) { c.ContinueDirectionChance = -0.1 },
		"negative width":      func(c *Config) { c.MaxWidth = -1 },
		"zero attempts":       func(c *Config) { c.MaxAttempts = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
			if _, err := New(cfg, rand.New(rand.NewSource(1))); err == nil {
				t.Error("New() accepted an invalid config")
			}
		})
	}
}

func TestNew_NilSource(t *testing.T) {
	if _, err := New(DefaultConfig(), nil); err == nil {
		t.Error("New(cfg, nil) err = nil, want error")
	}
}
