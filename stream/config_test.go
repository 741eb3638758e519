package stream

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestConfigYamlOverridesDefaults(t *testing.T) {
	doc := `
seed: 9
output: terminal
pool:
  size: 2
meteors:
  heatEasing: out-quad
mqtt:
  url: tcp://localhost:1883
  width: 50
  height: 10
`
	config := DefaultConfig()
	if err := yaml.Unmarshal([]byte(doc), &config); err != nil {
		t.Fatal(err)
	}

	if config.Seed != 9 || config.Output != OutputTerminal || config.Pool.Size != 2 {
		t.Errorf("Expected overrides to apply, got %+v", config)
	}
	if config.Canvas.Width != 800 || config.Meteors.TailExponent != 1.3 {
		t.Error("Expected unspecified fields to keep their defaults")
	}
	if config.Mqtt.Topics.Stream != "home/starfall/stream" {
		t.Errorf("Expected default topic, got %q", config.Mqtt.Topics.Stream)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Expected config to validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"inverted star range", func(c *Config) { c.Stars.Min = 200 }},
		{"zero length", func(c *Config) { c.Meteors.LengthMin = 0 }},
		{"negative delay", func(c *Config) { c.Meteors.DelayMin = -1 }},
		{"bad canvas", func(c *Config) { c.Canvas.Width = 0 }},
		{"bad background", func(c *Config) { c.Canvas.Background = "#zzzzzz" }},
		{"unknown output", func(c *Config) { c.Output = "hologram" }},
		{"unknown easing", func(c *Config) { c.Meteors.HeatEasing = "wobble" }},
		{"flicker chance", func(c *Config) { c.Stars.FlickerChance = 1.5 }},
		{"heat threshold", func(c *Config) { c.Meteors.HeatThreshold = 1 }},
		{"frame pacing", func(c *Config) { c.FrameMs = 0 }},
		{"negative tail exponent", func(c *Config) { c.Meteors.TailExponent = -1 }},
		{"zero tail exponent", func(c *Config) { c.Meteors.TailExponent = 0 }},
		{"thin streak", func(c *Config) { c.Meteors.MaxWidth = 0.5 }},
		{"negative head dot", func(c *Config) { c.Meteors.HeadDot = -2 }},
		{"huge matrix", func(c *Config) {
			c.Mqtt.URL = "tcp://localhost:1883"
			c.Mqtt.Width = 800
			c.Mqtt.Height = 600
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			if err := c.Validate(); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}

	c := DefaultConfig()
	c.Pool.Size = 0
	if err := c.Validate(); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Expected ErrEmptyPool, got %v", err)
	}
}
