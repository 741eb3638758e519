package stream

import (
	"errors"
	"fmt"
	"math"

	"github.com/matt-g-everett/starfall/util"
)

// Outputs accepted by Config.Output.
const (
	OutputWindow   = "window"
	OutputTerminal = "terminal"
	OutputHeadless = "headless"
)

// ErrEmptyPool is returned when no drawing handles are configured.
var ErrEmptyPool = errors.New("pool size must be at least 1")

type Config struct {
	Seed     int64  `yaml:"seed"`
	FrameMs  int    `yaml:"frameMs"`
	Output   string `yaml:"output"`
	Snapshot string `yaml:"snapshot"`
	Log      string `yaml:"log"`

	Canvas struct {
		Width      int    `yaml:"width"`
		Height     int    `yaml:"height"`
		Background string `yaml:"background"`
	} `yaml:"canvas"`

	Stars struct {
		Min           int     `yaml:"min"`
		Max           int     `yaml:"max"`
		Margin        int     `yaml:"margin"`
		FlickerChance float64 `yaml:"flickerChance"`
		FlickerMin    int     `yaml:"flickerMin"`
		FlickerMax    int     `yaml:"flickerMax"`
	} `yaml:"stars"`

	Meteors struct {
		Min           int     `yaml:"min"`
		Max           int     `yaml:"max"`
		LengthMin     int     `yaml:"lengthMin"`
		LengthMax     int     `yaml:"lengthMax"`
		StepMin       int     `yaml:"stepMin"`
		StepMax       int     `yaml:"stepMax"`
		DelayMin      int     `yaml:"delayMin"`
		DelayMax      int     `yaml:"delayMax"`
		Angle         float64 `yaml:"angle"`
		AngleJitter   float64 `yaml:"angleJitter"`
		HeadDot       float64 `yaml:"headDot"`
		MaxWidth      float64 `yaml:"maxWidth"`
		TailExponent  float64 `yaml:"tailExponent"`
		HeatThreshold float64 `yaml:"heatThreshold"`
		HeatMix       float64 `yaml:"heatMix"`
		HeatEasing    string  `yaml:"heatEasing"`
	} `yaml:"meteors"`

	Pool struct {
		Size int `yaml:"size"`
	} `yaml:"pool"`

	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"mqtt"`

	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() Config {
	var c Config
	c.FrameMs = 30
	c.Output = OutputWindow

	c.Canvas.Width = 800
	c.Canvas.Height = 600
	c.Canvas.Background = "#000000"

	c.Stars.Min = 100
	c.Stars.Max = 150
	c.Stars.Margin = 10
	c.Stars.FlickerChance = 0.02
	c.Stars.FlickerMin = 1
	c.Stars.FlickerMax = 3

	c.Meteors.Min = 8
	c.Meteors.Max = 16
	c.Meteors.LengthMin = 18
	c.Meteors.LengthMax = 40
	c.Meteors.StepMin = 10
	c.Meteors.StepMax = 24
	c.Meteors.DelayMin = 0
	c.Meteors.DelayMax = 40
	c.Meteors.Angle = 315
	c.Meteors.AngleJitter = 14
	c.Meteors.HeadDot = 6
	c.Meteors.MaxWidth = 6
	c.Meteors.TailExponent = 1.3
	c.Meteors.HeatThreshold = 0.75
	c.Meteors.HeatMix = 0.6
	c.Meteors.HeatEasing = "linear"

	c.Pool.Size = 6

	c.Mqtt.Topics.Stream = "home/starfall/stream"

	return c
}

// Validate reports configuration errors that would otherwise surface at runtime.
func (c Config) Validate() error {
	if c.Pool.Size < 1 {
		return ErrEmptyPool
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.FrameMs <= 0 {
		return fmt.Errorf("frameMs must be positive, got %d", c.FrameMs)
	}
	if _, err := HexToRGB(c.Canvas.Background); err != nil {
		return fmt.Errorf("canvas background: %w", err)
	}

	switch c.Output {
	case OutputWindow, OutputTerminal, OutputHeadless:
	default:
		return fmt.Errorf("unknown output %q", c.Output)
	}

	ranges := []struct {
		name     string
		min, max int
	}{
		{"stars", c.Stars.Min, c.Stars.Max},
		{"stars.flicker", c.Stars.FlickerMin, c.Stars.FlickerMax},
		{"meteors", c.Meteors.Min, c.Meteors.Max},
		{"meteors.length", c.Meteors.LengthMin, c.Meteors.LengthMax},
		{"meteors.step", c.Meteors.StepMin, c.Meteors.StepMax},
		{"meteors.delay", c.Meteors.DelayMin, c.Meteors.DelayMax},
	}
	for _, r := range ranges {
		if r.min < 0 || r.max < r.min {
			return fmt.Errorf("%s range [%d,%d] is invalid", r.name, r.min, r.max)
		}
	}
	if c.Meteors.LengthMin < 1 {
		return fmt.Errorf("meteors.lengthMin must be at least 1, got %d", c.Meteors.LengthMin)
	}
	if c.Stars.FlickerChance < 0 || c.Stars.FlickerChance > 1 {
		return fmt.Errorf("stars.flickerChance must be in [0,1], got %f", c.Stars.FlickerChance)
	}
	if c.Meteors.HeatThreshold < 0 || c.Meteors.HeatThreshold >= 1 {
		return fmt.Errorf("meteors.heatThreshold must be in [0,1), got %f", c.Meteors.HeatThreshold)
	}
	if c.Meteors.TailExponent <= 0 {
		return fmt.Errorf("meteors.tailExponent must be positive, got %f", c.Meteors.TailExponent)
	}
	if c.Meteors.MaxWidth < 1 {
		return fmt.Errorf("meteors.maxWidth must be at least 1, got %f", c.Meteors.MaxWidth)
	}
	if c.Meteors.HeadDot < 0 {
		return fmt.Errorf("meteors.headDot must not be negative, got %f", c.Meteors.HeadDot)
	}
	if _, err := util.Easing(c.Meteors.HeatEasing); err != nil {
		return fmt.Errorf("meteors.heatEasing: %w", err)
	}

	if c.Mqtt.URL != "" {
		pixels := c.Mqtt.Width * c.Mqtt.Height
		if c.Mqtt.Width <= 0 || c.Mqtt.Height <= 0 || pixels > math.MaxUint16 {
			return fmt.Errorf("mqtt matrix %dx%d must be positive and at most %d pixels",
				c.Mqtt.Width, c.Mqtt.Height, math.MaxUint16)
		}
	}

	return nil
}
