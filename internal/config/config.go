package config

import (
	"fmt"
	"github.com/callebjorkell/led-demos/internal/ledstrip"
	"github.com/callebjorkell/led-demos/internal/powermate"
	"github.com/callebjorkell/led-demos/internal/trail"
	"gopkg.in/yaml.v3"
	"os"
)

const defaultPin = 18

type Config struct {
	Strip struct {
		Driver string `yaml:"driver"`
		Port   string `yaml:"port"`
		Pin    int    `yaml:"pin"`
	} `yaml:"strip"`
	Powermate struct {
		Device string `yaml:"device"`
		Grab   *bool  `yaml:"grab"`
	} `yaml:"powermate"`
	Trail struct {
		ColorStep      int     `yaml:"colorStep"`
		BrightnessStep float64 `yaml:"brightnessStep"`
		ScrollStep     float64 `yaml:"scrollStep"`
		MaxRate        float64 `yaml:"maxRate"`
	} `yaml:"trail"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	c, err := Parse(nil)
	if err != nil {
		panic(err)
	}
	return c
}

func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}
	return Parse(content)
}

// Parse reads a YAML configuration, validates it and fills in defaults for anything left out.
func Parse(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.Strip.Driver == "" {
		c.Strip.Driver = ledstrip.DriverAPA102
	}
	if !knownDriver(c.Strip.Driver) {
		return nil, fmt.Errorf("unknown strip driver %q, must be one of %v", c.Strip.Driver, ledstrip.Drivers)
	}
	if c.Strip.Pin < 0 {
		return nil, fmt.Errorf("strip pin cannot be negative")
	}
	if c.Strip.Pin == 0 {
		c.Strip.Pin = defaultPin
	}

	if c.Powermate.Device == "" {
		c.Powermate.Device = powermate.DefaultDevice
	}
	if c.Powermate.Grab == nil {
		grab := true
		c.Powermate.Grab = &grab
	}

	if c.Trail.ColorStep < 0 {
		return nil, fmt.Errorf("trail colorStep cannot be negative")
	}
	if c.Trail.BrightnessStep < 0 {
		return nil, fmt.Errorf("trail brightnessStep cannot be negative")
	}
	if c.Trail.ScrollStep < 0 {
		return nil, fmt.Errorf("trail scrollStep cannot be negative")
	}
	if c.Trail.MaxRate < 0 {
		return nil, fmt.Errorf("trail maxRate cannot be negative")
	}
	if c.Trail.ColorStep == 0 {
		c.Trail.ColorStep = trail.DefaultSteps.Color
	}
	if c.Trail.BrightnessStep == 0 {
		c.Trail.BrightnessStep = trail.DefaultSteps.Brightness
	}
	if c.Trail.ScrollStep == 0 {
		c.Trail.ScrollStep = trail.DefaultSteps.Scroll
	}
	if c.Trail.MaxRate == 0 {
		c.Trail.MaxRate = trail.DefaultSteps.MaxRate
	}

	return c, nil
}

func (c Config) Steps() trail.Steps {
	return trail.Steps{
		Color:      c.Trail.ColorStep,
		Brightness: c.Trail.BrightnessStep,
		Scroll:     c.Trail.ScrollStep,
		MaxRate:    c.Trail.MaxRate,
	}
}

func (c Config) GrabKnob() bool {
	return c.Powermate.Grab == nil || *c.Powermate.Grab
}

// StripOptions gets the options for opening a strip of count LEDs.
func (c Config) StripOptions(count int, brightness float64) ledstrip.Options {
	return ledstrip.Options{
		Driver:     c.Strip.Driver,
		Port:       c.Strip.Port,
		Pin:        c.Strip.Pin,
		Count:      count,
		Brightness: brightness,
	}
}

func knownDriver(name string) bool {
	for _, d := range ledstrip.Drivers {
		if d == name {
			return true
		}
	}
	return false
}
