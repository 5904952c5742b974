// Package hud draws the speed readout, bonus bar and bhop window indicator
// of one character on a terminal.
package hud

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
)

const (
	UnitsMetric = "m/s"
	UnitsKPH    = "km/h"
)

type Config struct {
	Units       string  `yaml:"units"`
	BarMaxSpeed float64 `yaml:"bar_max_speed"`
	// Smoothing is the angular frequency of the readout spring.
	Smoothing float64 `yaml:"smoothing"`
}

func DefaultConfig() Config {
	return Config{Units: UnitsMetric, BarMaxSpeed: 12, Smoothing: 6}
}

func (c Config) Normalized() Config {
	d := DefaultConfig()
	if c.Units != UnitsMetric && c.Units != UnitsKPH {
		c.Units = d.Units
	}
	if !(c.BarMaxSpeed > 0) || math.IsInf(c.BarMaxSpeed, 0) {
		c.BarMaxSpeed = d.BarMaxSpeed
	}
	if !(c.Smoothing > 0) || math.IsInf(c.Smoothing, 0) {
		c.Smoothing = d.Smoothing
	}
	return c
}

// Meter is a critically damped speed readout in display units.
type Meter struct {
	spring harmonica.Spring
	scale  float64
	units  string
	pos    float64
	vel    float64
}

// NewMeter builds a readout that is updated fps times a second.
func NewMeter(cfg Config, fps int) *Meter {
	cfg = cfg.Normalized()
	if fps < 1 {
		fps = 60
	}
	scale := 1.0
	if cfg.Units == UnitsKPH {
		scale = 3.6
	}
	return &Meter{
		spring: harmonica.NewSpring(harmonica.FPS(fps), cfg.Smoothing, 1),
		scale:  scale,
		units:  cfg.Units,
	}
}

// Update moves the readout one tick toward speed (m/s) and returns it.
func (m *Meter) Update(speed float64) float64 {
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		speed = 0
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, speed*m.scale)
	return m.pos
}

func (m *Meter) Value() float64 {
	return m.pos
}

func (m *Meter) Text() string {
	return fmt.Sprintf("%5.1f %s", math.Max(0, m.pos), m.units)
}

// Bar renders value/max as a fixed-width gauge.
func Bar(value, max float64, width int) string {
	if width <= 0 {
		return ""
	}
	frac := 0.0
	if max > 0 && !math.IsNaN(value) {
		frac = math.Min(1, math.Max(0, value/max))
	}
	filled := int(math.Round(frac * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
