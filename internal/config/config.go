// Package config provides YAML-based game configuration loading and
// difficulty presets for the paper plane game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// PaperPlaneConfig contains all configuration for the Paper Plane game.
type PaperPlaneConfig struct {
	World       WorldConfig       `yaml:"world"`
	Launch      PointConfig       `yaml:"launch"`
	Plane       SizeConfig        `yaml:"plane"`
	Target      TargetConfig      `yaml:"target"`
	Flight      FlightConfig      `yaml:"flight"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Interaction InteractionConfig `yaml:"interaction"`
}

// WorldConfig is the playfield size in pixels. The terminal grid is a
// scaled projection of it.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PointConfig is a position in playfield pixels.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SizeConfig is a width/height pair in playfield pixels.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TargetConfig places the monitor and its scoring circle.
// Offsets are measured from the right and bottom edges of the playfield.
type TargetConfig struct {
	MonitorWidth  float64 `yaml:"monitor_width"`
	MonitorHeight float64 `yaml:"monitor_height"`
	RightOffset   float64 `yaml:"right_offset"`
	BottomOffset  float64 `yaml:"bottom_offset"`
	Padding       float64 `yaml:"padding"` // Bezel thickness
	Size          float64 `yaml:"size"`    // Scoring circle diameter
	Scale         float64 `yaml:"scale"`   // Multiplier on Size, set by difficulty presets
}

// FlightConfig defines the drag model. Durations are in seconds.
type FlightConfig struct {
	Decay          float64 `yaml:"decay"`           // Per-frame velocity multiplier, (0,1)
	StopThreshold  float64 `yaml:"stop_threshold"`  // Settle once both axes are at or below this
	MoveTransition float64 `yaml:"move_transition"` // Sprite easing per frame
	ResetDuration  float64 `yaml:"reset_duration"`  // Return-to-launch animation
	MaxFrames      int     `yaml:"max_frames"`      // Safety cap on a single flight
}

// MoveTransitionDuration returns MoveTransition as a time.Duration.
func (f FlightConfig) MoveTransitionDuration() time.Duration {
	return secondsToDuration(f.MoveTransition)
}

// ResetDurationDuration returns ResetDuration as a time.Duration.
func (f FlightConfig) ResetDurationDuration() time.Duration {
	return secondsToDuration(f.ResetDuration)
}

// ScoringConfig defines awards. The two interaction modes historically award
// different amounts, so each has its own value.
type ScoringConfig struct {
	AwardRelease   int     `yaml:"award_release"`
	AwardFollow    int     `yaml:"award_follow"`
	InitialBest    int     `yaml:"initial_best"`
	PixelsPerMetre float64 `yaml:"pixels_per_metre"`
}

// Award returns the award for the given interaction mode.
func (s ScoringConfig) Award(mode string) int {
	if mode == ModeFollow {
		return s.AwardFollow
	}
	return s.AwardRelease
}

// Interaction modes.
const (
	ModeRelease = "release" // Drag the plane and let go
	ModeFollow  = "follow"  // Slingshot pull, re-simulated on every move
)

// Busy policies for a launch request that arrives while a flight is active.
const (
	BusyRestart = "restart"
	BusyReject  = "reject"
)

// InteractionConfig defines how pointer gestures become flights.
type InteractionConfig struct {
	Mode         string  `yaml:"mode"`
	BusyPolicy   string  `yaml:"busy_policy"`
	ReleaseGain  float64 `yaml:"release_gain"`  // Multiplier on gesture velocity (px/s) at release
	SampleWindow int     `yaml:"sample_window"` // Pointer samples used for gesture velocity
}

// Validate checks the configuration for values the simulation cannot run with.
func (c PaperPlaneConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Plane.Width <= 0 || c.Plane.Height <= 0 {
		errs = append(errs, fmt.Errorf("plane size must be positive, got %vx%v", c.Plane.Width, c.Plane.Height))
	}
	if c.Launch.X < 0 || c.Launch.X > c.World.Width || c.Launch.Y < 0 || c.Launch.Y > c.World.Height {
		errs = append(errs, fmt.Errorf("launch (%v, %v) is outside the world", c.Launch.X, c.Launch.Y))
	}
	if c.Target.Size <= 0 || c.Target.Scale <= 0 {
		errs = append(errs, errors.New("target size and scale must be positive"))
	}
	if c.Flight.Decay <= 0 || c.Flight.Decay >= 1 {
		errs = append(errs, fmt.Errorf("flight decay must be in (0, 1), got %v", c.Flight.Decay))
	}
	if c.Flight.StopThreshold <= 0 {
		errs = append(errs, fmt.Errorf("flight stop_threshold must be positive, got %v", c.Flight.StopThreshold))
	}
	if c.Flight.MaxFrames <= 0 {
		errs = append(errs, fmt.Errorf("flight max_frames must be positive, got %d", c.Flight.MaxFrames))
	}
	if c.Scoring.PixelsPerMetre <= 0 {
		errs = append(errs, fmt.Errorf("scoring pixels_per_metre must be positive, got %v", c.Scoring.PixelsPerMetre))
	}
	switch c.Interaction.Mode {
	case ModeRelease, ModeFollow:
	default:
		errs = append(errs, fmt.Errorf("interaction mode %q is not one of %q, %q", c.Interaction.Mode, ModeRelease, ModeFollow))
	}
	switch c.Interaction.BusyPolicy {
	case BusyRestart, BusyReject:
	default:
		errs = append(errs, fmt.Errorf("interaction busy_policy %q is not one of %q, %q", c.Interaction.BusyPolicy, BusyRestart, BusyReject))
	}
	if c.Interaction.ReleaseGain <= 0 {
		errs = append(errs, fmt.Errorf("interaction release_gain must be positive, got %v", c.Interaction.ReleaseGain))
	}
	if c.Interaction.SampleWindow < 2 {
		errs = append(errs, fmt.Errorf("interaction sample_window must be at least 2, got %d", c.Interaction.SampleWindow))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI string to a preset. Unknown values
// return "" so the config file's own values stay in effect.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// TargetScaleForPreset returns the target size multiplier for a preset.
func TargetScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.4
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
