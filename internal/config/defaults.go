package config

import (
	_ "embed"
)

//go:embed defaults/paperplane.yaml
var defaultPaperPlaneYAML []byte

// DefaultPaperPlaneConfig returns the default Paper Plane configuration.
func DefaultPaperPlaneConfig() PaperPlaneConfig {
	return PaperPlaneConfig{
		World: WorldConfig{
			Width:  1512,
			Height: 782,
		},
		Launch: PointConfig{
			X: 100,
			Y: 500,
		},
		Plane: SizeConfig{
			Width:  64,
			Height: 64,
		},
		Target: TargetConfig{
			MonitorWidth:  192,
			MonitorHeight: 160,
			RightOffset:   128,
			BottomOffset:  192,
			Padding:       8,
			Size:          128,
			Scale:         1.0,
		},
		Flight: FlightConfig{
			Decay:          0.55,
			StopThreshold:  0.5,
			MoveTransition: 0.1,
			ResetDuration:  0.5,
			MaxFrames:      600,
		},
		Scoring: ScoringConfig{
			AwardRelease:   100,
			AwardFollow:    10,
			InitialBest:    0,
			PixelsPerMetre: 10,
		},
		Interaction: InteractionConfig{
			Mode:         ModeRelease,
			BusyPolicy:   BusyReject,
			ReleaseGain:  1.0,
			SampleWindow: 4,
		},
	}
}
