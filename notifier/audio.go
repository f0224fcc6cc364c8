package notifier

import "github.com/uguryukselwork/quickserve/models"

// FreqStep is one point in a cue's frequency envelope. Exponential steps
// ramp from the previous frequency; plain steps jump.
type FreqStep struct {
	At          float64 `json:"at"` // seconds from cue start
	Freq        float64 `json:"freq"`
	Exponential bool    `json:"exponential,omitempty"`
}

// AudioCue describes a short synthesized tone for the staff client to
// render: waveform, frequency envelope and gain.
type AudioCue struct {
	Waveform string     `json:"waveform"`
	Steps    []FreqStep `json:"steps"`
	Gain     float64    `json:"gain"`
	Duration float64    `json:"duration"` // seconds
}

// cueDuration matches the gain decay window of the tone.
const cueDuration = 0.6

// BuildCue returns the tone profile for a sound type, amplitude-scaled by
// volume. The three profiles are deliberately distinct in timbre.
func BuildCue(soundType string, volume float64) AudioCue {
	cue := AudioCue{
		Gain:     volume * 0.2,
		Duration: cueDuration,
	}

	switch soundType {
	case models.SoundBell:
		cue.Waveform = "sine"
		cue.Steps = []FreqStep{
			{At: 0, Freq: 880},
			{At: 0.5, Freq: 440, Exponential: true},
		}
	case models.SoundDigital:
		cue.Waveform = "square"
		cue.Steps = []FreqStep{
			{At: 0, Freq: 440},
			{At: 0.1, Freq: 880},
			{At: 0.2, Freq: 440},
		}
	default: // chime
		cue.Waveform = "triangle"
		cue.Steps = []FreqStep{
			{At: 0, Freq: 660},
			{At: 0.2, Freq: 880, Exponential: true},
			{At: 0.4, Freq: 660, Exponential: true},
		}
	}
	return cue
}
