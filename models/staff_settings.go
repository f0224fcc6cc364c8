package models

// Notification sound profiles.
const (
	SoundBell    = "bell"
	SoundChime   = "chime"
	SoundDigital = "digital"
)

// ValidSoundType reports whether s names a known sound profile.
func ValidSoundType(s string) bool {
	return s == SoundBell || s == SoundChime || s == SoundDigital
}

// StaffSettings configures staff notification behaviour. Muting silences
// both audio and speech; disabling TTS silences speech only.
type StaffSettings struct {
	IsMuted   bool    `json:"is_muted"`
	SoundType string  `json:"sound_type"`
	EnableTTS bool    `json:"enable_tts"`
	Volume    float64 `json:"volume"` // [0, 1]
}

// DefaultStaffSettings mirrors the out-of-the-box staff configuration.
func DefaultStaffSettings() StaffSettings {
	return StaffSettings{
		IsMuted:   false,
		SoundType: SoundChime,
		EnableTTS: true,
		Volume:    0.5,
	}
}
