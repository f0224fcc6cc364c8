package settings

import (
	"sync"

	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/storage"
)

// Store holds the single process-wide staff settings instance and writes
// it through on every change.
type Store struct {
	mu      sync.Mutex
	current models.StaffSettings
	gateway *storage.Gateway
}

func New(gw *storage.Gateway) *Store {
	return &Store{
		current: models.DefaultStaffSettings(),
		gateway: gw,
	}
}

// Load restores persisted settings, keeping defaults when nothing valid
// was stored.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var saved models.StaffSettings
	if s.gateway.Load(storage.KeyStaffSettings, &saved) && models.ValidSoundType(saved.SoundType) {
		saved.Volume = clampVolume(saved.Volume)
		s.current = saved
	}
}

func (s *Store) Get() models.StaffSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update replaces the settings and persists them. The volume is clamped
// to [0, 1] and an unknown sound type falls back to the previous one.
func (s *Store) Update(next models.StaffSettings) models.StaffSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !models.ValidSoundType(next.SoundType) {
		next.SoundType = s.current.SoundType
	}
	next.Volume = clampVolume(next.Volume)
	s.current = next
	s.gateway.Save(storage.KeyStaffSettings, s.current)
	return s.current
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
