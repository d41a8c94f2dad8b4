package memory

import (
	"context"
	"sync"

	"github.com/mitsuba/clubport/internal/port"
)

// SettingsRepository is the in-process stand-in used when no database is
// configured, and in tests.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings port.DeliverySettings
	err      error
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

func (r *SettingsRepository) DeliverySettings(ctx context.Context) (port.DeliverySettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return port.DeliverySettings{}, r.err
	}
	return r.settings, nil
}

func (r *SettingsRepository) Set(settings port.DeliverySettings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings
	r.err = nil
}

// Fail makes every read return err, simulating an unreachable store.
func (r *SettingsRepository) Fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

var _ port.SettingsRepository = (*SettingsRepository)(nil)
