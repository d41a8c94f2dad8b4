package postgres

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mitsuba/clubport/internal/port"
)

// Settings keys owned by the portal's admin UI; this subsystem only reads
// them.
const (
	keyMaintenanceMode        = "maintenance_mode"
	keyNotificationRecipients = "notification_recipients"
)

// SettingsRepository implements SettingsRepository via the app_settings
// key/value table.
type SettingsRepository struct {
	DB *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{DB: pool}
}

// DeliverySettings reads both delivery keys in one query. An absent key
// stays absent in the result; type mismatches in stored values are treated
// as absence, never as errors.
func (r *SettingsRepository) DeliverySettings(ctx context.Context) (port.DeliverySettings, error) {
	var settings port.DeliverySettings

	rows, err := r.DB.Query(ctx,
		"SELECT key, value FROM app_settings WHERE key = ANY($1)",
		[]string{keyMaintenanceMode, keyNotificationRecipients})
	if err != nil {
		return settings, err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var raw []byte
		if err := rows.Scan(&key, &raw); err != nil {
			return settings, err
		}
		switch key {
		case keyMaintenanceMode:
			if v, ok := decodeBool(raw); ok {
				settings.Maintenance = &v
			}
		case keyNotificationRecipients:
			if ids, ok := decodeStringSlice(raw); ok {
				settings.Recipients = ids
				settings.HasRecipients = true
			}
		}
	}
	return settings, rows.Err()
}

func decodeBool(raw []byte) (bool, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, false
	}
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(t)
		return b, err == nil
	default:
		return false, false
	}
}

func decodeStringSlice(raw []byte) ([]string, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out, true
}

// Compile-time interface check.
var _ port.SettingsRepository = (*SettingsRepository)(nil)
