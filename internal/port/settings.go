package port

import "context"

// DeliverySettings is the result of one read of the two delivery keys.
// Presence matters: a nil Maintenance or a false HasRecipients means the
// key was absent from the store and the env fallback applies for that key
// only.
type DeliverySettings struct {
	Maintenance   *bool
	Recipients    []string
	HasRecipients bool
}

// SettingsRepository reads the delivery keys from the externally-owned
// settings table.
type SettingsRepository interface {
	DeliverySettings(ctx context.Context) (DeliverySettings, error)
}
