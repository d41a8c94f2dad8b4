package service

import (
	"context"
	"strings"

	"github.com/mitsuba/clubport/internal/pkg/logger"
	"github.com/mitsuba/clubport/internal/port"
)

type deliveryMode int

const (
	modeBroadcast deliveryMode = iota
	modeMulticast
	modeSkip
)

func (m deliveryMode) String() string {
	switch m {
	case modeMulticast:
		return "multicast"
	case modeSkip:
		return "skip"
	default:
		return "broadcast"
	}
}

const (
	sourceStore = "store"
	sourceEnv   = "env"
)

// delivery is the resolver's terminal choice for one invocation.
type delivery struct {
	Mode              deliveryMode
	Recipients        []string
	Maintenance       bool
	MaintenanceSource string
	RecipientsSource  string
}

// resolveDelivery reads the two delivery keys from the settings store and
// applies per-key env fallback. The two keys resolve independently: the
// maintenance flag may come from the store while the recipient list comes
// from the env, or vice versa.
func (s *NotifierImpl) resolveDelivery(ctx context.Context) delivery {
	settings := s.loadSettings(ctx)

	d := delivery{MaintenanceSource: sourceEnv, RecipientsSource: sourceEnv}

	if settings.Maintenance != nil {
		d.Maintenance = *settings.Maintenance
		d.MaintenanceSource = sourceStore
	} else {
		d.Maintenance = strings.TrimSpace(s.cfg.MaintenanceMode) == "true"
	}

	if settings.HasRecipients {
		d.Recipients = settings.Recipients
		d.RecipientsSource = sourceStore
	} else {
		d.Recipients = splitRecipients(s.cfg.NotifyRecipientIDs)
	}

	switch {
	case !d.Maintenance:
		d.Mode = modeBroadcast
	case len(d.Recipients) > 0:
		d.Mode = modeMulticast
	default:
		d.Mode = modeSkip
	}
	return d
}

// loadSettings is the named store-failure fallback: a failed read is logged
// and mapped to empty settings so the pipeline degrades to env values
// instead of failing.
func (s *NotifierImpl) loadSettings(ctx context.Context) port.DeliverySettings {
	if s.settings == nil {
		return port.DeliverySettings{}
	}
	settings, err := s.settings.DeliverySettings(ctx)
	if err != nil {
		logger.From(ctx).Warn("settings store unavailable, using env fallback", "error", err)
		return port.DeliverySettings{}
	}
	return settings
}

func splitRecipients(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}
