package service

import (
	"strings"

	"github.com/mitsuba/clubport/internal/domain"
	"github.com/mitsuba/clubport/internal/port"
)

// renderProfile is the display metadata derived from a request's category.
// Classification never fails; unknown values degrade to defaults.
type renderProfile struct {
	EventLog   bool
	Label      string
	Color      string
	Badge      string
	BadgeColor string
	LinkURI    string
}

type categoryStyle struct {
	Label string
	Color string
}

var categoryStyles = map[string]categoryStyle{
	domain.CategoryReport:  {Label: "Activity Report", Color: "#1E88E5"},
	domain.CategoryRequest: {Label: "Request", Color: "#E53935"},
	domain.CategoryNotice:  {Label: "Notice", Color: "#43A047"},
}

var defaultStyle = categoryStyle{Label: "Board Post", Color: "#607D8B"}

const (
	eventLogLabel = "Event Log"
	eventLogColor = "#F57C00"

	badgeAttendedLabel = "Attended"
	badgeAttendedColor = "#2E7D32"
	badgePlannedLabel  = "Planned"
	badgePlannedColor  = "#F9A825"
)

func classify(req port.DispatchNotificationRequest, baseURL string) renderProfile {
	base := strings.TrimRight(baseURL, "/")

	if strings.TrimSpace(req.Category) == domain.CategoryEventLog {
		p := renderProfile{
			EventLog:   true,
			Label:      eventLogLabel,
			Color:      eventLogColor,
			BadgeColor: badgePlannedColor,
			LinkURI:    base + "/events",
		}
		switch strings.TrimSpace(req.Lifecycle) {
		case domain.LifecycleAttended:
			p.Badge = badgeAttendedLabel
			p.BadgeColor = badgeAttendedColor
		case domain.LifecyclePlanned:
			p.Badge = badgePlannedLabel
		}
		return p
	}

	style, ok := categoryStyles[strings.TrimSpace(req.Category)]
	if !ok {
		style = defaultStyle
	}
	link := base + "/posts"
	if id := strings.TrimSpace(req.SubjectID); id != "" {
		link = base + "/posts/" + id
	}
	return renderProfile{
		Label:   style.Label,
		Color:   style.Color,
		LinkURI: link,
	}
}
