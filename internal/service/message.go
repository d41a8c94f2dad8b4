package service

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mitsuba/clubport/internal/domain"
	"github.com/mitsuba/clubport/internal/port"
)

// Placeholders substituted for blank provider-required fields. The provider
// rejects empty strings outright, so defaulting happens before construction.
const (
	placeholderTitle  = "(no title)"
	placeholderAuthor = "Unknown member"
	placeholderVenue  = "Unknown venue"
)

var validate = validator.New()

// orDefault trims s and substitutes placeholder when nothing is left. The
// placeholder is trimmed again so a misconfigured constant can never
// reintroduce a blank field.
func orDefault(s, placeholder string) string {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return strings.TrimSpace(placeholder)
}

func buildMessage(req port.DispatchNotificationRequest, p renderProfile) domain.PushMessage {
	title := orDefault(req.Title, placeholderTitle)
	author := orDefault(req.AuthorName, placeholderAuthor)

	// Optional-row candidates in fixed order; nil entries are discarded
	// below so blank fields never render as empty rows.
	var candidates []*domain.Row
	if p.EventLog {
		var venueRow *domain.Row
		if req.VenueName != "" {
			// Whitespace-only venue still renders a row, but never an
			// empty value.
			venueRow = &domain.Row{Label: "Venue", Value: orDefault(req.VenueName, placeholderVenue)}
		}
		candidates = append(candidates,
			venueRow,
			optionalRow("Date", strings.TrimSpace(req.EventDate)),
			optionalRow("Group", strings.TrimSpace(req.GroupName)),
		)
	}
	candidates = append(candidates, &domain.Row{Label: "Author", Value: author})

	rows := make([]domain.Row, 0, len(candidates))
	for _, row := range candidates {
		if row != nil {
			rows = append(rows, *row)
		}
	}

	altPrefix := "[" + p.Label + "] "
	if p.EventLog {
		altPrefix = "[Event Log] "
	}

	return domain.PushMessage{
		AltText: altPrefix + title,
		Card: domain.Card{
			Header: domain.Header{
				Label:      p.Label,
				Color:      p.Color,
				Badge:      p.Badge,
				BadgeColor: p.BadgeColor,
			},
			Title: title,
			Rows:  rows,
			Action: domain.Action{
				Label: "Open",
				URI:   p.LinkURI,
				Color: p.Color,
			},
		},
	}
}

func optionalRow(label, value string) *domain.Row {
	if value == "" {
		return nil
	}
	return &domain.Row{Label: label, Value: value}
}

// checkMessage asserts the defaulting contract held: no provider-required
// field of a built message may be empty.
func checkMessage(msg domain.PushMessage) error {
	return validate.Struct(msg)
}
