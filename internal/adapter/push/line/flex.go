package line

import "github.com/mitsuba/clubport/internal/domain"

// Flex message shapes, limited to the subset the card model uses.

type flexMessage struct {
	Type     string   `json:"type"`
	AltText  string   `json:"altText"`
	Contents *flexBox `json:"contents"`
}

type flexBox struct {
	Type            string     `json:"type"`
	Layout          string     `json:"layout,omitempty"`
	Contents        []*flexBox `json:"contents,omitempty"`
	BackgroundColor string     `json:"backgroundColor,omitempty"`
	Spacing         string     `json:"spacing,omitempty"`
	Margin          string     `json:"margin,omitempty"`

	// bubble fields
	Header *flexBox `json:"header,omitempty"`
	Body   *flexBox `json:"body,omitempty"`
	Footer *flexBox `json:"footer,omitempty"`

	// text fields
	Text   string `json:"text,omitempty"`
	Weight string `json:"weight,omitempty"`
	Size   string `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"`
	Flex   *int   `json:"flex,omitempty"`

	// button fields
	Style  string      `json:"style,omitempty"`
	Action *flexAction `json:"action,omitempty"`
}

type flexAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URI   string `json:"uri"`
}

func flexInt(v int) *int { return &v }

func toFlex(msg domain.PushMessage) flexMessage {
	card := msg.Card

	header := &flexBox{
		Type:            "box",
		Layout:          "horizontal",
		BackgroundColor: card.Header.Color,
		Contents: []*flexBox{
			{Type: "text", Text: card.Header.Label, Color: "#FFFFFF", Weight: "bold", Size: "sm"},
		},
	}
	if card.Header.Badge != "" {
		header.Contents = append(header.Contents, &flexBox{
			Type:  "text",
			Text:  card.Header.Badge,
			Color: card.Header.BadgeColor,
			Size:  "xs",
		})
	}

	body := &flexBox{
		Type:    "box",
		Layout:  "vertical",
		Spacing: "sm",
		Contents: []*flexBox{
			{Type: "text", Text: card.Title, Weight: "bold", Size: "md", Wrap: true},
		},
	}
	for _, row := range card.Rows {
		body.Contents = append(body.Contents, &flexBox{
			Type:   "box",
			Layout: "baseline",
			Contents: []*flexBox{
				{Type: "text", Text: row.Label, Color: "#AAAAAA", Size: "sm", Flex: flexInt(2)},
				{Type: "text", Text: row.Value, Size: "sm", Wrap: true, Flex: flexInt(5)},
			},
		})
	}

	footer := &flexBox{
		Type:   "box",
		Layout: "vertical",
		Contents: []*flexBox{
			{
				Type:  "button",
				Style: "primary",
				Color: card.Action.Color,
				Action: &flexAction{
					Type:  "uri",
					Label: card.Action.Label,
					URI:   card.Action.URI,
				},
			},
		},
	}

	return flexMessage{
		Type:    "flex",
		AltText: msg.AltText,
		Contents: &flexBox{
			Type:   "bubble",
			Header: header,
			Body:   body,
			Footer: footer,
		},
	}
}
