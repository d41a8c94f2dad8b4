package domain

// PushMessage is the provider-agnostic card built by the message builder.
// Fields tagged required are rejected by the push provider when empty, so
// the builder must have defaulted them before a message reaches a client.
type PushMessage struct {
	AltText string `validate:"required"`
	Card    Card
}

// Card is a single-bubble layout: a colored header band, a bold title, an
// ordered list of label/value rows and one call-to-action.
type Card struct {
	Header Header
	Title  string `validate:"required"`
	Rows   []Row  `validate:"dive"`
	Action Action
}

// Header carries the domain label and an optional status badge.
type Header struct {
	Label      string `validate:"required"`
	Color      string `validate:"required"`
	Badge      string
	BadgeColor string
}

// Row is one label/value line in the card body.
type Row struct {
	Label string `validate:"required"`
	Value string `validate:"required"`
}

// Action is the footer call-to-action deep-linking back into the portal.
type Action struct {
	Label string `validate:"required"`
	URI   string `validate:"required,url"`
	Color string `validate:"required"`
}
