package domain

// PostCreated is published by the bulletin-board authoring flow.
type PostCreated struct {
	PostID     any    `json:"postId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Category   string `json:"category"`
	AuthorName string `json:"authorName"`
}

// EventLogged is published when a social-event log entry is created.
type EventLogged struct {
	EventID    any    `json:"eventId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	AuthorName string `json:"authorName"`
	VenueName  string `json:"venueName"`
	EventDate  string `json:"eventDate"`
	GroupName  string `json:"groupName"`
	Lifecycle  string `json:"lifecycleState"`
}
