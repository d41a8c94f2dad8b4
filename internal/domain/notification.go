package domain

// Category tags carried by bulletin-board posts. EventLog switches the
// whole rendering mode; the rest pick a label/color pair.
const (
	CategoryReport   = "report"
	CategoryRequest  = "request"
	CategoryNotice   = "notice"
	CategoryEventLog = "eventlog"
)

// Lifecycle states of an event-log entry.
const (
	LifecycleAttended = "attended"
	LifecyclePlanned  = "planned"
)
