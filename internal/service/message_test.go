package service

import (
	"testing"

	"github.com/mitsuba/clubport/internal/port"
)

func TestBuildMessage_BlankTitleGetsPlaceholder(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		req := port.DispatchNotificationRequest{Category: "notice", Title: title, AuthorName: "Alice"}
		msg := buildMessage(req, classify(req, testBaseURL))
		if msg.Card.Title != placeholderTitle {
			t.Fatalf("title %q: got %q", title, msg.Card.Title)
		}
		if err := checkMessage(msg); err != nil {
			t.Fatalf("title %q: message failed check: %v", title, err)
		}
	}
}

func TestBuildMessage_BlankAuthorGetsPlaceholder(t *testing.T) {
	req := port.DispatchNotificationRequest{Category: "report", Title: "Weekly report"}
	msg := buildMessage(req, classify(req, testBaseURL))
	if len(msg.Card.Rows) != 1 {
		t.Fatalf("expected one row, got %d", len(msg.Card.Rows))
	}
	if msg.Card.Rows[0].Label != "Author" || msg.Card.Rows[0].Value != placeholderAuthor {
		t.Fatalf("got row %+v", msg.Card.Rows[0])
	}
}

func TestBuildMessage_VenueRowOmittedWhenBlank(t *testing.T) {
	withVenue := port.DispatchNotificationRequest{
		Category: "eventlog", Title: "Bowling night", AuthorName: "Bob", VenueName: "Round One",
	}
	withoutVenue := withVenue
	withoutVenue.VenueName = ""

	a := buildMessage(withVenue, classify(withVenue, testBaseURL))
	b := buildMessage(withoutVenue, classify(withoutVenue, testBaseURL))

	if len(a.Card.Rows) != len(b.Card.Rows)+1 {
		t.Fatalf("expected one fewer row: with=%d without=%d", len(a.Card.Rows), len(b.Card.Rows))
	}
	for _, row := range b.Card.Rows {
		if row.Label == "Venue" {
			t.Fatalf("venue row should be absent: %+v", b.Card.Rows)
		}
	}
}

func TestBuildMessage_WhitespaceVenueIsDefaulted(t *testing.T) {
	req := port.DispatchNotificationRequest{
		Category: "eventlog", Title: "x", AuthorName: "Bob", VenueName: "   ",
	}
	msg := buildMessage(req, classify(req, testBaseURL))
	if msg.Card.Rows[0].Label != "Venue" || msg.Card.Rows[0].Value != placeholderVenue {
		t.Fatalf("got row %+v", msg.Card.Rows[0])
	}
}

func TestBuildMessage_OrdinaryCategoryRowShape(t *testing.T) {
	req := port.DispatchNotificationRequest{
		Category:   "request",
		Title:      "New chairs",
		AuthorName: "Carol",
		// Event-only fields must never leak into ordinary posts.
		VenueName: "Somewhere",
		EventDate: "2026-09-01",
		GroupName: "Furniture club",
	}
	msg := buildMessage(req, classify(req, testBaseURL))

	if msg.Card.Header.Badge != "" {
		t.Fatalf("ordinary post should have no status badge, got %q", msg.Card.Header.Badge)
	}
	if msg.Card.Title != "New chairs" {
		t.Fatalf("got title %q", msg.Card.Title)
	}
	if len(msg.Card.Rows) != 1 || msg.Card.Rows[0].Label != "Author" {
		t.Fatalf("expected only the author row, got %+v", msg.Card.Rows)
	}
}

func TestBuildMessage_EventLogRowOrder(t *testing.T) {
	req := port.DispatchNotificationRequest{
		Category:   "eventlog",
		Title:      "Hanami meetup",
		AuthorName: "Dan",
		VenueName:  "Ueno Park",
		EventDate:  "2026-04-04",
		GroupName:  "Outdoor group",
		Lifecycle:  "attended",
	}
	msg := buildMessage(req, classify(req, testBaseURL))

	want := []string{"Venue", "Date", "Group", "Author"}
	if len(msg.Card.Rows) != len(want) {
		t.Fatalf("expected %d rows, got %+v", len(want), msg.Card.Rows)
	}
	for i, label := range want {
		if msg.Card.Rows[i].Label != label {
			t.Fatalf("row %d: expected %q, got %q", i, label, msg.Card.Rows[i].Label)
		}
	}
	if msg.Card.Header.Badge != "Attended" {
		t.Fatalf("got badge %q", msg.Card.Header.Badge)
	}
}

func TestBuildMessage_AltTextPrefix(t *testing.T) {
	event := port.DispatchNotificationRequest{Category: "eventlog", Title: "Karaoke"}
	if got := buildMessage(event, classify(event, testBaseURL)).AltText; got != "[Event Log] Karaoke" {
		t.Fatalf("got alt text %q", got)
	}

	notice := port.DispatchNotificationRequest{Category: "notice", Title: "Karaoke"}
	if got := buildMessage(notice, classify(notice, testBaseURL)).AltText; got != "[Notice] Karaoke" {
		t.Fatalf("got alt text %q", got)
	}

	blank := port.DispatchNotificationRequest{Category: "notice"}
	if got := buildMessage(blank, classify(blank, testBaseURL)).AltText; got != "[Notice] "+placeholderTitle {
		t.Fatalf("got alt text %q", got)
	}
}
