package http

import (
	"fmt"
	"net/http"

	"github.com/mitsuba/clubport/internal/pkg/errors"
	"github.com/mitsuba/clubport/internal/pkg/logger"
	"github.com/mitsuba/clubport/internal/port"
)

// NotifyHandler exposes the dispatch pipeline over HTTP.
type NotifyHandler struct {
	Svc port.Notifier
}

func NewNotifyHandler(svc port.Notifier) *NotifyHandler {
	return &NotifyHandler{Svc: svc}
}

// Dispatch accepts the post-created payload. The body is decoded
// tolerantly: missing or wrong-typed fields pass through as zero values
// because every downstream stage defaults them. Only total parse failure
// is rejected.
func (h *NotifyHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := decodeJSONRequest(r, &payload); err != nil {
		// Even total parse failure answers in the result shape so callers
		// can branch on success alone.
		logger.From(r.Context()).Error("unreadable notification payload", "error", err)
		writeJSON(w, http.StatusInternalServerError, port.DispatchNotificationResponse{
			Message: "unreadable request body",
		})
		return
	}

	req := requestFromPayload(payload)
	resp, err := h.Svc.DispatchNotification(r.Context(), req)
	if err != nil {
		logger.From(r.Context()).Error("dispatch pipeline error", "error", err)
		writeJSON(w, http.StatusInternalServerError, port.DispatchNotificationResponse{
			Message: "notification dispatch failed",
		})
		return
	}

	RecordDispatch(outcomeOf(resp), resp.Mode)
	writeJSON(w, resp.StatusCode, resp)
}

// Status reports the currently resolved delivery mode.
func (h *NotifyHandler) Status(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Svc.DeliveryStatus(r.Context())
	if err != nil {
		errors.WriteError(w, r, errors.New(http.StatusInternalServerError, "Internal Server Error", "status resolution failed"))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func outcomeOf(resp port.DispatchNotificationResponse) string {
	switch {
	case resp.Success && resp.Mode == "skip":
		return "skipped"
	case resp.Success:
		return "delivered"
	case resp.Error != nil:
		return "provider_error"
	default:
		return "internal_error"
	}
}

// requestFromPayload extracts known fields by name, coercing scalars to
// strings. Anything unrecognized or untypeable is dropped, not rejected.
func requestFromPayload(payload map[string]any) port.DispatchNotificationRequest {
	extras, _ := payload["domainExtras"].(map[string]any)
	pick := func(key string) string {
		if v, ok := payload[key]; ok {
			return coerceString(v)
		}
		if extras != nil {
			return coerceString(extras[key])
		}
		return ""
	}
	// Older portal callbacks send authorName; current ones send
	// authorDisplayName.
	author := pick("authorDisplayName")
	if author == "" {
		author = pick("authorName")
	}
	return port.DispatchNotificationRequest{
		SubjectID:  pick("subjectId"),
		Title:      pick("title"),
		Body:       pick("body"),
		Category:   pick("category"),
		AuthorName: author,
		VenueName:  pick("venueName"),
		EventDate:  pick("eventDate"),
		GroupName:  pick("groupName"),
		Lifecycle:  pick("lifecycleState"),
	}
}

func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return fmt.Sprintf("%t", t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	default:
		return ""
	}
}
