package port

import (
	"context"
	"encoding/json"
)

type Notifier interface {
	DispatchNotification(ctx context.Context, req DispatchNotificationRequest) (DispatchNotificationResponse, error)
	DeliveryStatus(ctx context.Context) (DeliveryStatusResponse, error)
}

// Request/Response DTOs

// DispatchNotificationRequest carries the post-created payload. Every field
// is untrusted: any of them may be empty and downstream stages default or
// drop them rather than reject the request.
type DispatchNotificationRequest struct {
	SubjectID  string `json:"subjectId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Category   string `json:"category"`
	AuthorName string `json:"authorDisplayName"`
	VenueName  string `json:"venueName"`
	EventDate  string `json:"eventDate"`
	GroupName  string `json:"groupName"`
	Lifecycle  string `json:"lifecycleState"`
}

func (d *DispatchNotificationRequest) Validate() error {
	return nil
}

type DispatchNotificationResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	DeliveryID string          `json:"deliveryId,omitempty"`
	Error      json.RawMessage `json:"error,omitempty"`
	StatusCode int             `json:"-"`
	Mode       string          `json:"-"`
}

func (d *DispatchNotificationResponse) Validate() error {
	return nil
}

type DeliveryStatusResponse struct {
	Mode              string   `json:"mode"`
	Maintenance       bool     `json:"maintenance"`
	Recipients        []string `json:"recipients,omitempty"`
	MaintenanceSource string   `json:"maintenanceSource"`
	RecipientsSource  string   `json:"recipientsSource"`
}

func (d *DeliveryStatusResponse) Validate() error {
	return nil
}
