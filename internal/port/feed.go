package port

import "time"

// DispatchEvent is emitted after every pipeline run for operator dashboards.
type DispatchEvent struct {
	DeliveryID string    `json:"deliveryId"`
	Category   string    `json:"category"`
	Mode       string    `json:"mode"`
	Success    bool      `json:"success"`
	StatusCode int       `json:"statusCode"`
	At         time.Time `json:"at"`
}

// DispatchPublisher fans dispatch events out to connected observers.
// Publishing is best-effort and must never block the pipeline.
type DispatchPublisher interface {
	Publish(ev DispatchEvent)
}
