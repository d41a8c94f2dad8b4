package port

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mitsuba/clubport/internal/domain"
)

// PushClient delivers a built card message through the push provider.
// Broadcast targets every subscriber of the channel; Multicast targets an
// explicit recipient-identifier list.
type PushClient interface {
	Broadcast(ctx context.Context, msg domain.PushMessage) error
	Multicast(ctx context.Context, to []string, msg domain.PushMessage) error
}

// PushProviderError is a non-2xx answer from the provider. Body holds the
// provider's error payload verbatim for operator diagnosis.
type PushProviderError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *PushProviderError) Error() string {
	return fmt.Sprintf("push provider rejected request: status %d", e.StatusCode)
}
