package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitsuba/clubport/internal/config"
	"github.com/mitsuba/clubport/internal/domain"
	"github.com/mitsuba/clubport/internal/port"
)

func testConfig() *config.Config {
	return &config.Config{
		AppBaseURL:       testBaseURL,
		LineChannelToken: "test-token",
	}
}

func TestDispatch_BroadcastEndToEnd(t *testing.T) {
	push := &PushClientMock{}
	s := NewNotifierImpl(&SettingsRepositoryMock{}, push, nil, testConfig())

	resp, err := s.DispatchNotification(context.Background(), port.DispatchNotificationRequest{
		Category:   "request",
		Title:      "  ",
		AuthorName: "Alice",
		SubjectID:  "42",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "broadcast", resp.Mode)
	require.NotEmpty(t, resp.DeliveryID)

	calls := push.BroadcastCalls()
	require.Len(t, calls, 1)
	require.Empty(t, push.MulticastCalls())

	msg := calls[0]
	require.Equal(t, placeholderTitle, msg.Card.Title)
	require.Equal(t, testBaseURL+"/posts/42", msg.Card.Action.URI)
}

func TestDispatch_SkipMakesNoProviderCall(t *testing.T) {
	push := &PushClientMock{}
	repo := &SettingsRepositoryMock{
		DeliverySettingsFunc: func(ctx context.Context) (port.DeliverySettings, error) {
			return port.DeliverySettings{Maintenance: boolPtr(true)}, nil
		},
	}
	feed := &FeedMock{}
	s := NewNotifierImpl(repo, push, feed, testConfig())

	resp, err := s.DispatchNotification(context.Background(), port.DispatchNotificationRequest{
		Category: "notice", Title: "hello",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Message, "skipped")

	require.Empty(t, push.BroadcastCalls())
	require.Empty(t, push.MulticastCalls())

	events := feed.Events()
	require.Len(t, events, 1)
	require.Equal(t, "skip", events[0].Mode)
	require.True(t, events[0].Success)
}

func TestDispatch_MulticastUsesResolvedRecipients(t *testing.T) {
	push := &PushClientMock{}
	repo := &SettingsRepositoryMock{
		DeliverySettingsFunc: func(ctx context.Context) (port.DeliverySettings, error) {
			return port.DeliverySettings{
				Maintenance:   boolPtr(true),
				Recipients:    []string{"U100", "U200"},
				HasRecipients: true,
			}, nil
		},
	}
	s := NewNotifierImpl(repo, push, nil, testConfig())

	resp, err := s.DispatchNotification(context.Background(), port.DispatchNotificationRequest{
		Category: "report", Title: "x",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	calls := push.MulticastCalls()
	require.Len(t, calls, 1)
	require.Equal(t, []string{"U100", "U200"}, calls[0])
	require.Empty(t, push.BroadcastCalls())
}

func TestDispatch_MissingCredentialShortCircuits(t *testing.T) {
	push := &PushClientMock{}
	cfg := testConfig()
	cfg.LineChannelToken = ""
	s := NewNotifierImpl(&SettingsRepositoryMock{}, push, nil, cfg)

	resp, err := s.DispatchNotification(context.Background(), port.DispatchNotificationRequest{
		Category: "notice", Title: "x",
	})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Empty(t, push.BroadcastCalls())
	require.Empty(t, push.MulticastCalls())
}

func TestDispatch_ProviderErrorSurfacedVerbatim(t *testing.T) {
	body := json.RawMessage(`{"errorMessage":"invalid"}`)
	push := &PushClientMock{
		BroadcastFunc: func(ctx context.Context, msg domain.PushMessage) error {
			return &port.PushProviderError{StatusCode: http.StatusBadRequest, Body: body}
		},
	}
	s := NewNotifierImpl(&SettingsRepositoryMock{}, push, nil, testConfig())

	resp, err := s.DispatchNotification(context.Background(), port.DispatchNotificationRequest{
		Category: "notice", Title: "x",
	})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.JSONEq(t, string(body), string(resp.Error))
	require.Len(t, push.BroadcastCalls(), 1)
}

func TestDispatch_TransportFailureIsInternalError(t *testing.T) {
	push := &PushClientMock{
		BroadcastFunc: func(ctx context.Context, msg domain.PushMessage) error {
			return context.DeadlineExceeded
		},
	}
	s := NewNotifierImpl(&SettingsRepositoryMock{}, push, nil, testConfig())

	resp, err := s.DispatchNotification(context.Background(), port.DispatchNotificationRequest{
		Category: "notice", Title: "x",
	})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Nil(t, resp.Error)
}

func TestDeliveryStatus_ReportsModeAndSources(t *testing.T) {
	repo := &SettingsRepositoryMock{
		DeliverySettingsFunc: func(ctx context.Context) (port.DeliverySettings, error) {
			return port.DeliverySettings{Maintenance: boolPtr(true)}, nil
		},
	}
	cfg := testConfig()
	cfg.NotifyRecipientIDs = "U7"
	s := NewNotifierImpl(repo, &PushClientMock{}, nil, cfg)

	resp, err := s.DeliveryStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, "multicast", resp.Mode)
	require.True(t, resp.Maintenance)
	require.Equal(t, []string{"U7"}, resp.Recipients)
	require.Equal(t, "store", resp.MaintenanceSource)
	require.Equal(t, "env", resp.RecipientsSource)
}
