package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mitsuba/clubport/internal/config"
	"github.com/mitsuba/clubport/internal/pkg/logger"
	"github.com/mitsuba/clubport/internal/port"
)

// NotifierImpl runs the dispatch pipeline: classify, build, resolve
// delivery mode, send. One invocation is one at-most-once delivery attempt
// with no retained state.
type NotifierImpl struct {
	settings port.SettingsRepository
	push     port.PushClient
	feed     port.DispatchPublisher
	cfg      *config.Config
}

func NewNotifierImpl(settings port.SettingsRepository, push port.PushClient, feed port.DispatchPublisher, cfg *config.Config) *NotifierImpl {
	return &NotifierImpl{settings: settings, push: push, feed: feed, cfg: cfg}
}

func (s *NotifierImpl) DispatchNotification(ctx context.Context, req port.DispatchNotificationRequest) (resp port.DispatchNotificationResponse, err error) {
	log := logger.From(ctx)

	// The settings read has no data dependency on message construction,
	// so it runs while the card is being built.
	deliveryCh := make(chan delivery, 1)
	go func() {
		deliveryCh <- s.resolveDelivery(ctx)
	}()

	profile := classify(req, s.cfg.AppBaseURL)
	msg := buildMessage(req, profile)
	if err := checkMessage(msg); err != nil {
		// Defaulting failed to produce a provider-safe message; never
		// forward it.
		log.Error("built message failed provider-required check", "error", err)
		resp.StatusCode = http.StatusInternalServerError
		resp.Message = "internal error"
		return resp, nil
	}

	d := <-deliveryCh
	resp.DeliveryID = uuid.NewString()
	resp.Mode = d.Mode.String()

	if d.Mode == modeSkip {
		// Deliberate silent success: an operator muted delivery without
		// configuring recipients.
		log.Info("delivery skipped", "delivery_id", resp.DeliveryID, "maintenance_source", d.MaintenanceSource)
		resp.Success = true
		resp.StatusCode = http.StatusOK
		resp.Message = "delivery skipped: maintenance mode with no recipients"
		s.publish(req, resp, d)
		return resp, nil
	}

	if s.cfg.LineChannelToken == "" {
		log.Error("push credential is not configured")
		resp.StatusCode = http.StatusInternalServerError
		resp.Message = "push credential is not configured"
		s.publish(req, resp, d)
		return resp, nil
	}

	var sendErr error
	switch d.Mode {
	case modeMulticast:
		sendErr = s.push.Multicast(ctx, d.Recipients, msg)
	default:
		sendErr = s.push.Broadcast(ctx, msg)
	}

	if sendErr != nil {
		var provider *port.PushProviderError
		if errors.As(sendErr, &provider) {
			log.Warn("push provider rejected delivery",
				"delivery_id", resp.DeliveryID,
				"status", provider.StatusCode,
				"mode", d.Mode.String(),
			)
			resp.StatusCode = provider.StatusCode
			resp.Error = provider.Body
			s.publish(req, resp, d)
			return resp, nil
		}
		log.Error("push delivery failed", "delivery_id", resp.DeliveryID, "error", sendErr)
		resp.StatusCode = http.StatusInternalServerError
		resp.Message = "internal error"
		s.publish(req, resp, d)
		return resp, nil
	}

	log.Info("notification delivered",
		"delivery_id", resp.DeliveryID,
		"mode", d.Mode.String(),
		"category", req.Category,
	)
	resp.Success = true
	resp.StatusCode = http.StatusOK
	resp.Message = "notification sent"
	s.publish(req, resp, d)
	return resp, nil
}

func (s *NotifierImpl) DeliveryStatus(ctx context.Context) (resp port.DeliveryStatusResponse, err error) {
	d := s.resolveDelivery(ctx)
	resp.Mode = d.Mode.String()
	resp.Maintenance = d.Maintenance
	resp.Recipients = d.Recipients
	resp.MaintenanceSource = d.MaintenanceSource
	resp.RecipientsSource = d.RecipientsSource
	return resp, nil
}

func (s *NotifierImpl) publish(req port.DispatchNotificationRequest, resp port.DispatchNotificationResponse, d delivery) {
	if s.feed == nil {
		return
	}
	s.feed.Publish(port.DispatchEvent{
		DeliveryID: resp.DeliveryID,
		Category:   req.Category,
		Mode:       d.Mode.String(),
		Success:    resp.Success,
		StatusCode: resp.StatusCode,
		At:         time.Now().UTC(),
	})
}

var _ port.Notifier = (*NotifierImpl)(nil)
