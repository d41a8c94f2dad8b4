package nats

import (
	"context"
	"encoding/json"
	"fmt"

	natspkg "github.com/nats-io/nats.go"

	"github.com/mitsuba/clubport/internal/domain"
	"github.com/mitsuba/clubport/internal/pkg/logger"
	"github.com/mitsuba/clubport/internal/port"
)

// Subjects published by the portal's authoring flows.
const (
	SubjectPostCreated = "clubport.posts.created"
	SubjectEventLogged = "clubport.events.logged"
)

type Client struct {
	nc *natspkg.Conn
}

func NewClient(url string) (*Client, error) {
	nc, err := natspkg.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Client{nc: nc}, nil
}

func (c *Client) Close() {
	c.nc.Close()
}

func (c *Client) IsConnected() bool {
	return c.nc != nil && c.nc.Status() == natspkg.CONNECTED
}

// SubscribeNotifications feeds bus-published authoring events into the
// dispatch pipeline. Dispatch failures are logged, never re-queued: the
// pipeline is at-most-once regardless of intake.
func (c *Client) SubscribeNotifications(notifier port.Notifier) error {
	_, err := c.nc.Subscribe(SubjectPostCreated, func(msg *natspkg.Msg) {
		var ev domain.PostCreated
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			logger.From(context.Background()).Warn("drop malformed post event", "error", err)
			return
		}
		c.dispatch(notifier, port.DispatchNotificationRequest{
			SubjectID:  anyToString(ev.PostID),
			Title:      ev.Title,
			Body:       ev.Body,
			Category:   ev.Category,
			AuthorName: ev.AuthorName,
		})
	})
	if err != nil {
		return err
	}

	_, err = c.nc.Subscribe(SubjectEventLogged, func(msg *natspkg.Msg) {
		var ev domain.EventLogged
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			logger.From(context.Background()).Warn("drop malformed event-log event", "error", err)
			return
		}
		c.dispatch(notifier, port.DispatchNotificationRequest{
			SubjectID:  anyToString(ev.EventID),
			Title:      ev.Title,
			Body:       ev.Body,
			Category:   domain.CategoryEventLog,
			AuthorName: ev.AuthorName,
			VenueName:  ev.VenueName,
			EventDate:  ev.EventDate,
			GroupName:  ev.GroupName,
			Lifecycle:  ev.Lifecycle,
		})
	})
	return err
}

func (c *Client) dispatch(notifier port.Notifier, req port.DispatchNotificationRequest) {
	ctx := context.Background()
	resp, err := notifier.DispatchNotification(ctx, req)
	if err != nil {
		logger.From(ctx).Error("bus-triggered dispatch failed", "error", err)
		return
	}
	if !resp.Success {
		logger.From(ctx).Warn("bus-triggered dispatch not delivered",
			"status", resp.StatusCode, "delivery_id", resp.DeliveryID)
	}
}

func anyToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
