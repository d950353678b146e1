package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/kanban-board/internal/config"
	"github.com/spec-kit/kanban-board/internal/events"
)

const webhookTimeout = 5 * time.Second

// NotificationService reports snapshot and preference events to the log and an optional
// webhook.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventSnapshotRefreshed, n.handleSnapshotRefreshed)
	n.dispatcher.Subscribe(events.EventSnapshotFailed, n.handleSnapshotFailed)
	n.dispatcher.Subscribe(events.EventPreferencesSaved, n.handlePreferencesSaved)
}

func (n *NotificationService) handleSnapshotRefreshed(ctx context.Context, event events.Event) error {
	n.logger.Info("SnapshotRefreshed", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleSnapshotFailed(ctx context.Context, event events.Event) error {
	n.logger.Warn("SnapshotFailed", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return n.sendWebhook(ctx, event)
}

func (n *NotificationService) handlePreferencesSaved(ctx context.Context, event events.Event) error {
	n.logger.Debug("PreferencesSaved", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) sendWebhook(ctx context.Context, event events.Event) error {
	url := strings.TrimSpace(n.cfg.WebhookURL)
	if url == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	code, _, errs := fiber.Post(url).JSON(event).Timeout(webhookTimeout).Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("webhook %s: %w", event.Type, errs[0])
	}
	if code >= fiber.StatusBadRequest {
		return fmt.Errorf("webhook %s: status %d", event.Type, code)
	}
	n.logger.Debug("webhook delivered",
		zap.String("url", url),
		zap.String("event_type", string(event.Type)),
		zap.Int("status", code))
	return nil
}
