package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/itsklemy/cercle-backend/pkg/app"
	"github.com/itsklemy/cercle-backend/pkg/cache"
	"github.com/itsklemy/cercle-backend/pkg/config"
	"github.com/itsklemy/cercle-backend/pkg/database"
	"github.com/itsklemy/cercle-backend/pkg/events"
	"github.com/itsklemy/cercle-backend/pkg/logger"
	"github.com/itsklemy/cercle-backend/pkg/telemetry"
	catalogsvcs "github.com/itsklemy/cercle-backend/services/catalog/application/services"
	itemEvents "github.com/itsklemy/cercle-backend/services/inventory/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	db, err := database.New(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer db.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       db,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	catalog := catalogsvcs.New(appConfig, cfg)

	// Item-change bursts coalesce over the debounce window into one
	// catalog recompute per circle.
	refresher := catalogsvcs.NewRefresher(cfg.CatalogDebounce, func(circleID uuid.UUID) {
		if err := catalog.Catalog.Refresh(context.Background(), circleID); err != nil {
			log.Error("catalog refresh failed", "circle_id", circleID, "error", err)
		} else {
			log.Info("catalog refreshed", "circle_id", circleID)
		}
	})
	defer refresher.Stop()

	if err := registerSubscribers(ctx, appConfig, refresher); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers;
	// refresher.Stop() (via defer) then drains pending recomputes.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application, refresher *catalogsvcs.Refresher) error {
	topics := []string{itemEvents.TopicItemCreated, itemEvents.TopicItemDeleted}

	for _, topic := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handleItemChange(a, refresher, topic))
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// itemChangeEnvelope is the subset of item lifecycle event payloads the worker
// needs: both created and deleted events carry the circle.
type itemChangeEnvelope struct {
	EventID  uuid.UUID `json:"event_id"`
	ItemID   uuid.UUID `json:"item_id"`
	CircleID uuid.UUID `json:"circle_id"`
}

// handleItemChange returns a handler for item lifecycle events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Each event just signals the refresher; the debounce window turns a burst of
// changes in one circle into a single aggregation recompute.
func handleItemChange(a *app.Application, refresher *catalogsvcs.Refresher, topic string) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemChangeEnvelope
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if evt.CircleID == uuid.Nil {
			a.Logger.WarnContext(ctx, "item event missing circle_id, skipping",
				"topic", topic, "event_id", evt.EventID)
			return nil
		}

		refresher.Signal(evt.CircleID)
		a.Logger.DebugContext(ctx, "catalog refresh scheduled",
			"topic", topic, "circle_id", evt.CircleID, "item_id", evt.ItemID)
		return nil
	}
}
