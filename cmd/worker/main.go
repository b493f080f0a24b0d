package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/inventree/pkg/app"
	"github.com/ghuser/inventree/pkg/cache"
	"github.com/ghuser/inventree/pkg/config"
	"github.com/ghuser/inventree/pkg/database"
	"github.com/ghuser/inventree/pkg/events"
	"github.com/ghuser/inventree/pkg/logger"
	"github.com/ghuser/inventree/pkg/telemetry"
	"github.com/ghuser/inventree/pkg/workflows"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
	invworkflows "github.com/ghuser/inventree/services/inventory/application/workflows"
	invevents "github.com/ghuser/inventree/services/inventory/domain/events"
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

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
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

	temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	if err != nil {
		log.Error("failed to initialize temporal client", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer temporalClient.Close()

	appConfig := &app.Application{
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	bulkWorker := newBulkWorker(appConfig)
	if err := bulkWorker.Start(); err != nil {
		log.Error("failed to start temporal worker", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer bulkWorker.Stop()
	log.Info("temporal worker started", "task_queue", invworkflows.TaskQueue)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// newBulkWorker builds the Temporal worker executing bulk import workflows.
func newBulkWorker(a *app.Application) worker.Worker {
	svcs := appsvcs.New(a)
	w := worker.New(a.TemporalClient.Client, invworkflows.TaskQueue, worker.Options{})
	w.RegisterWorkflow(invworkflows.BulkImportWorkflow)
	w.RegisterActivity((&invworkflows.Activities{Items: svcs.Item}).AddSubtree)
	return w
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, invevents.TopicItemMutated, handleItemMutated(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", invevents.TopicItemMutated,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{invevents.TopicItemMutated})
	return nil
}

// handleItemMutated returns a handler for inventory.item.mutated events.
// Handlers must be idempotent; EventBus retries up to 3x on failure.
// Invalidates the cached subtrees of the mutated item, every ancestor on its
// path (old and new for moves) since all of them embed the changed node, and
// every node of the affected subtree for deletes and moves: descendants
// cached on their own would otherwise keep serving removed items or stale
// ancestor paths until the TTL expires.
func handleItemMutated(a *app.Application) func(context.Context, *message.Message) error {
	subtreeCache := cache.NewSubtreeCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt invevents.ItemMutatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		codes := append([]string{evt.ItemCode}, evt.Path...)
		codes = append(codes, evt.PreviousPath...)
		codes = append(codes, evt.Subtree...)
		if err := subtreeCache.Delete(ctx, codes...); err != nil {
			// Stale cache entries expire on their own; retry via the bus.
			a.Logger.WarnContext(ctx, "cache invalidation failed",
				"item_code", evt.ItemCode, "error", err)
			return err
		}

		a.Logger.InfoContext(ctx, "cache invalidated",
			"item_code", evt.ItemCode, "action", evt.Action, "actor", evt.Actor)
		return nil
	}
}
