package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	inventoryapp "innsync/internal/app/handlers/inventory"
	syncapp "innsync/internal/app/handlers/sync"
	chartapp "innsync/internal/app/handlers/tapechart"
	"innsync/internal/app/snapshot"
	"innsync/internal/app/syncjob"
	"innsync/internal/domain/calendar"
	domainchannels "innsync/internal/domain/channels"
	"innsync/internal/domain/rates"
	"innsync/internal/domain/shared/money"
	"innsync/internal/infra/broker/kafka"
	"innsync/internal/infra/cache"
	httpchannels "innsync/internal/infra/channels"
	"innsync/internal/infra/config"
	"innsync/internal/infra/db/mongo"
	ginserver "innsync/internal/infra/http/gin"
	"innsync/internal/infra/obs"
	"innsync/internal/infra/storage/memory"
	"innsync/internal/infra/storage/s3"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	source, ready, cleanup := buildSource(ctx, cfg, logger)
	defer cleanup()

	buildHandler := &inventoryapp.BuildHandler{
		Source:       source,
		CacheTTL:     cfg.CacheTTL,
		Weekend:      rates.DefaultWeekend,
		DefaultPrice: money.Money{Amount: cfg.DefaultNightlyPriceCents, Currency: cfg.Currency},
		Logger:       logger,
	}
	if cfg.RedisAddr != "" {
		lineCache, err := cache.NewLineCache(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, inventory cache disabled", "error", err)
		} else {
			buildHandler.Cache = lineCache
			defer lineCache.Close()
		}
	}

	chartHandler := &chartapp.GetChartHandler{Source: source}

	dispatcher := &httpchannels.Dispatcher{
		Client: &http.Client{Timeout: cfg.RequestTimeout},
		Booking: httpchannels.ChannelEndpoint{
			URL:      cfg.BookingURL,
			Username: cfg.BookingUsername,
			Password: cfg.BookingPassword,
		},
		Expedia: httpchannels.ChannelEndpoint{
			URL:      cfg.ExpediaURL,
			Username: cfg.ExpediaUsername,
			Password: cfg.ExpediaPassword,
		},
		Airbnb: httpchannels.ChannelEndpoint{
			URL:   cfg.AirbnbURL,
			Token: cfg.AirbnbToken,
		},
		GDS: httpchannels.GDSEndpoints{
			Enabled:       cfg.GDSEnabled,
			AmadeusURL:    cfg.GDSAmadeusURL,
			SabreURL:      cfg.GDSSabreURL,
			TravelportURL: cfg.GDSTravelURL,
			APIKey:        cfg.GDSAPIKey,
			APISecret:     cfg.GDSAPISecret,
		},
		Attempts: cfg.RetryAttempts,
		Delay:    cfg.RetryDelay,
		Logger:   logger,
	}

	syncHandler := &syncapp.Handler{
		Inventory: buildHandler,
		Export: domainchannels.ExportOptions{
			Currency:          cfg.Currency,
			BookingHotelID:    cfg.BookingHotelID,
			BookingRateID:     cfg.BookingRateID,
			ExpediaHotelID:    cfg.ExpediaHotelID,
			ExpediaRatePlanID: cfg.ExpediaRatePlanID,
			AirbnbListingID:   cfg.AirbnbListingID,
		},
		Transport: dispatcher,
		Logger:    logger,
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			logger.Warn("kafka unavailable, sync events disabled", "error", err)
		} else {
			syncHandler.Events = &kafka.SyncEvents{
				Producer:   producer,
				Topic:      cfg.KafkaTopic,
				Source:     "innsync",
				PropertyID: cfg.PropertyID,
			}
			defer producer.Close()
		}
	}

	if cfg.S3Endpoint != "" {
		archiver, err := s3.NewArchiver(cfg.S3Endpoint, cfg.S3UseSSL, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, logger)
		if err != nil {
			logger.Warn("s3 unavailable, payload archive disabled", "error", err)
		} else {
			syncHandler.Archiver = archiver
		}
	}

	if channels := parseChannels(cfg.SyncChannels, logger); len(channels) > 0 {
		worker := &syncjob.Worker{
			Handler:    syncHandler,
			PropertyID: cfg.PropertyID,
			Channels:   channels,
			Horizon:    cfg.SyncHorizon,
			Interval:   cfg.SyncInterval,
			Logger:     logger,
		}
		go func() {
			if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("sync worker stopped", "error", err)
			}
		}()
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{Ready: ready}, ginserver.Handlers{
		Inventory: ginserver.InventoryHandler{Build: buildHandler},
		Chart:     ginserver.ChartHandler{Chart: chartHandler},
		Sync:      ginserver.SyncHandler{Sync: syncHandler},
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

// buildSource wires the snapshot source per STORAGE_MODE: mongo for a real
// deployment, seeded memory otherwise.
func buildSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (snapshot.Source, func() error, func()) {
	if cfg.StorageMode == "mongo" {
		client, err := mongo.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Error("mongo connect failed", "error", err)
			os.Exit(1)
		}
		ready := func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx)
		}
		cleanup := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Close(closeCtx); err != nil {
				logger.Warn("mongo disconnect failed", "error", err)
			}
		}
		return mongo.NewSnapshotSource(client, cfg.Currency), ready, cleanup
	}

	source := memory.NewSource()
	memory.SeedDemo(source, cfg.PropertyID, cfg.Currency, calendar.DayOf(time.Now()))
	logger.Info("in-memory storage seeded", "property_id", cfg.PropertyID)
	return source, func() error { return nil }, func() {}
}

func parseChannels(raw []string, logger *slog.Logger) []domainchannels.Channel {
	out := make([]domainchannels.Channel, 0, len(raw))
	for _, s := range raw {
		ch, err := domainchannels.Parse(s)
		if err != nil {
			logger.Warn("ignoring unknown sync channel", "channel", s)
			continue
		}
		out = append(out, ch)
	}
	return out
}
