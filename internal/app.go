package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	logger_adapter "catalog-service/internal/adapters/logger"
	"catalog-service/internal/adapters/memory"
	mongodb_adapter "catalog-service/internal/adapters/mongodb"
	postgres_adapter "catalog-service/internal/adapters/postgres"
	rabbitmq_adapter "catalog-service/internal/adapters/rabbitmq"
	"catalog-service/internal/adapters/rest"
	"catalog-service/internal/configs"
	"catalog-service/internal/constants"
	"catalog-service/internal/contracts"
	"catalog-service/internal/core/location"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/usecase"

	fluentlogger "catalog-service/pkg/fluent_logger"
	"catalog-service/pkg/mongodb"
	"catalog-service/pkg/postgres"
	"catalog-service/pkg/rabbitmq/rabbitmq_common"
	"catalog-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	storage      port.ListingStoragePort
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	connManager    *rabbitmq_common.ConnectionManager
	eventsProducer *rabbitmq_producer.Publisher
}

// NewApp - composition root: создает и связывает все зависимости
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- логгеры ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, appConfig.AppName, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	application := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	// --- хранилище ---
	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	storage, err := newListingStorage(startupCtx, appConfig, appLogger)
	if err != nil {
		application.closeResources()
		return nil, err
	}
	application.storage = storage

	// --- события ---
	events, err := application.newListingEvents(baseLogger)
	if err != nil {
		application.closeResources()
		return nil, err
	}

	// --- use cases ---
	resolver := location.Default()

	createListingUC, err := usecase.NewCreateListingUseCase(storage, events)
	if err != nil {
		application.closeResources()
		return nil, err
	}
	updateListingUC, err := usecase.NewUpdateListingUseCase(storage, events)
	if err != nil {
		application.closeResources()
		return nil, err
	}
	changeStatusUC, err := usecase.NewChangeListingStatusUseCase(storage, events)
	if err != nil {
		application.closeResources()
		return nil, err
	}
	deleteListingUC, err := usecase.NewDeleteListingUseCase(storage, events)
	if err != nil {
		application.closeResources()
		return nil, err
	}
	getListingUC, err := usecase.NewGetListingUseCase(storage)
	if err != nil {
		application.closeResources()
		return nil, err
	}
	findListingsUC, err := usecase.NewFindListingsUseCase(storage)
	if err != nil {
		application.closeResources()
		return nil, err
	}
	getFilterOptionsUC, err := usecase.NewGetFilterOptionsUseCase(storage, resolver)
	if err != nil {
		application.closeResources()
		return nil, err
	}
	getLocationsUC, err := usecase.NewGetLocationsUseCase(resolver)
	if err != nil {
		application.closeResources()
		return nil, err
	}
	getDictionariesUC := usecase.NewGetDictionariesUseCase()

	appLogger.Info("All use cases initialized.", nil)

	// --- REST API ---
	listingHandler := rest.NewListingHandler(createListingUC, updateListingUC, changeStatusUC, deleteListingUC, getListingUC)
	searchHandler := rest.NewSearchHandler(findListingsUC, rest.PagingConfig{
		DefaultPerPage: appConfig.Paging.DefaultPageSize,
		MaxPerPage:     appConfig.Paging.MaxPageSize,
	})
	filterHandler := rest.NewFilterHandler(getFilterOptionsUC, getDictionariesUC)
	locationHandler := rest.NewLocationHandler(getLocationsUC)

	application.apiServer = rest.NewServer(rest.ServerConfig{
		Port:           appConfig.Rest.Port,
		AllowedOrigins: appConfig.Rest.CORSAllowedOrigins,
	}, listingHandler, searchHandler, filterHandler, locationHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return application, nil
}

// newListingStorage выбирает реализацию хранилища по STORAGE_DRIVER
func newListingStorage(ctx context.Context, cfg *configs.AppConfig, appLogger port.LoggerPort) (port.ListingStoragePort, error) {
	switch cfg.Storage.Driver {
	case configs.StoragePostgres:
		dbPool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: cfg.Database.URL})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		adapter, err := postgres_adapter.NewListingStorageAdapter(dbPool)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to create postgres storage adapter: %w", err)
		}
		if err := adapter.EnsureSchema(ctx); err != nil {
			appLogger.Error("Failed to ensure listings schema", err, nil)
			dbPool.Close()
			return nil, err
		}
		appLogger.Info("Postgres storage adapter initialized.", nil)
		return adapter, nil

	case configs.StorageMongo:
		client, db, err := mongodb.NewClient(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			appLogger.Error("Failed to connect to MongoDB", err, nil)
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		appLogger.Info("Successfully connected to MongoDB!", port.Fields{"database": cfg.Mongo.Database})

		adapter, err := mongodb_adapter.NewListingStorageAdapter(client, db)
		if err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("failed to create mongo storage adapter: %w", err)
		}
		if err := adapter.EnsureIndexes(ctx); err != nil {
			appLogger.Error("Failed to ensure listing indexes", err, nil)
			_ = adapter.Close()
			return nil, err
		}
		appLogger.Info("Mongo storage adapter initialized.", nil)
		return adapter, nil

	case configs.StorageMemory:
		appLogger.Warn("Using in-memory storage, data will be lost on restart", nil)
		return memory.NewListingStorageAdapter(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// newListingEvents поднимает публикацию в RabbitMQ или отключает события
func (a *App) newListingEvents(baseLogger port.LoggerPort) (port.ListingEventsPort, error) {
	if !a.config.RabbitMQ.Enabled {
		a.logger.Info("RabbitMQ disabled, listing events will be dropped.", nil)
		return rabbitmq_adapter.NewNoopListingEventsAdapter(), nil
	}

	connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
	connManager, err := rabbitmq_common.NewConnectionManager(
		rabbitmq_common.Config{URL: a.config.RabbitMQ.URL},
		rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger),
	)
	if err != nil {
		a.logger.Error("Failed to create connection manager", err, nil)
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager
	a.logger.Info("RabbitMQ Connection Manager initialized.", nil)

	producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: a.config.RabbitMQ.URL},
		ExchangeName:             constants.ListingEventsExchange,
		ExchangeType:             constants.ListingEventsExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,

		Logger: rabbitmq_adapter.NewPkgLoggerBridge(producerLogger),
	}, connManager)
	if err != nil {
		a.logger.Error("Failed to create event producer", err, nil)
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	a.eventsProducer = producer
	a.logger.Info("RabbitMQ Event Producer initialized.", nil)

	registry, err := contracts.DefaultRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load event schemas: %w", err)
	}
	return rabbitmq_adapter.NewListingEventsPublisherAdapter(producer, registry)
}

// Run запускает HTTP-сервер и ждет сигнала или ошибки
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}

		a.closeResources()
	}()

	a.logger.Info("Application is starting...", port.Fields{"storage_driver": a.config.Storage.Driver})

	errorsCh := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
		return err
	}
}

// closeResources закрывает всё, что успело открыться; порядок обратный созданию
func (a *App) closeResources() {
	if a.eventsProducer != nil {
		if err := a.eventsProducer.Close(); err != nil {
			a.logger.Error("Error closing event producer", err, nil)
		}
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection manager", err, nil)
		}
	}
	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			a.logger.Error("Error closing listing storage", err, nil)
		} else {
			a.logger.Info("Listing storage closed.", nil)
		}
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent может быть уже недоступен
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
