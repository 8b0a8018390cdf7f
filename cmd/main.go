package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"shipment-dashboard/internal/config"
	"shipment-dashboard/internal/events"
	"shipment-dashboard/internal/infrastructure/database/postgres"
	"shipment-dashboard/internal/ingestion"
	"shipment-dashboard/internal/logger"
	"shipment-dashboard/internal/realtime"
	"shipment-dashboard/internal/routes"
	pkgmqtt "shipment-dashboard/pkg/mqtt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", env),
	)

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		logger.Fatal("Database configuration is missing. Please set DB_HOST and DB_NAME environment variables.")
	}
	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT secret is missing. Please set JWT_SECRET environment variable.")
	}

	db, err := postgres.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	shipmentRepository := postgres.NewShipmentRepository(db)
	telemetryRepository := postgres.NewTelemetryRepository(db)
	inventoryRepository := postgres.NewInventoryRepository(db)

	var publisher *events.Publisher
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Topic != "" {
		publisher = events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("Failed to close alert event publisher", zap.Error(err))
			}
		}()
	} else {
		logger.Warn("Kafka is not configured, alert events will not be published")
	}

	hub := realtime.NewHub()

	// Leave the interface nil when Kafka is off; the engine skips
	// publishing on a nil publisher.
	var alertPublisher ingestion.AlertPublisher
	if publisher != nil {
		alertPublisher = publisher
	}
	alertEngine := ingestion.NewAlertEngine(shipmentRepository, telemetryRepository, alertPublisher)

	processor := ingestion.NewProcessor(
		telemetryRepository,
		inventoryRepository,
		alertEngine,
		hub,
		cfg.Ingestion.BatchSize,
		cfg.Ingestion.WorkerCount,
		cfg.Ingestion.BufferSize,
		cfg.Ingestion.BatchTimeout(),
	)
	processor.Start()
	defer processor.Stop()

	var mqttClient *ingestion.MQTTClient
	if cfg.MQTT.Broker != "" {
		mqttClient, err = ingestion.NewMQTTClient(&ingestion.MQTTConfig{
			ClientConfig: &pkgmqtt.Config{
				Broker:               cfg.MQTT.Broker,
				ClientID:             cfg.MQTT.ClientID,
				Username:             cfg.MQTT.Username,
				Password:             cfg.MQTT.Password,
				CleanSession:         true,
				KeepAlive:            30,
				ConnectTimeout:       10,
				AutoReconnect:        true,
				MaxReconnectInterval: 2 * time.Minute,
			},
			ReportTopic:   cfg.MQTT.ReportTopic,
			LocationTopic: cfg.MQTT.LocationTopic,
			QoS:           byte(cfg.MQTT.QoS),
		}, processor)
		if err != nil {
			logger.Fatal("Failed to build MQTT ingestion client", zap.Error(err))
		}
		if err := mqttClient.Start(); err != nil {
			logger.Fatal("Failed to start MQTT ingestion client", zap.Error(err))
		}
		defer mqttClient.Stop()
	} else {
		logger.Warn("MQTT is not configured, tracker ingestion is disabled")
	}

	router := routes.SetupRoutes(cfg, db, routes.Deps{
		Live:    hub,
		Metrics: processor,
	})

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Failed to shutdown server", zap.Error(err))
	}

	log.Println("Server exited properly")
}
