package main

import (
	"roomly/internal/rooms/handler"
	"roomly/internal/rooms/service"
	"roomly/internal/rooms/store"
	"roomly/internal/rooms/validator"
	"roomly/pkg/app"
	"roomly/pkg/config"
	"roomly/pkg/events"
)

const ServiceName = "rooms"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	cfg.LogConfiguration()
	cfg.Log.Info("Starting Rooms service")

	bookingStore := store.New()
	producer := initProducer(cfg)
	bookingService := initServices(cfg, bookingStore, producer)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewBookingHandler(bookingService, cfg.Log),
		handler.NewHealthHandler(bookingStore, cfg.Log),
	)
	serverApp.Run()

	if producer != nil {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close event producer", "error", err)
		}
	}
}

func initProducer(cfg *config.Config) *events.Producer {
	if !cfg.EventsEnabled() {
		cfg.Log.Info("Booking events disabled, no topic configured")
		return nil
	}

	producer, err := events.NewProducer(events.ProducerConfig{
		Brokers:      cfg.KafkaBrokers,
		Topic:        cfg.BookingEventsTopic,
		MaxAttempts:  cfg.KafkaProducerMaxAttempts,
		BatchTimeout: cfg.KafkaProducerBatchWait,
	})
	if err != nil {
		cfg.Log.Fatal("Failed to initialize event producer", "error", err)
	}

	cfg.Log.Info("Booking events enabled",
		"topic", cfg.BookingEventsTopic,
		"brokers", cfg.KafkaBrokers,
	)
	return producer
}

func initServices(cfg *config.Config, bookingStore *store.Store, producer *events.Producer) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)

	var publisher service.EventPublisher
	if producer != nil {
		publisher = producer
	}

	bookingService := service.NewBookingService(
		bookingStore,
		bookingValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized")
	return bookingService
}
