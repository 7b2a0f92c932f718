package config

import "time"

const (
	DefaultPort     = "3000"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 10 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Event publishing is disabled unless a topic is configured.
	DefaultBookingEventsTopic       = ""
	DefaultKafkaBrokers             = "localhost:9092"
	DefaultKafkaProducerMaxAttempts = 3
	DefaultKafkaProducerBatchWait   = 10 * time.Millisecond
)
