package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=8080"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	DebugPort      int    `env:"DEBUG_PORT,default=8081"`

	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`

	HeartbeatInterval  time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
	SweepInterval      time.Duration `env:"SWEEP_INTERVAL,default=5m"`
	StalenessThreshold time.Duration `env:"STALENESS_THRESHOLD,default=5m"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT,default=10s"`

	PublishQueueSize       int           `env:"PUBLISH_QUEUE_SIZE,default=1024"`
	NumberOfPublishWorkers int           `env:"NUMBER_OF_PUBLISH_WORKERS,default=4"`
	RestartInterval        time.Duration `env:"RESTART_INTERVAL,default=1s"`
	ShutdownTimeout        time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	MetricInterval      time.Duration `env:"METRIC_INTERVAL,default=30s"`
	HighCapacityPercent int           `env:"HIGH_CAPACITY_PERCENT,default=80"`
}

// Validate rejects settings under which dead connections would never be detected
// or a ticker-driven worker could not start.
func (c Config) Validate() error {
	if c.HeartbeatInterval <= 0 || c.SweepInterval <= 0 {
		return fmt.Errorf("HEARTBEAT_INTERVAL and SWEEP_INTERVAL must be positive")
	}
	if c.StalenessThreshold <= c.HeartbeatInterval {
		return fmt.Errorf(
			"STALENESS_THRESHOLD (%s) must exceed HEARTBEAT_INTERVAL (%s)",
			c.StalenessThreshold, c.HeartbeatInterval,
		)
	}
	if c.PublishQueueSize <= 0 || c.NumberOfPublishWorkers <= 0 {
		return fmt.Errorf("PUBLISH_QUEUE_SIZE and NUMBER_OF_PUBLISH_WORKERS must be positive")
	}
	if c.MetricInterval <= 0 || c.RestartInterval <= 0 || c.WriteTimeout <= 0 {
		return fmt.Errorf("METRIC_INTERVAL, RESTART_INTERVAL and WRITE_TIMEOUT must be positive")
	}
	if c.HighCapacityPercent <= 0 || c.HighCapacityPercent > 100 {
		return fmt.Errorf("HIGH_CAPACITY_PERCENT (%d) must be within 1 and 100", c.HighCapacityPercent)
	}
	return nil
}
