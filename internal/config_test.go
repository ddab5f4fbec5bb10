package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", "/tmp/list-sync")
	t.Setenv("JWT_SECRET", "secret")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.Equal(8080, config.Port)
	req.Equal(30*time.Second, config.HeartbeatInterval)
	req.Equal(5*time.Minute, config.SweepInterval)
	req.Equal(5*time.Minute, config.StalenessThreshold)
	req.Equal(1024, config.PublishQueueSize)
	req.NoError(config.Validate())
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		HeartbeatInterval:      30 * time.Second,
		SweepInterval:          time.Minute,
		StalenessThreshold:     time.Minute,
		PublishQueueSize:       8,
		NumberOfPublishWorkers: 1,
		MetricInterval:         time.Second,
		RestartInterval:        time.Second,
		WriteTimeout:           time.Second,
		HighCapacityPercent:    80,
	}
	require.NoError(t, valid.Validate())

	cases := map[string]func(c *Config){
		"no heartbeat":                 func(c *Config) { c.HeartbeatInterval = 0 },
		"no sweep":                     func(c *Config) { c.SweepInterval = 0 },
		"staleness shorter than ping":  func(c *Config) { c.StalenessThreshold = 10 * time.Second },
		"staleness equal to heartbeat": func(c *Config) { c.StalenessThreshold = c.HeartbeatInterval },
		"no queue":                     func(c *Config) { c.PublishQueueSize = 0 },
		"no publish worker":            func(c *Config) { c.NumberOfPublishWorkers = 0 },
		"no metric interval":           func(c *Config) { c.MetricInterval = 0 },
		"negative restart interval":    func(c *Config) { c.RestartInterval = -time.Second },
		"no write timeout":             func(c *Config) { c.WriteTimeout = 0 },
		"no high capacity mark":        func(c *Config) { c.HighCapacityPercent = 0 },
		"high capacity above 100":      func(c *Config) { c.HighCapacityPercent = 101 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			config := valid
			mutate(&config)
			require.Error(t, config.Validate())
		})
	}
}
