package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Database.validate(),
		c.Store.validate(),
		c.Feed.validate(),
		c.Health.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	if d.Path == "" {
		errs = append(errs, errors.New("database.path must not be empty"))
	}
	if d.MaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_open_conns must be >= 1, got %d", d.MaxOpenConns))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	cb := s.CircuitBreaker
	if cb.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("store.circuit_breaker.max_failures must be >= 1, got %d", cb.MaxFailures))
	}
	if cb.Timeout <= 0 {
		errs = append(errs, errors.New("store.circuit_breaker.timeout must be positive"))
	}
	if cb.HalfOpenLimit < 1 {
		errs = append(errs, fmt.Errorf("store.circuit_breaker.half_open_limit must be >= 1, got %d", cb.HalfOpenLimit))
	}

	return errors.Join(errs...)
}

func (f *FeedConfig) validate() error {
	var errs []error

	if f.BufferSize < 1 {
		errs = append(errs, fmt.Errorf("feed.buffer_size must be >= 1, got %d", f.BufferSize))
	}
	if f.WriteTimeout <= 0 {
		errs = append(errs, errors.New("feed.write_timeout must be positive"))
	}
	if f.PingInterval <= 0 {
		errs = append(errs, errors.New("feed.ping_interval must be positive"))
	}
	if f.ConnectRate <= 0 {
		errs = append(errs, fmt.Errorf("feed.connect_rate must be positive, got %f", f.ConnectRate))
	}
	if f.ConnectBurst < 1 {
		errs = append(errs, fmt.Errorf("feed.connect_burst must be >= 1, got %d", f.ConnectBurst))
	}

	return errors.Join(errs...)
}

func (h *HealthConfig) validate() error {
	if h.CheckTimeout <= 0 {
		return errors.New("health.check_timeout must be positive")
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
