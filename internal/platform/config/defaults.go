package config

const (
	defaultServerPort = 8080

	defaultDatabaseMaxOpenConns = 4

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultFeedBufferSize   = 64
	defaultFeedConnectRate  = 20.0
	defaultFeedConnectBurst = 40
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "30s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"database.path":           "tracker.db",
		"database.max_open_conns": defaultDatabaseMaxOpenConns,

		"store.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.circuit_breaker.timeout":         "30s",
		"store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"feed.buffer_size":     defaultFeedBufferSize,
		"feed.write_timeout":   "10s",
		"feed.ping_interval":   "30s",
		"feed.allowed_origins": []string{},
		"feed.connect_rate":    defaultFeedConnectRate,
		"feed.connect_burst":   defaultFeedConnectBurst,

		"health.check_timeout": "2s",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "project-tracker",
	}
}
