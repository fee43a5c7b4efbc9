package config

const (
	// DefaultPort is the port the HTTP server listens on when none is given.
	DefaultPort = "8080"

	// DefaultLogLevel is used when no log level is configured.
	DefaultLogLevel = "info"

	// DefaultDatabaseURL is intentionally empty; the URL must come from a
	// flag or the environment.
	DefaultDatabaseURL = ""
)
