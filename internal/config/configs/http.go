package configs

// HTTP defines configuration for the report API. When Enabled is set the
// process keeps serving the registry after the pipeline run until it
// receives SIGINT or SIGTERM.
type HTTP struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080" validate:"required"`
}
