package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Passphrase  string        `env:"SECRETSANTA_PASSPHRASE"`                    // seals output and unlocks sealed files
	NotifyURL   string        `env:"SECRETSANTA_NOTIFY_URL"`                    // webhook base URL, e.g. http://127.0.0.1:8080
	LogLevel    string        `env:"SECRETSANTA_LOG_LEVEL" envDefault:"info"`   // debug, info, warn, error
	LogFormat   string        `env:"SECRETSANTA_LOG_FORMAT" envDefault:"text"`  // text or json
	HTTPTimeout time.Duration `env:"SECRETSANTA_HTTP_TIMEOUT" envDefault:"10s"` // per notification request
	Seed        string        // optional phrase for a reproducible draw

	HTTP *http.Client // optional; defaults to a client with HTTPTimeout
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
