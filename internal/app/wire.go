package app

import (
	"net/http"
	"os"

	"secretsanta/internal/crypto"
	"secretsanta/internal/domain"
	"secretsanta/internal/logging"
	"secretsanta/internal/notify"
	"secretsanta/internal/services/assigner"
	"secretsanta/internal/services/draw"
	"secretsanta/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Store    *store.CSVFileStore
	Assigner domain.Assigner
	Notifier domain.Notifier // nil without NotifyURL
	Draws    domain.DrawService
	Logger   logging.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	logger, err := logging.New(os.Stderr, cfg.LogLevel, logging.Format(cfg.LogFormat))
	if err != nil {
		return nil, err
	}

	fileStore := store.NewCSVFileStore()

	opts := []assigner.Option{assigner.WithLogger(logger)}
	if cfg.Seed != "" {
		opts = append(opts, assigner.WithSeed(crypto.SeedFromPhrase(cfg.Seed)))
	}
	asg, err := assigner.New(opts...)
	if err != nil {
		return nil, err
	}

	// Notifications are optional; leave the interface nil rather than holding a nil *HTTPClient.
	var notifier domain.Notifier
	if cfg.NotifyURL != "" {
		httpClient := cfg.HTTP
		if httpClient == nil {
			httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
		}
		notifier = notify.NewHTTP(cfg.NotifyURL, httpClient)
	}

	draws := draw.New(fileStore, fileStore, fileStore, asg, notifier, logger)

	return &Wire{
		Store:    fileStore,
		Assigner: asg,
		Notifier: notifier,
		Draws:    draws,
		Logger:   logger,
	}, nil
}
