package app

import (
	"fmt"
	"os"
	"time"

	"commtool/internal/comm"
	"commtool/internal/config"
	"commtool/internal/fsgateway"
	"commtool/internal/store"
)

// App is the application layer between the CLI and the comm.Service.
// It constructs all dependencies from config and owns the log file
// lifecycle.
type App struct {
	cfg     *config.Config
	service *comm.Service
	logFile *os.File
}

// NewApp creates a fully wired App from the given config. operation
// identifies the CLI command being run (e.g. "MigrateLegacy"). The
// caller must call Close when done.
func NewApp(cfg *config.Config, operation string) (*App, error) {
	opID := time.Now().UTC().Format("20060102T150405Z") + "-" + operation
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	gateway := fsgateway.NewOSGateway()
	layout := store.Layout{Root: cfg.DataRoot}
	log := &slogAdapter{l: logger}
	clock := comm.RealClock{}
	idgen := comm.RandomIDGenerator{Clock: clock}

	legacy := store.NewLegacyStore(gateway, layout)
	svc := comm.NewService(
		store.NewConfigStore(gateway, layout),
		legacy,
		store.NewEntityStore(gateway, layout, legacy, log),
		store.NewReferenceStore(gateway, layout, log),
		store.NewTempStaging(gateway, layout, idgen, log),
		store.NewBackgroundStore(gateway, layout),
		store.NewWiper(gateway, layout, log),
		gateway,
		cfg.DataRoot,
		log,
		clock,
		idgen,
	)

	return &App{cfg: cfg, service: svc, logFile: logFile}, nil
}

// Service returns the wired operation surface.
func (a *App) Service() *comm.Service { return a.service }

// Close releases the log file.
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}
