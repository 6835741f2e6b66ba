package app

import (
	"fmt"
	"log/slog"

	"github.com/andrewthehan/hovertip/internal/bus"
	"github.com/andrewthehan/hovertip/internal/config"
	"github.com/andrewthehan/hovertip/internal/logging"
	"github.com/andrewthehan/hovertip/internal/watcher"
)

// Runtime bundles everything the demo UI needs: loaded config, logging,
// the message bus, and the config file watcher feeding it.
type Runtime struct {
	Paths  Paths
	Config config.AppConfig

	LogManager *logging.Manager
	Bus        *bus.PubSubBus
	Watcher    *watcher.ConfigWatcher
}

func Initialize() (*Runtime, error) {
	paths, err := ResolvePaths()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(paths.ConfigFile)
	if err != nil {
		return nil, err
	}

	logMgr := logging.NewManager()
	if err := logMgr.Configure(cfg.Logging, paths.LogFile); err != nil {
		_ = logMgr.Close()
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	rt := &Runtime{
		Paths:      paths,
		Config:     cfg,
		LogManager: logMgr,
		Bus:        bus.New(logMgr.Logger("bus")),
	}

	cw, err := watcher.New(paths.ConfigFile, logMgr.Logger("config.watcher"), watcher.Callbacks{
		OnReload: func(reloaded config.AppConfig) {
			rt.Bus.Publish(bus.TopicConfigReloaded, reloaded)
		},
	})
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	if err := cw.Start(); err != nil {
		_ = rt.Close()
		return nil, err
	}
	rt.Watcher = cw

	slog.Info("starting hovertip demo", "version", BuildVersion())

	return rt, nil
}

// SaveConfig persists the config; the watcher observes the write and
// republishes it on the bus.
func (rt *Runtime) SaveConfig(cfg config.AppConfig) error {
	rt.Config = cfg

	return config.Save(rt.Paths.ConfigFile, cfg)
}

func (rt *Runtime) Close() error {
	if rt.Watcher != nil {
		rt.Watcher.Stop()
	}
	if rt.Bus != nil {
		rt.Bus.Close()
	}
	if rt.LogManager != nil {
		return rt.LogManager.Close()
	}

	return nil
}
