package main

import (
	"log/slog"
	"os"
	"sync"

	"github.com/andrewthehan/hovertip/internal/app"
	"github.com/andrewthehan/hovertip/internal/ui"
)

func main() {
	rt, err := app.Initialize()
	if err != nil {
		slog.Error("initialize demo runtime", "error", err)
		os.Exit(1)
	}

	var closeOnce sync.Once
	closeRuntime := func() {
		closeOnce.Do(func() {
			_ = rt.Close()
		})
	}
	defer closeRuntime()

	err = ui.Run(ui.Dependencies{
		Config: rt.Config,
		Bus:    rt.Bus,
		Logger: rt.LogManager.Logger("ui"),
		OnQuit: closeRuntime,
	})
	if err != nil {
		slog.Error("run ui", "error", err)
		os.Exit(1)
	}
}
