package main

import (
	"fmt"
	"os"
	"runtime"

	"pizza-order-form/internal/app"
	"pizza-order-form/internal/config"
	"pizza-order-form/internal/logger"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration failed: %v\n", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration failed: %v\n", err)
		os.Exit(1)
	}
	appLogger := logger.New(level, cfg.JSONLogs)

	appLogger.Debug("Main", "runtime", map[string]interface{}{
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
	})

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      app.AppID,
		Name:    app.AppName,
		Version: app.AppVersion,
	})
	fyneApp := fyneapp.NewWithID(app.AppID)

	application, err := app.NewApplication(fyneApp, cfg, appLogger)
	if err != nil {
		appLogger.Error("Main", err, nil)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		appLogger.Error("Main", err, nil)
		os.Exit(1)
	}
}
