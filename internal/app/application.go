package app

import (
	"pizza-order-form/internal/config"
	"pizza-order-form/internal/controllers"
	"pizza-order-form/internal/logger"
	"pizza-order-form/internal/services"
	"pizza-order-form/internal/shutdown"
	"pizza-order-form/internal/views"

	"fyne.io/fyne/v2"
)

const (
	AppName    = "Pizza Order Form"
	AppID      = "com.example.pizzaorderform"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	view       *views.MainView
	controller *controllers.OrderController
	lifecycle  *Lifecycle
}

// NewApplication builds the window, view and controller on top of fyneApp
// and wires them together. Shutdown options are passed to the lifecycle.
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger, opts ...shutdown.Option) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"json_logs":     cfg.JSONLogs,
	})

	lifecycle := NewLifecycle(shutdown.NewManager(log, opts...), log)
	controller := controllers.NewOrderController(services.NewPricingService(), log, lifecycle)
	view := views.NewMainView(window)

	lifecycle.Register(controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		view:       view,
		controller: controller,
		lifecycle:  lifecycle,
	}

	application.setupHandlers()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	handlers := NewHandlers(a.controller, a.logger)

	a.view.SetCrustChangeHandler(handlers.HandleCrustChange)
	a.view.SetSizeChangeHandler(handlers.HandleSizeChange)
	a.view.SetToppingChangeHandler(handlers.HandleToppingChange)
	a.view.SetSubmitHandler(handlers.HandleSubmit)
	a.view.SetClearHandler(handlers.HandleClear)
	a.view.SetQuitHandler(handlers.HandleQuit)

	for _, eventType := range []string{
		controllers.EventOrderSubmitted,
		controllers.EventOrderCleared,
		controllers.EventQuitConfirmed,
		controllers.EventQuitDeclined,
	} {
		a.controller.Subscribe(eventType, handlers.HandleOrderEvent)
	}

	a.controller.SetView(a.view)

	// Closing the window exits straight away, unlike the Quit button.
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.lifecycle.Exit(0)
	})
}

// Run shows the window and blocks in the Fyne event loop.
func (a *Application) Run() error {
	a.lifecycle.Listen()

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

func (a *Application) Controller() *controllers.OrderController {
	return a.controller
}

func (a *Application) View() *views.MainView {
	return a.view
}
