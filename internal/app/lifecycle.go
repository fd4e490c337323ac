package app

import (
	"os"

	"pizza-order-form/internal/logger"
	"pizza-order-form/internal/shutdown"

	"fyne.io/fyne/v2"
)

// Lifecycle owns the single exit path of the process. Quit, window close and
// OS signals all end up in Exit.
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(manager *shutdown.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		manager: manager,
		logger:  log,
	}
}

func (l *Lifecycle) Register(component shutdown.Shutdownable) {
	l.manager.Register(component)
}

// Listen routes SIGINT and SIGTERM onto the UI goroutine before exiting.
func (l *Lifecycle) Listen() {
	l.manager.Listen(func(sig os.Signal) {
		fyne.Do(func() {
			l.Exit(0)
		})
	})
}

func (l *Lifecycle) Exit(code int) {
	l.logger.Info("Lifecycle", "exit requested", map[string]interface{}{
		"code": code,
	})
	l.manager.Exit(code)
}
