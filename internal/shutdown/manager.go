package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"pizza-order-form/internal/logger"
)

const componentTimeout = 5 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Manager runs registered shutdown hooks and terminates the process.
type Manager struct {
	components []Shutdownable
	logger     logger.Logger
	exit       func(code int)
	mu         sync.Mutex
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

type Option func(*Manager)

// WithExitFunc replaces os.Exit, mainly for tests.
func WithExitFunc(fn func(code int)) Option {
	return func(m *Manager) {
		m.exit = fn
	}
}

func NewManager(log logger.Logger, opts ...Option) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Manager{
		components: make([]Shutdownable, 0),
		logger:     log,
		exit:       os.Exit,
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen turns SIGINT and SIGTERM into a call to onSignal. A nil onSignal
// exits with status 0 directly from the signal goroutine.
func (m *Manager) Listen(onSignal func(os.Signal)) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			if onSignal != nil {
				onSignal(sig)
				return
			}
			m.Exit(0)
		case <-m.ctx.Done():
			signal.Stop(sigChan)
		}
	}()
}

// Shutdown runs the registered components in reverse registration order.
// Only the first call does any work.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		component := m.components[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			component.Shutdown()
		}()

		select {
		case <-done:
		case <-time.After(componentTimeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component_index": i,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

// Exit shuts down and terminates the process with code.
func (m *Manager) Exit(code int) {
	m.Shutdown()
	m.logger.Debug("ShutdownManager", "exiting", map[string]interface{}{
		"code": code,
	})
	m.exit(code)
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
