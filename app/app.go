package app

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/anyproto/any-stark/app/logger"
)

var (
	// values of this vars will be defined while compilation
	GitCommit, GitBranch, GitState, GitSummary, BuildDate string
)

var log = logger.NewNamed("app")

// Component is a minimal interface for a common app.Component
type Component interface {
	// Init will be called first
	// When returned error is not nil - app start will be aborted
	Init(a *App) (err error)
	// Name must return unique service name
	Name() (name string)
}

// App contains and manages all components
type App struct {
	components []Component
	mu         sync.RWMutex
}

func VersionDescription() string {
	return fmt.Sprintf("build on %s from %s at #%s(%s)", BuildDate, GitBranch, GitCommit, GitState)
}

// Register adds a component to the registry
// Components are initialized in the order they were registered
func (app *App) Register(s Component) *App {
	app.mu.Lock()
	defer app.mu.Unlock()
	for _, es := range app.components {
		if s.Name() == es.Name() {
			panic(fmt.Errorf("component '%s' already registered", s.Name()))
		}
	}
	app.components = append(app.components, s)
	return app
}

// Component returns a component by name or nil
func (app *App) Component(name string) Component {
	app.mu.RLock()
	defer app.mu.RUnlock()
	for _, s := range app.components {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// MustComponent is like Component, but it will panic if the component wasn't found
func (app *App) MustComponent(name string) Component {
	s := app.Component(name)
	if s == nil {
		panic(fmt.Errorf("component '%s' not registered", name))
	}
	return s
}

// ComponentNames returns all registered names
func (app *App) ComponentNames() (names []string) {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.names()
}

func (app *App) names() (names []string) {
	names = make([]string, len(app.components))
	for i, c := range app.components {
		names[i] = c.Name()
	}
	return
}

// Start initializes all components in registration order
// The first failing Init aborts the start
func (app *App) Start() (err error) {
	app.mu.RLock()
	defer app.mu.RUnlock()
	for _, s := range app.components {
		if err = s.Init(app); err != nil {
			return fmt.Errorf("can't init component '%s': %w", s.Name(), err)
		}
	}
	log.Debug("all components initialized", zap.Strings("components", app.names()))
	return
}
