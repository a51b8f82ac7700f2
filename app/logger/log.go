package logger

import (
	"sync"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu sync.Mutex
	// loggerConfig is nil when the default logger was set directly
	loggerConfig *zap.Config
	defaultLevel zapcore.Level
	// base may be built with a lower level than defaultLevel to serve named loggers
	base         *zap.Logger
	logger       *zap.Logger
	namedLevels  []namedLevel
	namedLoggers = make(map[string]*zap.Logger)
)

type namedLevel struct {
	name  string
	glob  glob.Glob
	level zap.AtomicLevel
}

func init() {
	conf := zap.NewDevelopmentConfig()
	_ = SetDefaultConfig(conf)
}

// SetDefault replaces the default logger, existing named loggers are rebuilt on top of it
// named levels below the level of l are raised to it
func SetDefault(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	loggerConfig = nil
	defaultLevel = l.Level()
	base = l
	rebuild()
}

// SetDefaultConfig builds the default logger from conf
// the config is kept so the logger can be rebuilt when a named level is below the default one
func SetDefaultConfig(conf zap.Config) error {
	l, err := conf.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	loggerConfig = &conf
	defaultLevel = conf.Level.Level()
	base = l
	rebuild()
	return nil
}

// SetNamedLevels sets levels for named loggers
// names may be glob patterns, like "curve.*"
func SetNamedLevels(nls []NamedLevel) {
	mu.Lock()
	defer mu.Unlock()
	namedLevels = namedLevels[:0]
	for _, nl := range nls {
		l, err := zap.ParseAtomicLevel(nl.Level)
		if err != nil {
			continue
		}
		g, err := glob.Compile(nl.Name)
		if err != nil {
			continue
		}
		namedLevels = append(namedLevels, namedLevel{name: nl.Name, glob: g, level: l})
	}
	rebuild()
}

func Default() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// getLevel returns the first level whose name or pattern matches
func getLevel(name string) zap.AtomicLevel {
	for _, nl := range namedLevels {
		if nl.name == name || nl.glob.Match(name) {
			return nl.level
		}
	}
	return zap.NewAtomicLevelAt(defaultLevel)
}

func minLevel() zapcore.Level {
	lvl := defaultLevel
	for _, nl := range namedLevels {
		if nl.level.Level() < lvl {
			lvl = nl.level.Level()
		}
	}
	return lvl
}

// rebuild recreates the base logger when the lowest requested level changed
// and points the default and named loggers to it
func rebuild() {
	if loggerConfig != nil {
		if lvl := minLevel(); lvl != base.Level() {
			conf := *loggerConfig
			conf.Level = zap.NewAtomicLevelAt(lvl)
			if l, err := conf.Build(); err == nil {
				base = l
			}
		}
	}
	logger = base.WithOptions(zap.IncreaseLevel(clamp(defaultLevel)))
	for name, l := range namedLoggers {
		*l = *newNamed(name)
	}
}

// clamp raises lvl to the base level, the base core never logs below it
func clamp(lvl zapcore.Level) zapcore.Level {
	if b := base.Level(); lvl < b {
		return b
	}
	return lvl
}

func newNamed(name string) *zap.Logger {
	lvl := clamp(getLevel(name).Level())
	return zap.New(base.Core()).Named(name).WithOptions(zap.IncreaseLevel(lvl))
}

// NewNamed returns a logger with the given name
// the returned pointer stays valid after SetDefault or SetNamedLevels
func NewNamed(name string) *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := namedLoggers[name]; ok {
		return l
	}
	l := newNamed(name)
	namedLoggers[name] = l
	return l
}
