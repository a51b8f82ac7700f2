package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogFormat int

const (
	ColorizedOutput LogFormat = iota
	PlaintextOutput
	JSONOutput
)

type NamedLevel struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

type Config struct {
	Production   bool         `yaml:"production"`
	DefaultLevel string       `yaml:"defaultLevel"`
	Levels       []NamedLevel `yaml:"levels"` // first match will be used
	Format       LogFormat    `yaml:"format"`
}

// ZapConfig builds the zap configuration described by l
func (l Config) ZapConfig() zap.Config {
	var conf zap.Config
	if l.Production {
		conf = zap.NewProductionConfig()
	} else {
		conf = zap.NewDevelopmentConfig()
	}
	encConfig := conf.EncoderConfig
	switch l.Format {
	case PlaintextOutput:
		encConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		conf.Encoding = "console"
	case JSONOutput:
		encConfig.MessageKey = "msg"
		encConfig.TimeKey = "ts"
		encConfig.LevelKey = "level"
		encConfig.NameKey = "logger"
		encConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		conf.Encoding = "json"
	default:
		conf.Encoding = "console"
		encConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	conf.EncoderConfig = encConfig
	// CLI output goes to stdout, keep logs on stderr only
	conf.OutputPaths = []string{"stderr"}
	if lvl, err := zap.ParseAtomicLevel(l.DefaultLevel); err == nil {
		conf.Level = lvl
	}
	return conf
}

// ApplyGlobal replaces the default logger and the named levels
func (l Config) ApplyGlobal() error {
	if err := SetDefaultConfig(l.ZapConfig()); err != nil {
		return err
	}
	SetNamedLevels(l.Levels)
	return nil
}
