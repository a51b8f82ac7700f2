package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetLevel(t *testing.T) {
	SetNamedLevels([]NamedLevel{
		{Name: "app", Level: "debug"},
		{Name: "curve.*", Level: "warn"},
		{Name: "bad", Level: "nope"},
		{Name: "*", Level: "fatal"},
	})
	defer SetNamedLevels(nil)

	tests := []struct {
		name string
		want zapcore.Level
	}{
		{name: "app", want: zap.DebugLevel},
		{name: "curve.stark", want: zap.WarnLevel},
		{name: "bad", want: zap.FatalLevel},
		{name: "random", want: zap.FatalLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getLevel(tt.name).Level())
		})
	}
}

func TestNamedFollowsDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	l := NewNamed("test.follow")
	core, logs := observer.New(zap.InfoLevel)
	SetDefault(zap.New(core))

	l.Info("hello", zap.String("k", "v"))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "test.follow", entry.LoggerName)
	assert.Equal(t, "hello", entry.Message)
	assert.Same(t, l, NewNamed("test.follow"))
}

func TestConfigZapConfig(t *testing.T) {
	conf := Config{DefaultLevel: "warn", Format: JSONOutput}.ZapConfig()
	assert.Equal(t, "json", conf.Encoding)
	assert.Equal(t, zap.WarnLevel, conf.Level.Level())
	assert.Equal(t, []string{"stderr"}, conf.OutputPaths)

	conf = Config{Format: PlaintextOutput}.ZapConfig()
	assert.Equal(t, "console", conf.Encoding)
}

func TestNamedLevelBelowDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)
	defer SetNamedLevels(nil)

	require.NoError(t, Config{DefaultLevel: "info", Levels: []NamedLevel{
		{Name: "curve.*", Level: "debug"},
	}}.ApplyGlobal())

	named := NewNamed("curve.stark")
	other := NewNamed("keycodec.test")
	assert.NotNil(t, named.Check(zap.DebugLevel, "debug"))
	assert.Nil(t, other.Check(zap.DebugLevel, "debug"))
	assert.NotNil(t, other.Check(zap.InfoLevel, "info"))
	assert.Nil(t, Default().Check(zap.DebugLevel, "debug"))

	SetNamedLevels(nil)
	assert.Nil(t, named.Check(zap.DebugLevel, "debug"))
	assert.Equal(t, zap.InfoLevel, base.Level())
}

func TestNamedLevelBelowDirectDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)
	defer SetNamedLevels(nil)

	core, logs := observer.New(zap.InfoLevel)
	SetDefault(zap.New(core))
	SetNamedLevels([]NamedLevel{{Name: "curve.*", Level: "debug"}})

	l := NewNamed("curve.secp256k1")
	l.Debug("dropped")
	l.Info("kept")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}
