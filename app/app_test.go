package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	inits []string
}

type comp struct {
	name string
	err  error
	rec  *recorder
	app  *App
}

func (c *comp) Init(a *App) error {
	c.app = a
	c.rec.inits = append(c.rec.inits, c.name)
	return c.err
}

func (c *comp) Name() string { return c.name }

func TestApp_Registry(t *testing.T) {
	a := new(App)
	rec := new(recorder)
	a.Register(&comp{name: "config", rec: rec}).
		Register(&comp{name: "curve.provider", rec: rec})

	assert.Panics(t, func() { a.Register(&comp{name: "config", rec: rec}) })
	assert.Equal(t, []string{"config", "curve.provider"}, a.ComponentNames())

	assert.Nil(t, a.Component("keycodec"))
	require.NotNil(t, a.Component("curve.provider"))
	assert.Equal(t, "curve.provider", a.MustComponent("curve.provider").Name())
	assert.Panics(t, func() { a.MustComponent("keycodec") })
}

func TestApp_Start(t *testing.T) {
	t.Run("init in registration order", func(t *testing.T) {
		a := new(App)
		rec := new(recorder)
		comps := []*comp{
			{name: "config", rec: rec},
			{name: "curve.provider", rec: rec},
			{name: "keycodec", rec: rec},
		}
		for _, c := range comps {
			a.Register(c)
		}
		require.NoError(t, a.Start())
		assert.Equal(t, []string{"config", "curve.provider", "keycodec"}, rec.inits)
		for _, c := range comps {
			assert.Same(t, a, c.app)
		}
	})
	t.Run("init error stops the start", func(t *testing.T) {
		a := new(App)
		rec := new(recorder)
		initErr := errors.New("bad curve")
		a.Register(&comp{name: "config", rec: rec}).
			Register(&comp{name: "curve.provider", err: initErr, rec: rec}).
			Register(&comp{name: "keycodec", rec: rec})

		err := a.Start()
		require.ErrorIs(t, err, initErr)
		assert.Contains(t, err.Error(), "curve.provider")
		assert.Equal(t, []string{"config", "curve.provider"}, rec.inits)
	})
}
