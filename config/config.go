package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/anyproto/any-stark/app"
	"github.com/anyproto/any-stark/app/logger"
)

const CName = "config"

const (
	CurveStark     = "stark"
	CurveSecp256k1 = "secp256k1"
)

var log = logger.NewNamed(CName)

func NewFromFile(path string) (c *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (c *Config, err error) {
	c = Default()
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func Default() *Config {
	return &Config{
		Curve: Curve{Name: CurveStark},
		Log:   logger.Config{DefaultLevel: "info"},
	}
}

type Curve struct {
	Name string `yaml:"name"`
}

type Config struct {
	Curve Curve         `yaml:"curve"`
	Log   logger.Config `yaml:"log"`
}

func (c *Config) Validate() error {
	switch c.Curve.Name {
	case CurveStark, CurveSecp256k1:
		return nil
	default:
		return fmt.Errorf("unknown curve %q", c.Curve.Name)
	}
}

func (c *Config) Init(a *app.App) (err error) {
	log.Debug("config loaded", zap.String("curve", c.Curve.Name))
	return
}

func (c *Config) Name() (name string) {
	return CName
}

func (c *Config) GetCurve() Curve {
	return c.Curve
}

func (c *Config) GetLogger() logger.Config {
	return c.Log
}
