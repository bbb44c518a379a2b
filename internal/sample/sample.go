// Package sample is a host package that owns a configurable module. The
// configuron command uses it to demonstrate the configuration lifecycle.
package sample

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/configuron"
)

// Limits holds request throttling settings.
type Limits struct {
	RPS   float64 `toml:"rps" yaml:"rps" json:"rps"`
	Burst int     `toml:"burst" yaml:"burst" json:"burst"`
}

// Config is the sample package's configuration.
type Config struct {
	Host         string        `toml:"host" yaml:"host" json:"host"`
	Port         int           `toml:"port" yaml:"port" json:"port"`
	ReadTimeout  time.Duration `toml:"read_timeout" yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout" yaml:"write_timeout" json:"write_timeout"`
	Tags         []string      `toml:"tags" yaml:"tags" json:"tags"`
	Limits       Limits        `toml:"limits" yaml:"limits" json:"limits"`
	Debug        bool          `toml:"debug" yaml:"debug" json:"debug"`
}

// SetDefaults fills in the default settings.
func (c *Config) SetDefaults() {
	c.Host = "localhost"
	c.Port = 8080
	c.ReadTimeout = 5 * time.Second
	c.WriteTimeout = 15 * time.Second
	c.Tags = []string{"sample"}
	c.Limits = Limits{RPS: 25, Burst: 50}
}

type module struct {
	configuron.Configurable[Config]
}

// Module is the sample package's configurable namespace.
var Module = new(module)

// Attach extends Module, logging its configuration lifecycle to logger.
// Attaching again discards the current configuration.
func Attach(logger *zap.Logger) error {
	return configuron.NewBuilder().
		WithLogger(logger).
		WithName("sample").
		Extend(Module)
}
