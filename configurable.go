package configuron

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Defaulter is implemented by configuration types that fill in their own
// default values. SetDefaults runs on every freshly allocated instance.
type Defaulter interface {
	SetDefaults()
}

// Initializer is implemented by configuration types whose construction can
// fail. Init runs after SetDefaults; a non-nil error aborts construction and
// is returned to the caller unchanged.
type Initializer interface {
	Init() error
}

// attachment carries the per-module metadata recorded at extension time.
type attachment struct {
	name   string
	root   string
	logger *zap.Logger
}

// slot holds at most one live configuration for a module.
type slot[T any] struct {
	attachment
	typeName string
	current  *T
}

// Configurable gives the struct that embeds it a lazily created, singleton
// configuration of type T. It does nothing until the embedding module is
// passed to Extend.
//
// Configurable performs no locking; see the package documentation.
type Configurable[T any] struct {
	slot *slot[T]
}

// attach installs a fresh slot, discarding any previous one.
func (c *Configurable[T]) attach(a attachment) {
	c.slot = &slot[T]{
		attachment: a,
		typeName:   reflect.TypeOf((*T)(nil)).Elem().String(),
	}
}

// Extended reports whether the module has been passed to Extend.
func (c *Configurable[T]) Extended() bool {
	return c.slot != nil
}

// Name returns the qualified name of the module, or "" if not extended.
func (c *Configurable[T]) Name() string {
	if c.slot == nil {
		return ""
	}
	return c.slot.name
}

// Root returns the directory of the source file that extended the module,
// or "" if not extended.
func (c *Configurable[T]) Root() string {
	if c.slot == nil {
		return ""
	}
	return c.slot.root
}

// Configuration returns the module's configuration, constructing it on first
// use. Until Reset is called every call returns the same pointer.
func (c *Configurable[T]) Configuration() (*T, error) {
	if c.slot == nil {
		return nil, ErrNotExtended
	}
	return c.slot.get()
}

// MustConfiguration is like Configuration but panics on error.
func (c *Configurable[T]) MustConfiguration() *T {
	cfg, err := c.Configuration()
	if err != nil {
		panic(fmt.Sprintf("configuration unavailable for %s: %v", c.Name(), err))
	}
	return cfg
}

// Configure calls fn exactly once with the current configuration. Changes fn
// makes to the configuration persist until the next Reset.
func (c *Configurable[T]) Configure(fn func(cfg *T)) error {
	if c.slot == nil {
		return ErrNotExtended
	}
	if fn == nil {
		return ErrNilCallback
	}

	cfg, err := c.slot.get()
	if err != nil {
		return err
	}
	fn(cfg)
	return nil
}

// Reset discards the current configuration. The next Configuration or
// Configure call builds a new one from defaults.
func (c *Configurable[T]) Reset() {
	if c.slot == nil {
		return
	}
	c.slot.current = nil
	c.slot.logger.Debug("configuration reset",
		zap.String("module", c.slot.name),
		zap.String("type", c.slot.typeName),
	)
}

func (s *slot[T]) get() (*T, error) {
	if s.current != nil {
		return s.current, nil
	}

	cfg, err := construct[T]()
	if err != nil {
		return nil, err
	}

	s.current = cfg
	s.logger.Debug("configuration constructed",
		zap.String("module", s.name),
		zap.String("type", s.typeName),
	)
	return cfg, nil
}

// construct allocates a T and runs its optional SetDefaults and Init hooks.
func construct[T any]() (*T, error) {
	cfg := new(T)
	if d, ok := any(cfg).(Defaulter); ok {
		d.SetDefaults()
	}
	if i, ok := any(cfg).(Initializer); ok {
		if err := i.Init(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
