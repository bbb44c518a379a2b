package configuron

import (
	"fmt"

	"go.uber.org/zap"
)

// Builder provides a fluent interface for extending modules with options
type Builder struct {
	logger *zap.Logger
	name   string
	root   string
}

// NewBuilder creates a new extension builder
func NewBuilder() *Builder {
	return &Builder{
		logger: zap.NewNop(),
	}
}

// WithLogger sets the logger used for debug output about the module's
// configuration lifecycle. A nil logger keeps the default no-op logger.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithName overrides the module name derived from its type
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithRoot overrides the root directory derived from the caller's source file
func (b *Builder) WithRoot(root string) *Builder {
	b.root = root
	return b
}

// Extend gives candidate its configuration operations using the builder's
// options. See the package-level Extend for the eligibility rules.
func (b *Builder) Extend(candidate any) error {
	return b.extend(candidate, callerDir(1))
}

// MustExtend is like Extend but panics on error
func (b *Builder) MustExtend(candidate any) {
	if err := b.extend(candidate, callerDir(1)); err != nil {
		panic(fmt.Sprintf("configuron: extend failed: %v", err))
	}
}

func (b *Builder) extend(candidate any, caller string) error {
	target, name, err := eligible(candidate)
	if err != nil {
		return err
	}

	a := attachment{
		name:   name,
		root:   caller,
		logger: b.logger,
	}
	if b.name != "" {
		a.name = b.name
	}
	if b.root != "" {
		a.root = b.root
	}

	target.attach(a)
	b.logger.Debug("module extended",
		zap.String("module", a.name),
		zap.String("root", a.root),
	)
	return nil
}
