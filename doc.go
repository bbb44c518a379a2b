// Package configuron gives module-like declarations a standard configuration
// facility: a lazily created, singleton-per-module settings object, a way to
// mutate it through a callback, and a way to reset it to defaults.
//
// Features:
//   - One configuration per module, constructed on first access
//   - Configure callbacks that mutate the live configuration in place
//   - Reset back to defaults with lazy reconstruction
//   - Defaults and fallible construction through optional SetDefaults and Init methods
//   - Fail-fast eligibility check at extension time
//   - Optional zap debug logging of the configuration lifecycle
//
// Quick Start:
//
//	type Config struct {
//	    Host string
//	    Port int
//	}
//
//	func (c *Config) SetDefaults() {
//	    c.Host = "localhost"
//	    c.Port = 8080
//	}
//
//	type module struct {
//	    configuron.Configurable[Config]
//	}
//
//	// Module is this package's configurable namespace.
//	var Module = new(module)
//
//	func init() {
//	    configuron.MustExtend(Module)
//	}
//
// Callers then use the operations promoted onto Module:
//
//	err := pkg.Module.Configure(func(cfg *pkg.Config) {
//	    cfg.Port = 9090
//	})
//
//	cfg, err := pkg.Module.Configuration() // same pointer until Reset
//	pkg.Module.Reset()                      // next access rebuilds from defaults
//
// Eligibility:
// Only a non-nil pointer to a named struct type that embeds Configurable by
// value can be extended. Plain values, pointers to unrelated types, anonymous
// structs and a bare *Configurable are rejected with ErrUnconfigurableType,
// and nothing is attached to them.
//
// Options:
//
//	configuron.NewBuilder().
//	    WithLogger(logger).
//	    WithName("billing").
//	    MustExtend(Module)
//
// Thread Safety:
// The configuration slot is not synchronized. A module's Configuration,
// Configure and Reset must be called from one goroutine at a time; callers
// that share a module across goroutines must provide their own locking.
// Different modules are independent and may be used concurrently.
package configuron
