package configuron

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
)

// packagePath is the import path of this package, used to recognise
// Configurable instantiations through reflection.
var packagePath = reflect.TypeOf((*Builder)(nil)).Elem().PkgPath()

// extendable is satisfied by pointers to structs embedding Configurable.
type extendable interface {
	attach(a attachment)
}

// Extend gives candidate its configuration operations. The candidate must be
// a non-nil pointer to a named struct type that embeds Configurable by value:
//
//	type module struct {
//	    configuron.Configurable[Config]
//	}
//
//	var Module = new(module)
//
// Any other value is rejected with ErrUnconfigurableType and left untouched.
// Extending a module again replaces its configuration slot.
func Extend(candidate any) error {
	return NewBuilder().extend(candidate, callerDir(1))
}

// MustExtend is like Extend but panics on error. It is meant for package
// init functions.
func MustExtend(candidate any) {
	if err := NewBuilder().extend(candidate, callerDir(1)); err != nil {
		panic(fmt.Sprintf("configuron: extend failed: %v", err))
	}
}

// eligible checks that candidate is a module declaration and returns its
// attachment hook together with its qualified name.
func eligible(candidate any) (extendable, string, error) {
	if candidate == nil {
		return nil, "", fmt.Errorf("%w: <nil>", ErrUnconfigurableType)
	}

	rv := reflect.ValueOf(candidate)
	rt := rv.Type()
	target, ok := candidate.(extendable)
	if !ok || rt.Kind() != reflect.Ptr {
		return nil, "", fmt.Errorf("%w: %s is not a pointer to a module declaration", ErrUnconfigurableType, rt)
	}
	if rv.IsNil() {
		return nil, "", fmt.Errorf("%w: nil %s", ErrUnconfigurableType, rt)
	}

	decl := rt.Elem()
	switch {
	case isConfigurable(decl):
		return nil, "", fmt.Errorf("%w: %s is the capability itself, embed it in a module type", ErrUnconfigurableType, rt)
	case decl.Kind() != reflect.Struct || decl.Name() == "":
		return nil, "", fmt.Errorf("%w: %s is not a named struct type", ErrUnconfigurableType, rt)
	case !embedsConfigurable(decl):
		return nil, "", fmt.Errorf("%w: %s does not embed Configurable by value", ErrUnconfigurableType, rt)
	}

	return target, decl.PkgPath() + "." + decl.Name(), nil
}

// isConfigurable reports whether t is an instantiation of Configurable.
func isConfigurable(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.PkgPath() == packagePath &&
		strings.HasPrefix(t.Name(), "Configurable[")
}

// embedsConfigurable reports whether the struct type t has an embedded
// Configurable field. Pointer embedding does not count.
func embedsConfigurable(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && isConfigurable(f.Type) {
			return true
		}
	}
	return false
}

// callerDir returns the directory of the source file skip frames above its
// caller.
func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return filepath.Dir(file)
}
