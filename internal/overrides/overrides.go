// Package overrides turns "key.path=value" arguments into changes applied to
// a live configuration struct. Keys follow the struct's toml tags.
package overrides

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ErrMalformed is returned for arguments that are not key=value pairs with
// valid dotted keys.
var ErrMalformed = errors.New("malformed override")

// TagName is the struct tag used to map keys to fields.
const TagName = "toml"

// Parse processes "key.path=value" arguments into a nested map structure.
// Values are kept as strings; Apply converts them to the target field types.
func Parse(args []string) (map[string]any, error) {
	result := make(map[string]any)
	for _, arg := range args {
		keyPath, value, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("%w: %q is missing '='", ErrMalformed, arg)
		}

		keyPath = strings.TrimSpace(keyPath)
		for _, segment := range strings.Split(keyPath, ".") {
			if !isValidKeySegment(segment) {
				return nil, fmt.Errorf("%w: invalid key segment %q in %q", ErrMalformed, segment, keyPath)
			}
		}

		setNestedValue(result, keyPath, value)
	}
	return result, nil
}

// Apply decodes values into target, which must be a non-nil pointer to a
// struct. Fields without a matching key keep their current value. Keys that
// do not match any field are an error.
func Apply(target any, values map[string]any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("apply target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("apply overrides: %w", err)
	}
	return nil
}

// Mutator returns a callback suitable for Configure that applies values to
// the configuration it receives. Since Configure discards the callback's
// result, any error is stored in *errp.
func Mutator[T any](values map[string]any, errp *error) func(*T) {
	return func(cfg *T) {
		*errp = Apply(cfg, values)
	}
}

// setNestedValue sets a value in a nested map using a dot-notation path.
// It creates intermediate maps if they don't exist.
// If a segment exists but is not a map, it will be overwritten by a new map.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested

	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}

	current[segments[len(segments)-1]] = value
}

// isValidKeySegment checks if a single path segment is a valid TOML bare key.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '_' || r == '-') {
			return false
		}
	}
	return true
}
