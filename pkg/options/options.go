// Package options holds the option-decoding helpers shared by step and
// plugin implementations. Config parsers hand options over as
// map[string]interface{}, with slices and nested maps arriving as
// []interface{} and map[string]interface{}.
package options

import (
	"fmt"
)

// String extracts an optional string option
func String(opts map[string]interface{}, key string) (string, bool, error) {
	v, ok := opts[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("option %q must be a string, got %T", key, v)
	}
	return s, true, nil
}

// RequiredString extracts a mandatory string option
func RequiredString(opts map[string]interface{}, key string) (string, error) {
	s, ok, err := String(opts, key)
	if err != nil {
		return "", err
	}
	if !ok || s == "" {
		return "", fmt.Errorf("missing required option: %s", key)
	}
	return s, nil
}

// StringSlice extracts an optional list-of-strings option, accepting both
// []string and the []interface{} that config parsers produce
func StringSlice(opts map[string]interface{}, key string) ([]string, bool, error) {
	v, ok := opts[key]
	if !ok {
		return nil, false, nil
	}

	switch vv := v.(type) {
	case []string:
		return vv, true, nil
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, false, fmt.Errorf("option %q must be a list of strings, got %T element", key, item)
			}
			out = append(out, s)
		}
		return out, true, nil
	default:
		return nil, false, fmt.Errorf("option %q must be a list of strings, got %T", key, v)
	}
}

// StringMap extracts an optional string-to-string map option
func StringMap(opts map[string]interface{}, key string) (map[string]string, bool, error) {
	v, ok := opts[key]
	if !ok {
		return nil, false, nil
	}

	switch vv := v.(type) {
	case map[string]string:
		return vv, true, nil
	case map[string]interface{}:
		out := make(map[string]string, len(vv))
		for k, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, false, fmt.Errorf("option %q must map strings to strings, got %T value", key, item)
			}
			out[k] = s
		}
		return out, true, nil
	default:
		return nil, false, fmt.Errorf("option %q must be a map, got %T", key, v)
	}
}

// RejectUnknown fails when opts contains a key outside the allowed set
func RejectUnknown(opts map[string]interface{}, allowed ...string) error {
	for key := range opts {
		known := false
		for _, a := range allowed {
			if key == a {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown option: %s", key)
		}
	}
	return nil
}
