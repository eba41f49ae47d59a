package utils

import (
	"fmt"
	"strings"
)

// NestedLookup walks a dotted key path through nested JSON objects and
// returns the value at the end of the path.
func NestedLookup(m map[string]any, path ...string) (any, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("empty key path")
	}

	var current any = m
	for i, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s is not an object", strings.Join(path[:i], "."))
		}
		value, ok := obj[key]
		if !ok {
			return nil, fmt.Errorf("key not found: %s", strings.Join(path[:i+1], "."))
		}
		current = value
	}

	return current, nil
}
