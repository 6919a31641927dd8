//go:build unit || e2e

package testutil

// Field overrides a key in a DtoMap; a nil value removes the key entirely.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
