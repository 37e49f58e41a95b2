//go:build unit || e2e

package testutil

// Field sets key, or removes it when value is nil.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Slot replaces both bounds of a reservation request.
func Slot(start, end string) Mutation {
	return func(m map[string]any) {
		Field("start_time", start)(m)
		Field("end_time", end)(m)
	}
}
