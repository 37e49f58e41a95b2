//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body in its JSON object form.
type Mutation func(m map[string]any)

// DtoMap returns v as a JSON object with muts applied, for bodies a typed DTO
// cannot express such as missing keys or wrongly typed values.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m), "%T does not encode to a JSON object", v)

	for _, mut := range muts {
		mut(m)
	}
	return m
}
