package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "tastebook/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs"
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseCollectionID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseCollectionID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseCollectionID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := ParseCollectionID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, CollectionID(validUUID), id)
	})
}

// TestParseID_TrustBoundary validates parsing against hostile input. These
// functions sit at API entry points and must reject anything non-canonical.
func TestParseID_TrustBoundary(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE collections;--", true},
		{"Path traversal", "../../../etc/passwd", true},
		{"Null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Unicode zero-width space", "550e8400\u200B-e29b-41d4-a716-446655440000", true},

		{"Empty string", "", true},
		{"Nil UUID", uuid.Nil.String(), true},
		{"Whitespace only", "   ", true},
		{"Uppercase valid UUID", "550E8400-E29B-41D4-A716-446655440000", false},

		{"Valid UUID lowercase", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecipeID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestAllIDTypes_ConsistentBehavior ensures every ID type shares the same
// validation. A divergence here would let a malformed reference slip through
// one boundary but not another.
func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	validUUID := uuid.New().String()
	invalidInputs := []string{"", "invalid", uuid.Nil.String()}

	t.Run("all accept valid UUID", func(t *testing.T) {
		_, errCollection := ParseCollectionID(validUUID)
		_, errRecipe := ParseRecipeID(validUUID)
		_, errTerm := ParseTermID(validUUID)

		require.NoError(t, errCollection)
		require.NoError(t, errRecipe)
		require.NoError(t, errTerm)
	})

	for _, input := range invalidInputs {
		t.Run("all reject: "+input, func(t *testing.T) {
			_, errCollection := ParseCollectionID(input)
			_, errRecipe := ParseRecipeID(input)
			_, errTerm := ParseTermID(input)

			require.Error(t, errCollection)
			require.Error(t, errRecipe)
			require.Error(t, errTerm)
		})
	}
}

// TestIDJSONRoundTrip covers the text marshaling used by jsonb rule configs:
// IDs must serialize as canonical UUID strings and come back unchanged.
func TestIDJSONRoundTrip(t *testing.T) {
	ref := TermID(uuid.New())

	raw, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.JSONEq(t, `"`+ref.String()+`"`, string(raw))

	var back TermID
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, ref, back)
}

func TestIDIsNil(t *testing.T) {
	assert.True(t, CollectionID(uuid.Nil).IsNil())
	assert.False(t, CollectionID(uuid.New()).IsNil())

	var zero TermID
	assert.True(t, zero.IsNil())
}
