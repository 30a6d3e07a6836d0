package rules

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "tastebook/pkg/domain"
)

func validTerm() string {
	return uuid.NewString()
}

func TestValidateAuto(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "cuisine link is valid",
			cfg:  Config{Type: TypeAuto, Auto: &AutoRule{Field: FieldCuisine, Ref: domain.TermID(uuid.New())}},
		},
		{
			name: "tag link with kind is valid",
			cfg:  Config{Type: TypeAuto, Auto: &AutoRule{Field: FieldTag, TagKind: domain.TagKindOccasion, Ref: domain.TermID(uuid.New())}},
		},
		{
			name:    "missing auto payload",
			cfg:     Config{Type: TypeAuto},
			wantErr: "auto rule is missing its reference",
		},
		{
			name:    "tag link without kind",
			cfg:     Config{Type: TypeAuto, Auto: &AutoRule{Field: FieldTag, Ref: domain.TermID(uuid.New())}},
			wantErr: "auto rule on tag requires a tag kind",
		},
		{
			name:    "numeric field cannot be linked",
			cfg:     Config{Type: TypeAuto, Auto: &AutoRule{Field: FieldCookTime, Ref: domain.TermID(uuid.New())}},
			wantErr: `auto rule cannot link field: "cookTime"`,
		},
		{
			name:    "nil reference",
			cfg:     Config{Type: TypeAuto, Auto: &AutoRule{Field: FieldCuisine}},
			wantErr: "auto rule requires a linked reference",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Validate(tc.cfg)
			if tc.wantErr == "" {
				assert.True(t, result.Valid)
				assert.Empty(t, result.Errors)
				return
			}
			assert.False(t, result.Valid)
			assert.Contains(t, result.Errors, tc.wantErr)
		})
	}
}

func TestValidateCustom(t *testing.T) {
	t.Run("match-all is valid", func(t *testing.T) {
		assert.True(t, Validate(MatchAll()).Valid)
	})

	t.Run("missing custom payload", func(t *testing.T) {
		result := Validate(Config{Type: TypeCustom})
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "custom rule is missing its definition")
	})

	t.Run("unknown rule type", func(t *testing.T) {
		result := Validate(Config{Type: "smart"})
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, `unknown rule type: "smart"`)
	})

	t.Run("unknown group logic", func(t *testing.T) {
		cfg := Config{Type: TypeCustom, Custom: &CustomRule{Groups: []Group{{
			Logic: "xor",
			Conditions: []Condition{
				{Field: FieldCuisine, Operator: OpEq, Value: validTerm()},
			},
		}}}}
		result := Validate(cfg)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, `group 0 has unknown logic: "xor"`)
	})

	t.Run("empty group is not an error", func(t *testing.T) {
		cfg := Config{Type: TypeCustom, Custom: &CustomRule{Groups: []Group{{Logic: LogicAnd}}}}
		assert.True(t, Validate(cfg).Valid)
	})

	t.Run("positional error naming", func(t *testing.T) {
		cfg := Config{Type: TypeCustom, Custom: &CustomRule{Groups: []Group{{
			Logic: LogicAnd,
			Conditions: []Condition{
				{Field: FieldCuisine, Operator: OpEq, Value: validTerm()},
				{Field: "rating", Operator: OpGte, Value: float64(4)},
			},
		}}}}
		result := Validate(cfg)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, `group 0 condition 1: unknown field: "rating"`)
	})
}

func TestValidateCondition(t *testing.T) {
	cases := []struct {
		name    string
		cond    Condition
		wantErr string
	}{
		{
			name: "relation eq with term",
			cond: Condition{Field: FieldLocation, Operator: OpEq, Value: validTerm()},
		},
		{
			name: "numeric comparison",
			cond: Condition{Field: FieldPrepTime, Operator: OpLt, Value: float64(15)},
		},
		{
			name:    "numeric operator on relation field",
			cond:    Condition{Field: FieldCuisine, Operator: OpGt, Value: validTerm()},
			wantErr: `operator "gt" is not allowed on field "cuisine"`,
		},
		{
			name:    "relation operator on numeric field",
			cond:    Condition{Field: FieldCookTime, Operator: OpIn, Values: []any{float64(10)}},
			wantErr: `operator "in" is not allowed on field "cookTime"`,
		},
		{
			name:    "tag condition without kind",
			cond:    Condition{Field: FieldTag, Operator: OpEq, Value: validTerm()},
			wantErr: "tag conditions require a tag kind",
		},
		{
			name:    "tag condition with unknown kind",
			cond:    Condition{Field: FieldTag, Operator: OpEq, TagKind: "mood", Value: validTerm()},
			wantErr: `unknown tag kind: "mood"`,
		},
		{
			name:    "numeric condition with string value",
			cond:    Condition{Field: FieldServings, Operator: OpGte, Value: "four"},
			wantErr: "numeric conditions require a numeric value",
		},
		{
			name:    "relation eq without term",
			cond:    Condition{Field: FieldCuisine, Operator: OpEq},
			wantErr: "relation conditions require a non-empty term id",
		},
		{
			name:    "relation eq with malformed term",
			cond:    Condition{Field: FieldCuisine, Operator: OpEq, Value: "italian"},
			wantErr: "relation conditions require a non-empty term id",
		},
		{
			name:    "in with empty list",
			cond:    Condition{Field: FieldCuisine, Operator: OpIn},
			wantErr: `"in" requires a non-empty value list`,
		},
		{
			name:    "nin with a bad entry",
			cond:    Condition{Field: FieldCuisine, Operator: OpNin, Values: []any{validTerm(), 7}},
			wantErr: "value 1 is not a valid term id",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Type: TypeCustom, Custom: &CustomRule{Groups: []Group{{
				Logic:      LogicAnd,
				Conditions: []Condition{tc.cond},
			}}}}
			result := Validate(cfg)
			if tc.wantErr == "" {
				assert.True(t, result.Valid, "errors: %v", result.Errors)
				return
			}
			require.False(t, result.Valid)
			found := false
			for _, e := range result.Errors {
				if strings.Contains(e, tc.wantErr) {
					found = true
				}
			}
			assert.True(t, found, "expected %q in %v", tc.wantErr, result.Errors)
		})
	}
}

func TestValidateExcludeConditions(t *testing.T) {
	cfg := Config{Type: TypeCustom, Custom: &CustomRule{
		Exclude: []Condition{
			{Field: FieldTag, Operator: OpEq, TagKind: domain.TagKindIngredient, Value: validTerm()},
			{Field: FieldTag, Operator: OpEq, TagKind: domain.TagKindIngredient},
		},
	}}

	result := Validate(cfg)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "exclude condition 1: relation conditions require a non-empty term id")
}
