// Package rules defines the collection rule model and its evaluator.
//
// A rule decides whether one recipe belongs to one collection. The shape is
// intentionally limited: AND across groups, a per-group AND/OR toggle, and one
// flat exclusion layer. This is not a query language; the cap on nesting keeps
// re-evaluation cheap across the whole catalog.
package rules

import (
	domain "tastebook/pkg/domain"
)

// Field names a matchable recipe attribute.
type Field string

const (
	FieldTag      Field = "tag"
	FieldCuisine  Field = "cuisine"
	FieldLocation Field = "location"

	FieldCookTime   Field = "cookTime"
	FieldPrepTime   Field = "prepTime"
	FieldDifficulty Field = "difficulty"
	FieldServings   Field = "servings"
)

// FieldKind partitions fields by the operator set they accept.
type FieldKind int

const (
	KindUnknown FieldKind = iota
	KindRelation
	KindNumeric
)

var fieldKinds = map[Field]FieldKind{
	FieldTag:        KindRelation,
	FieldCuisine:    KindRelation,
	FieldLocation:   KindRelation,
	FieldCookTime:   KindNumeric,
	FieldPrepTime:   KindNumeric,
	FieldDifficulty: KindNumeric,
	FieldServings:   KindNumeric,
}

// Kind returns the field's kind, or KindUnknown for unrecognized fields.
func (f Field) Kind() FieldKind {
	return fieldKinds[f]
}

// Operator compares a recipe attribute against a condition value.
type Operator string

const (
	OpEq  Operator = "eq"
	OpNeq Operator = "neq"
	OpIn  Operator = "in"
	OpNin Operator = "nin"
	OpLt  Operator = "lt"
	OpLte Operator = "lte"
	OpGt  Operator = "gt"
	OpGte Operator = "gte"
)

var relationOps = map[Operator]bool{OpEq: true, OpNeq: true, OpIn: true, OpNin: true}
var numericOps = map[Operator]bool{OpEq: true, OpNeq: true, OpLt: true, OpLte: true, OpGt: true, OpGte: true}

// AllowedFor reports whether the operator belongs to the operator set of the
// given field kind.
func (o Operator) AllowedFor(kind FieldKind) bool {
	switch kind {
	case KindRelation:
		return relationOps[o]
	case KindNumeric:
		return numericOps[o]
	default:
		return false
	}
}

// Condition is a single predicate evaluated against one recipe.
//
// Value and Values arrive untyped from the rule editor: term IDs for relation
// fields, numbers for numeric fields. The validator checks typing before a
// condition ever reaches the evaluator.
type Condition struct {
	Field    Field          `json:"field"`
	Operator Operator       `json:"operator"`
	TagKind  domain.TagKind `json:"tag_kind,omitempty"` // required iff Field == FieldTag
	Value    any            `json:"value,omitempty"`    // scalar, for eq/neq and numeric ops
	Values   []any          `json:"values,omitempty"`   // list, for in/nin
}

// Logic combines conditions inside one group.
type Logic string

const (
	LogicAnd Logic = "and"
	LogicOr  Logic = "or"
)

// Group is a set of conditions combined by its Logic. Groups themselves always
// combine by AND, so adding a group can only narrow the match set.
type Group struct {
	Logic      Logic       `json:"logic"`
	Conditions []Condition `json:"conditions"`
}

// Type discriminates the rule variants.
type Type string

const (
	// TypeAuto marks a system-derived rule bound to one taxonomy term.
	// Maintained implicitly, never editor-authored.
	TypeAuto Type = "auto"
	// TypeCustom marks an editor-authored group/exclude rule.
	TypeCustom Type = "custom"
)

// AutoRule matches recipes carrying one exact linked reference.
type AutoRule struct {
	Field   Field          `json:"field"` // tag, cuisine, or location
	TagKind domain.TagKind `json:"tag_kind,omitempty"`
	Ref     domain.TermID  `json:"ref"`
}

// CustomRule composes groups and exclusions. A rule with zero groups matches
// everything; exclusions combine by OR and take precedence over group matches.
type CustomRule struct {
	Groups  []Group     `json:"groups"`
	Exclude []Condition `json:"exclude,omitempty"`
}

// Config is the tagged-variant rule tree stored on a collection. It is rebuilt
// wholesale on every edit rather than mutated in place.
type Config struct {
	Type   Type        `json:"type"`
	Auto   *AutoRule   `json:"auto,omitempty"`
	Custom *CustomRule `json:"custom,omitempty"`
}

// MatchAll returns the explicit match-everything custom rule.
func MatchAll() Config {
	return Config{Type: TypeCustom, Custom: &CustomRule{}}
}

// Normalize drops empty groups, mirroring the editor UX where removing the
// last condition removes its group. Auto rules pass through untouched.
func Normalize(cfg Config) Config {
	if cfg.Type != TypeCustom || cfg.Custom == nil {
		return cfg
	}
	groups := make([]Group, 0, len(cfg.Custom.Groups))
	for _, g := range cfg.Custom.Groups {
		if len(g.Conditions) > 0 {
			groups = append(groups, g)
		}
	}
	return Config{
		Type: TypeCustom,
		Custom: &CustomRule{
			Groups:  groups,
			Exclude: cfg.Custom.Exclude,
		},
	}
}
