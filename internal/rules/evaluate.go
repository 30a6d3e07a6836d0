package rules

import (
	"encoding/json"

	domain "tastebook/pkg/domain"
)

// ConditionResult records one condition's outcome for the editor-facing
// explanation trace.
type ConditionResult struct {
	Exclude        bool      `json:"exclude"`
	GroupIndex     int       `json:"group_index"`
	ConditionIndex int       `json:"condition_index"`
	Condition      Condition `json:"condition"`
	Matched        bool      `json:"matched"`
}

// Result is the outcome of evaluating one rule against one recipe.
type Result struct {
	Matched bool              `json:"matched"`
	Trace   []ConditionResult `json:"trace,omitempty"`
}

// Evaluate matches one recipe against a rule config.
//
// Custom rules: conditions combine inside a group by the group's logic, groups
// combine by AND (zero groups matches everything), excludes combine by OR, and
// an exclude hit wins over any group match. Evaluation is pure and never
// errors; malformed conditions are rejected by Validate before they get here,
// and a condition referencing data the recipe lacks simply evaluates false.
func Evaluate(cfg Config, item ContentFacts) Result {
	switch cfg.Type {
	case TypeAuto:
		return evaluateAuto(cfg.Auto, item)
	case TypeCustom:
		return evaluateCustom(cfg.Custom, item)
	default:
		return Result{}
	}
}

// evaluateAuto matches recipes carrying the rule's linked reference. O(1) per
// relation field, O(tags) for tag references.
func evaluateAuto(rule *AutoRule, item ContentFacts) Result {
	if rule == nil || rule.Ref.IsNil() {
		return Result{}
	}
	matched := containsTerm(item.termsFor(rule.Field, rule.TagKind), rule.Ref)
	return Result{Matched: matched}
}

func evaluateCustom(rule *CustomRule, item ContentFacts) Result {
	if rule == nil {
		return Result{}
	}

	result := Result{}

	// Zero groups is the explicit match-all default.
	groupsMatched := true
	for gi, group := range rule.Groups {
		matched := evaluateGroup(gi, group, item, &result.Trace)
		if !matched {
			groupsMatched = false
		}
	}

	excluded := false
	for ci, cond := range rule.Exclude {
		matched := evaluateCondition(cond, item)
		result.Trace = append(result.Trace, ConditionResult{
			Exclude:        true,
			ConditionIndex: ci,
			Condition:      cond,
			Matched:        matched,
		})
		if matched {
			excluded = true
		}
	}

	result.Matched = groupsMatched && !excluded
	return result
}

func evaluateGroup(groupIndex int, group Group, item ContentFacts, trace *[]ConditionResult) bool {
	if len(group.Conditions) == 0 {
		// Normalize drops empty groups before persistence; treat a stray one
		// as vacuously true so it cannot block the whole rule.
		return true
	}

	anyMatched := false
	allMatched := true
	for ci, cond := range group.Conditions {
		matched := evaluateCondition(cond, item)
		*trace = append(*trace, ConditionResult{
			GroupIndex:     groupIndex,
			ConditionIndex: ci,
			Condition:      cond,
			Matched:        matched,
		})
		if matched {
			anyMatched = true
		} else {
			allMatched = false
		}
	}

	if group.Logic == LogicOr {
		return anyMatched
	}
	return allMatched
}

func evaluateCondition(cond Condition, item ContentFacts) bool {
	switch cond.Field.Kind() {
	case KindRelation:
		return evaluateRelation(cond, item)
	case KindNumeric:
		return evaluateNumeric(cond, item)
	default:
		return false
	}
}

// evaluateRelation tests set membership: eq/neq against a single term, in/nin
// against a list. "in" is true when the recipe's term set intersects the list.
func evaluateRelation(cond Condition, item ContentFacts) bool {
	itemTerms := item.termsFor(cond.Field, cond.TagKind)

	switch cond.Operator {
	case OpEq, OpNeq:
		term, ok := termValue(cond.Value)
		if !ok {
			return false
		}
		hit := containsTerm(itemTerms, term)
		if cond.Operator == OpNeq {
			return !hit
		}
		return hit
	case OpIn, OpNin:
		terms := termValues(cond.Values)
		hit := intersects(itemTerms, terms)
		if cond.Operator == OpNin {
			return !hit
		}
		return hit
	default:
		return false
	}
}

// evaluateNumeric compares against the recipe's numeric attribute. A missing
// attribute evaluates false for every operator except neq.
func evaluateNumeric(cond Condition, item ContentFacts) bool {
	want, ok := numberValue(cond.Value)
	if !ok {
		return false
	}

	have, present := item.numberFor(cond.Field)
	if !present {
		return cond.Operator == OpNeq
	}

	switch cond.Operator {
	case OpEq:
		return have == want
	case OpNeq:
		return have != want
	case OpLt:
		return have < want
	case OpLte:
		return have <= want
	case OpGt:
		return have > want
	case OpGte:
		return have >= want
	default:
		return false
	}
}

func containsTerm(terms []domain.TermID, term domain.TermID) bool {
	for _, t := range terms {
		if t == term {
			return true
		}
	}
	return false
}

func intersects(a, b []domain.TermID) bool {
	for _, t := range b {
		if containsTerm(a, t) {
			return true
		}
	}
	return false
}

// termValue coerces an editor-supplied scalar into a term ID.
func termValue(v any) (domain.TermID, bool) {
	s, ok := v.(string)
	if !ok {
		return domain.TermID{}, false
	}
	id, err := domain.ParseTermID(s)
	if err != nil {
		return domain.TermID{}, false
	}
	return id, true
}

func termValues(vs []any) []domain.TermID {
	terms := make([]domain.TermID, 0, len(vs))
	for _, v := range vs {
		if id, ok := termValue(v); ok {
			terms = append(terms, id)
		}
	}
	return terms
}

// numberValue coerces an editor-supplied scalar into a float. JSON decoding
// hands numbers over as float64 or json.Number depending on decoder settings.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
