package rules

import (
	"fmt"

	domain "tastebook/pkg/domain"
)

// ValidationResult is the validator's verdict. Errors is editor-facing; a rule
// failing validation is never persisted and never evaluated.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate statically checks a rule config before evaluation or persistence.
//
// Empty groups are not an error: Normalize drops them, mirroring the editor UX
// where removing the last condition removes the group. Everything else that
// would make evaluation meaningless is rejected here so the evaluator can stay
// error-free.
func Validate(cfg Config) ValidationResult {
	var errs []string

	switch cfg.Type {
	case TypeAuto:
		errs = validateAuto(cfg.Auto)
	case TypeCustom:
		errs = validateCustom(cfg.Custom)
	default:
		errs = []string{fmt.Sprintf("unknown rule type: %q", cfg.Type)}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func validateAuto(rule *AutoRule) []string {
	if rule == nil {
		return []string{"auto rule is missing its reference"}
	}

	var errs []string
	switch rule.Field {
	case FieldTag:
		if rule.TagKind == "" {
			errs = append(errs, "auto rule on tag requires a tag kind")
		} else if !domain.IsValidTagKind(string(rule.TagKind)) {
			errs = append(errs, fmt.Sprintf("auto rule has unknown tag kind: %q", rule.TagKind))
		}
	case FieldCuisine, FieldLocation:
		// single-reference fields, nothing extra to check
	default:
		errs = append(errs, fmt.Sprintf("auto rule cannot link field: %q", rule.Field))
	}
	if rule.Ref.IsNil() {
		errs = append(errs, "auto rule requires a linked reference")
	}
	return errs
}

func validateCustom(rule *CustomRule) []string {
	if rule == nil {
		return []string{"custom rule is missing its definition"}
	}

	var errs []string
	normalized := Normalize(Config{Type: TypeCustom, Custom: rule})
	for gi, group := range normalized.Custom.Groups {
		if group.Logic != LogicAnd && group.Logic != LogicOr {
			errs = append(errs, fmt.Sprintf("group %d has unknown logic: %q", gi, group.Logic))
		}
		for ci, cond := range group.Conditions {
			errs = append(errs, validateCondition(fmt.Sprintf("group %d condition %d", gi, ci), cond)...)
		}
	}
	for ci, cond := range rule.Exclude {
		errs = append(errs, validateCondition(fmt.Sprintf("exclude condition %d", ci), cond)...)
	}
	return errs
}

func validateCondition(where string, cond Condition) []string {
	var errs []string

	kind := cond.Field.Kind()
	if kind == KindUnknown {
		return []string{fmt.Sprintf("%s: unknown field: %q", where, cond.Field)}
	}

	if !cond.Operator.AllowedFor(kind) {
		errs = append(errs, fmt.Sprintf("%s: operator %q is not allowed on field %q", where, cond.Operator, cond.Field))
		return errs
	}

	if cond.Field == FieldTag {
		if cond.TagKind == "" {
			errs = append(errs, fmt.Sprintf("%s: tag conditions require a tag kind", where))
		} else if !domain.IsValidTagKind(string(cond.TagKind)) {
			errs = append(errs, fmt.Sprintf("%s: unknown tag kind: %q", where, cond.TagKind))
		}
	}

	switch kind {
	case KindRelation:
		errs = append(errs, validateRelationValues(where, cond)...)
	case KindNumeric:
		if _, ok := numberValue(cond.Value); !ok {
			errs = append(errs, fmt.Sprintf("%s: numeric conditions require a numeric value", where))
		}
	}

	return errs
}

func validateRelationValues(where string, cond Condition) []string {
	var errs []string

	switch cond.Operator {
	case OpEq, OpNeq:
		if _, ok := termValue(cond.Value); !ok {
			errs = append(errs, fmt.Sprintf("%s: relation conditions require a non-empty term id", where))
		}
	case OpIn, OpNin:
		if len(cond.Values) == 0 {
			errs = append(errs, fmt.Sprintf("%s: %q requires a non-empty value list", where, cond.Operator))
			break
		}
		for vi, v := range cond.Values {
			if _, ok := termValue(v); !ok {
				errs = append(errs, fmt.Sprintf("%s: value %d is not a valid term id", where, vi))
			}
		}
	}

	return errs
}
