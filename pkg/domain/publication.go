package domain

import dErrors "tastebook/pkg/domain-errors"

// PublicationState is the editorial lifecycle of a collection or recipe.
type PublicationState string

const (
	StateDraft     PublicationState = "draft"
	StatePending   PublicationState = "pending"
	StatePublished PublicationState = "published"
	StateArchived  PublicationState = "archived"
)

var validStates = map[PublicationState]bool{
	StateDraft:     true,
	StatePending:   true,
	StatePublished: true,
	StateArchived:  true,
}

// ParsePublicationState constructs a PublicationState from external input.
func ParsePublicationState(s string) (PublicationState, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "publication state cannot be empty")
	}
	st := PublicationState(s)
	if !validStates[st] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown publication state: %s", s)
	}
	return st, nil
}

func (s PublicationState) String() string { return string(s) }

// TagKind identifies which tag taxonomy a tag condition tests against.
type TagKind string

const (
	TagKindScene      TagKind = "scene"
	TagKindTaste      TagKind = "taste"
	TagKindMethod     TagKind = "method"
	TagKindCrowd      TagKind = "crowd"
	TagKindOccasion   TagKind = "occasion"
	TagKindIngredient TagKind = "ingredient"
)

var validTagKinds = map[TagKind]bool{
	TagKindScene:      true,
	TagKindTaste:      true,
	TagKindMethod:     true,
	TagKindCrowd:      true,
	TagKindOccasion:   true,
	TagKindIngredient: true,
}

// ParseTagKind constructs a TagKind from external input.
func ParseTagKind(s string) (TagKind, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "tag kind cannot be empty")
	}
	k := TagKind(s)
	if !validTagKinds[k] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown tag kind: %s", s)
	}
	return k, nil
}

// IsValidTagKind reports whether s names a supported tag taxonomy.
func IsValidTagKind(s string) bool {
	return validTagKinds[TagKind(s)]
}

func (k TagKind) String() string { return string(k) }
