package domain

import (
	"github.com/google/uuid"

	dErrors "tastebook/pkg/domain-errors"
)

// Typed IDs keep collection, recipe, and taxonomy references from being mixed
// up at compile time. Construct via the Parse helpers at trust boundaries;
// direct casting bypasses validation.
type (
	// CollectionID identifies a curated collection.
	CollectionID uuid.UUID

	// RecipeID identifies a content item in the catalog.
	RecipeID uuid.UUID

	// TermID identifies a taxonomy term: a tag, a cuisine, or a location.
	TermID uuid.UUID
)

func parseUUID(s, what string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty", what)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is not a valid UUID", what)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be the nil UUID", what)
	}
	return u, nil
}

// ParseCollectionID validates and returns a CollectionID.
func ParseCollectionID(s string) (CollectionID, error) {
	u, err := parseUUID(s, "collection id")
	return CollectionID(u), err
}

// ParseRecipeID validates and returns a RecipeID.
func ParseRecipeID(s string) (RecipeID, error) {
	u, err := parseUUID(s, "recipe id")
	return RecipeID(u), err
}

// ParseTermID validates and returns a TermID.
func ParseTermID(s string) (TermID, error) {
	u, err := parseUUID(s, "term id")
	return TermID(u), err
}

func (id CollectionID) String() string { return uuid.UUID(id).String() }
func (id RecipeID) String() string     { return uuid.UUID(id).String() }
func (id TermID) String() string       { return uuid.UUID(id).String() }

func (id CollectionID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id RecipeID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id TermID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }

// Text marshaling keeps IDs as canonical UUID strings in JSON and jsonb rule
// configs. Defined types do not inherit uuid.UUID's methods, so these are
// spelled out per type.

func (id CollectionID) MarshalText() ([]byte, error) { return marshalID(uuid.UUID(id)) }
func (id RecipeID) MarshalText() ([]byte, error)     { return marshalID(uuid.UUID(id)) }
func (id TermID) MarshalText() ([]byte, error)       { return marshalID(uuid.UUID(id)) }

func (id *CollectionID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b)
	*id = CollectionID(u)
	return err
}

func (id *RecipeID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b)
	*id = RecipeID(u)
	return err
}

func (id *TermID) UnmarshalText(b []byte) error {
	u, err := unmarshalID(b)
	*id = TermID(u)
	return err
}

func marshalID(u uuid.UUID) ([]byte, error) {
	return []byte(u.String()), nil
}

func unmarshalID(b []byte) (uuid.UUID, error) {
	if len(b) == 0 {
		return uuid.Nil, nil
	}
	return uuid.ParseBytes(b)
}
