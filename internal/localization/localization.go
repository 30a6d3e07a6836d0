// Package localization is the port onto the translation layer. The engine
// only needs one lookup: a collection's display name for a locale. A missing
// translation is normal and falls back to the collection's default name at the
// projection site.
package localization

import (
	"context"

	"golang.org/x/text/language"

	domain "tastebook/pkg/domain"
	dErrors "tastebook/pkg/domain-errors"
)

// ErrNoTranslation signals a missing translation; callers fall back to the
// collection's default name.
var ErrNoTranslation = dErrors.New(dErrors.CodeNotFound, "no translation for locale")

// Translator resolves a collection's display name for a locale.
type Translator interface {
	CollectionName(ctx context.Context, id domain.CollectionID, locale string) (string, error)
}

// NormalizeLocale canonicalizes a BCP 47 locale string ("zh-hans" ->
// "zh-Hans"). Unparseable locales normalize to "", which callers treat as
// "use the default name".
func NormalizeLocale(locale string) string {
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	return tag.String()
}
