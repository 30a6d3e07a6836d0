// Package catalog is the port onto the content repository. The qualification
// engine never issues bespoke recipe queries; everything it needs arrives as
// the ContentFacts projection defined in internal/rules.
package catalog

import (
	"context"

	"tastebook/internal/rules"
)

// Source streams the ContentFacts projection of the recipe corpus.
type Source interface {
	// StreamFacts invokes fn once per recipe. Returning an error from fn
	// aborts the stream; the error propagates unchanged so callers can
	// distinguish their own aborts from fetch failures.
	StreamFacts(ctx context.Context, fn func(rules.ContentFacts) error) error
}
