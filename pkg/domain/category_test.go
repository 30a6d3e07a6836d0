package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "tastebook/pkg/domain-errors"
)

func TestParseCollectionCategory(t *testing.T) {
	t.Run("accepts every supported category", func(t *testing.T) {
		for _, c := range AllCategories() {
			parsed, err := ParseCollectionCategory(string(c))
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseCollectionCategory("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := ParseCollectionCategory("dessert")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects the theme alias", func(t *testing.T) {
		// "theme" is a request alias, never a stored category.
		_, err := ParseCollectionCategory(CategoryAliasTheme)
		require.Error(t, err)
	})
}

func TestExpandCategoryAlias(t *testing.T) {
	t.Run("concrete category expands to itself", func(t *testing.T) {
		got, err := ExpandCategoryAlias("cuisine")
		require.NoError(t, err)
		assert.Equal(t, []CollectionCategory{CategoryCuisine}, got)
	})

	t.Run("theme expands to scene and occasion", func(t *testing.T) {
		got, err := ExpandCategoryAlias(CategoryAliasTheme)
		require.NoError(t, err)
		assert.Equal(t, []CollectionCategory{CategoryScene, CategoryOccasion}, got)
	})

	t.Run("unknown category errors", func(t *testing.T) {
		_, err := ExpandCategoryAlias("dessert")
		require.Error(t, err)
	})
}

func TestURLSegment(t *testing.T) {
	assert.Equal(t, "regional", CategoryLocation.URLSegment())
	assert.Equal(t, "cuisine", CategoryCuisine.URLSegment())
	assert.Equal(t, "scene", CategoryScene.URLSegment())
}
