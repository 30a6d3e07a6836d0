package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	domain "tastebook/pkg/domain"
)

func testConsumer() *Consumer {
	return &Consumer{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func fetchesWith(t *testing.T, payloads ...any) kgo.Fetches {
	t.Helper()
	records := make([]*kgo.Record, 0, len(payloads))
	for _, p := range payloads {
		raw, ok := p.([]byte)
		if !ok {
			var err error
			raw, err = json.Marshal(p)
			require.NoError(t, err)
		}
		records = append(records, &kgo.Record{Value: raw})
	}
	return kgo.Fetches{{
		Topics: []kgo.FetchTopic{{
			Topic:      "tastebook.recipe-events",
			Partitions: []kgo.FetchPartition{{Records: records}},
		}},
	}}
}

func TestCollectCoalescesCategoryHints(t *testing.T) {
	c := testConsumer()

	categories, full := c.collect(context.Background(), fetchesWith(t,
		RecipeEvent{RecipeID: "r1", Type: "recipe.published", Categories: []string{"cuisine"}},
		RecipeEvent{RecipeID: "r2", Type: "recipe.unpublished", Categories: []string{"cuisine", "scene"}},
	))

	assert.False(t, full)
	assert.ElementsMatch(t, []domain.CollectionCategory{domain.CategoryCuisine, domain.CategoryScene}, categories)
}

func TestCollectUnhintedEventForcesFullSweep(t *testing.T) {
	c := testConsumer()

	_, full := c.collect(context.Background(), fetchesWith(t,
		RecipeEvent{RecipeID: "r1", Type: "recipe.published", Categories: []string{"cuisine"}},
		RecipeEvent{RecipeID: "r2", Type: "recipe.published"},
	))

	assert.True(t, full)
}

func TestCollectUnknownCategoryForcesFullSweep(t *testing.T) {
	c := testConsumer()

	_, full := c.collect(context.Background(), fetchesWith(t,
		RecipeEvent{RecipeID: "r1", Type: "recipe.published", Categories: []string{"dessert"}},
	))

	assert.True(t, full)
}

func TestCollectDropsMalformedEvents(t *testing.T) {
	c := testConsumer()

	categories, full := c.collect(context.Background(), fetchesWith(t,
		[]byte(`{not json`),
		RecipeEvent{RecipeID: "r1", Type: "recipe.published", Categories: []string{"taste"}},
	))

	assert.False(t, full)
	assert.Equal(t, []domain.CollectionCategory{domain.CategoryTaste}, categories)
}

func TestCollectEmptyFetch(t *testing.T) {
	c := testConsumer()

	categories, full := c.collect(context.Background(), kgo.Fetches{})

	assert.False(t, full)
	assert.Empty(t, categories)
}
