// Package events wires content-state drift into recompute. The content
// service publishes a small event whenever a recipe is published or
// unpublished elsewhere; consuming it keeps cached aggregates from drifting
// between scheduled sweeps.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	domain "tastebook/pkg/domain"
)

// RecipeEvent is the payload published on the recipe-events topic.
type RecipeEvent struct {
	RecipeID string `json:"recipe_id"`
	// Type is "recipe.published" or "recipe.unpublished".
	Type string `json:"type"`
	// Categories optionally hints which collection categories the recipe can
	// affect. Events without hints trigger a full sweep.
	Categories []string `json:"categories,omitempty"`
}

// Sweep is the slice of the sweeper the consumer needs.
type Sweep interface {
	SweepAll(ctx context.Context) error
	SweepCategories(ctx context.Context, categories []domain.CollectionCategory) error
}

// Consumer reads recipe events and triggers scoped recomputes. Events fetched
// in one poll are coalesced into a single sweep; rule evaluation is cheap, but
// not so cheap that every publish deserves its own corpus pass.
type Consumer struct {
	client  *kgo.Client
	sweeper Sweep
	logger  *slog.Logger
	topic   string
}

// NewConsumer connects a consumer group to the recipe-events topic, creating
// the topic when it does not exist yet.
func NewConsumer(brokers []string, topic, group string, sweeper Sweep, logger *slog.Logger) (*Consumer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumerGroup(group),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtEnd()),
	)
	if err != nil {
		return nil, err
	}

	if err := ensureTopic(client, topic); err != nil {
		client.Close()
		return nil, err
	}

	return &Consumer{client: client, sweeper: sweeper, logger: logger, topic: topic}, nil
}

func ensureTopic(client *kgo.Client, topic string) error {
	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopics(context.Background(), 1, 1, nil, topic)
	if err != nil {
		return err
	}
	for _, res := range resp {
		if res.Err != nil && !errors.Is(res.Err, kerr.TopicAlreadyExists) {
			return res.Err
		}
	}
	return nil
}

// Run polls until ctx is cancelled or the client is closed.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			c.logger.ErrorContext(ctx, "recipe event fetch error",
				"topic", topic,
				"partition", partition,
				"error", err,
			)
		})

		categories, full := c.collect(ctx, fetches)
		if !full && len(categories) == 0 {
			continue
		}

		if full {
			if err := c.sweeper.SweepAll(ctx); err != nil {
				c.logger.ErrorContext(ctx, "event-triggered sweep failed", "error", err)
			}
			continue
		}
		if err := c.sweeper.SweepCategories(ctx, categories); err != nil {
			c.logger.ErrorContext(ctx, "event-triggered scoped sweep failed", "error", err)
		}
	}
}

// collect decodes the fetched records and coalesces their category hints.
// Returns full=true when any event lacks hints.
func (c *Consumer) collect(ctx context.Context, fetches kgo.Fetches) ([]domain.CollectionCategory, bool) {
	seen := make(map[domain.CollectionCategory]bool)
	full := false

	fetches.EachRecord(func(record *kgo.Record) {
		var event RecipeEvent
		if err := json.Unmarshal(record.Value, &event); err != nil {
			c.logger.WarnContext(ctx, "malformed recipe event dropped",
				"offset", record.Offset,
				"error", err,
			)
			return
		}
		if len(event.Categories) == 0 {
			full = true
			return
		}
		for _, raw := range event.Categories {
			cat, err := domain.ParseCollectionCategory(raw)
			if err != nil {
				full = true
				return
			}
			seen[cat] = true
		}
	})

	categories := make([]domain.CollectionCategory, 0, len(seen))
	for cat := range seen {
		categories = append(categories, cat)
	}
	return categories, full
}

// Close shuts down the underlying kafka client.
func (c *Consumer) Close() {
	c.client.Close()
}
