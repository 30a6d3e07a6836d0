package qualification

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"tastebook/internal/collection/models"
	"tastebook/internal/qualification/metrics"
	domain "tastebook/pkg/domain"
)

// CollectionStore is the slice of the collection store the sweeper needs.
type CollectionStore interface {
	ListActive(ctx context.Context) ([]*models.Collection, error)
	UpdateAggregates(ctx context.Context, id domain.CollectionID, agg models.AggregateResult, updatedAt time.Time) error
}

// Sweeper recomputes cached aggregates across collections with bounded
// fan-out. Collections are independent, so this is a parallel map with no
// ordering guarantees; a failure on one collection never blocks the rest and
// never touches that collection's cached state.
type Sweeper struct {
	calc        *Calculator
	store       CollectionStore
	logger      *slog.Logger
	metrics     *metrics.Metrics
	concurrency int
	tracer      trace.Tracer
}

// NewSweeper constructs a Sweeper. Concurrency below 1 is floored to 1.
func NewSweeper(calc *Calculator, store CollectionStore, logger *slog.Logger, m *metrics.Metrics, concurrency int) *Sweeper {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Sweeper{
		calc:        calc,
		store:       store,
		logger:      logger,
		metrics:     m,
		concurrency: concurrency,
		tracer:      otel.Tracer("tastebook/qualification"),
	}
}

// SweepAll recomputes every active collection. Individual recompute failures
// are logged and counted but do not abort the sweep; only a corpus-level
// listing failure returns an error.
func (s *Sweeper) SweepAll(ctx context.Context) error {
	start := time.Now()
	defer func() {
		s.metrics.ObserveSweep(time.Since(start))
	}()

	collections, err := s.store.ListActive(ctx)
	if err != nil {
		return err
	}
	return s.sweep(ctx, collections)
}

// SweepCategories recomputes only collections in the given categories. Used by
// the event consumer for content-drift triggers scoped to known categories.
func (s *Sweeper) SweepCategories(ctx context.Context, categories []domain.CollectionCategory) error {
	collections, err := s.store.ListActive(ctx)
	if err != nil {
		return err
	}

	wanted := make(map[domain.CollectionCategory]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}
	scoped := collections[:0:0]
	for _, col := range collections {
		if wanted[col.Category] {
			scoped = append(scoped, col)
		}
	}
	return s.sweep(ctx, scoped)
}

func (s *Sweeper) sweep(ctx context.Context, collections []*models.Collection) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, col := range collections {
		g.Go(func() error {
			s.recomputeOne(ctx, col)
			return nil
		})
	}

	return g.Wait()
}

// recomputeOne runs one collection's recompute and persists the result. The
// collection value is a snapshot from ListActive, so the rule set observed
// here cannot change mid-recompute.
func (s *Sweeper) recomputeOne(ctx context.Context, col *models.Collection) {
	ctx, span := s.tracer.Start(ctx, "qualification.recompute",
		trace.WithAttributes(
			attribute.String("collection.id", col.ID.String()),
			attribute.String("collection.category", string(col.Category)),
		))
	defer span.End()

	start := time.Now()
	agg, err := s.calc.Recompute(ctx, col)
	if err != nil {
		// Leave the previously cached aggregates untouched: a transient
		// corpus failure must never silently unqualify a collection.
		s.metrics.IncrementFailure()
		s.logger.ErrorContext(ctx, "recompute failed, cached aggregates preserved",
			"collection_id", col.ID.String(),
			"error", err,
		)
		return
	}

	if err := s.store.UpdateAggregates(ctx, col.ID, agg, time.Now()); err != nil {
		s.metrics.IncrementFailure()
		s.logger.ErrorContext(ctx, "aggregate write failed",
			"collection_id", col.ID.String(),
			"error", err,
		)
		return
	}

	s.metrics.ObserveRecompute(time.Since(start), string(agg.QualifiedStatus), agg.MatchedTotal)
}

// Run recomputes all collections on a fixed interval until ctx is cancelled.
// Zero or negative interval disables the loop.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.SweepAll(ctx); err != nil {
				s.logger.ErrorContext(ctx, "scheduled sweep failed",
					"error", err,
				)
			}
		}
	}
}
