// Package breaker decorates a ports.Store with a circuit breaker. After a run
// of consecutive infrastructure failures the breaker opens and calls fail fast
// with domain.ErrUnavailable until the store has had time to recover.
//
// Domain outcomes such as not found, validation, conflict, and caller
// cancellation count as successes: they say nothing about store health.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/task"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Store         = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store wraps a ports.Store with a circuit breaker.
type Store struct {
	next    ports.Store
	name    string
	breaker *gobreaker.CircuitBreaker[any]
	metrics *telemetry.Metrics
}

// New wraps next. If metrics is nil, metric recording is skipped.
func New(next ports.Store, cfg *config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Store {
	const name = "store"

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Store{next: next, name: name, breaker: cb, metrics: metrics}
}

func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, context.Canceled)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return s.name + "-circuit-breaker"
}

// HealthCheck reports the breaker state without touching the store.
//
// State mapping:
//   - "closed"    returns nil.
//   - "half-open" returns an error describing a degraded store.
//   - "open"      returns an error describing a failing store.
func (s *Store) HealthCheck(_ context.Context) error {
	state := s.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", s.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", s.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", s.name, state)
	}
}

// execute runs fn through the breaker and restores its concrete result type.
func execute[T any](ctx context.Context, s *Store, op string, fn func() (T, error)) (T, error) {
	var zero T

	res, err := s.breaker.Execute(func() (any, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		if s.metrics != nil {
			s.metrics.StoreBreakerRejected.Add(ctx, 1, metric.WithAttributes(telemetry.AttrOperation.String(op)))
		}
		return zero, fmt.Errorf("%w: %s: %w", domain.ErrUnavailable, op, err)
	}
	if err != nil {
		return zero, err
	}

	v, ok := res.(T)
	if !ok {
		return zero, nil
	}
	return v, nil
}

func (s *Store) InsertProject(ctx context.Context, p *project.Project) (*project.Project, error) {
	return execute(ctx, s, "InsertProject", func() (*project.Project, error) {
		return s.next.InsertProject(ctx, p)
	})
}

func (s *Store) UpdateProject(ctx context.Context, id uuid.UUID, patch project.Patch) (*project.Project, error) {
	return execute(ctx, s, "UpdateProject", func() (*project.Project, error) {
		return s.next.UpdateProject(ctx, id, patch)
	})
}

func (s *Store) DeleteProject(ctx context.Context, id uuid.UUID) (bool, error) {
	return execute(ctx, s, "DeleteProject", func() (bool, error) {
		return s.next.DeleteProject(ctx, id)
	})
}

func (s *Store) FindProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return execute(ctx, s, "FindProject", func() (*project.Project, error) {
		return s.next.FindProject(ctx, id)
	})
}

func (s *Store) FindProjects(ctx context.Context, filter project.Filter) ([]project.Project, error) {
	return execute(ctx, s, "FindProjects", func() ([]project.Project, error) {
		return s.next.FindProjects(ctx, filter)
	})
}

func (s *Store) ProjectStats(ctx context.Context, ids []uuid.UUID) ([]project.Stats, error) {
	return execute(ctx, s, "ProjectStats", func() ([]project.Stats, error) {
		return s.next.ProjectStats(ctx, ids)
	})
}

func (s *Store) InsertTask(ctx context.Context, t *task.Task) (*task.Task, error) {
	return execute(ctx, s, "InsertTask", func() (*task.Task, error) {
		return s.next.InsertTask(ctx, t)
	})
}

func (s *Store) UpdateTask(ctx context.Context, id uuid.UUID, patch task.Patch) (*task.Task, error) {
	return execute(ctx, s, "UpdateTask", func() (*task.Task, error) {
		return s.next.UpdateTask(ctx, id, patch)
	})
}

func (s *Store) DeleteTask(ctx context.Context, id uuid.UUID) (bool, error) {
	return execute(ctx, s, "DeleteTask", func() (bool, error) {
		return s.next.DeleteTask(ctx, id)
	})
}

func (s *Store) FindTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	return execute(ctx, s, "FindTask", func() (*task.Task, error) {
		return s.next.FindTask(ctx, id)
	})
}

func (s *Store) FindTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	return execute(ctx, s, "FindTasks", func() ([]task.Task, error) {
		return s.next.FindTasks(ctx, filter)
	})
}

func (s *Store) InsertMembership(ctx context.Context, m task.Membership) (bool, error) {
	return execute(ctx, s, "InsertMembership", func() (bool, error) {
		return s.next.InsertMembership(ctx, m)
	})
}

func (s *Store) DeleteMembership(ctx context.Context, projectID, taskID uuid.UUID) (bool, error) {
	return execute(ctx, s, "DeleteMembership", func() (bool, error) {
		return s.next.DeleteMembership(ctx, projectID, taskID)
	})
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
