package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"inventory-sync/core/diffsync"
	"inventory-sync/feature/inventory/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ErrPlanApplied is returned when a plan is applied a second time.
var ErrPlanApplied = errors.New("plan already applied")

// Saver persists a store after it has been synced.
type Saver interface {
	Save(ctx context.Context, store *diffsync.Store) error
}

// Plan is the diff between freshly populated source and destination stores.
type Plan struct {
	Source      *diffsync.Store
	Destination *diffsync.Store
	Diff        *diffsync.Diff
	Summary     diffsync.Summary

	mu      sync.Mutex
	applied bool
}

// ApplyOptions gates Apply. Nothing is written unless Confirmed is set and
// DryRun is not.
type ApplyOptions struct {
	DryRun    bool
	Confirmed bool
	// Export also writes the converged destination to the exporter.
	Export bool
}

// Outcome describes what Apply did.
type Outcome struct {
	Summary diffsync.Summary         `json:"summary"`
	Changes []diffsync.ElementReport `json:"changes"`
	Applied bool                     `json:"applied"`
	Report  *diffsync.Report         `json:"report,omitempty"`
}

// Service reconciles a destination inventory with a source inventory.
type Service struct {
	source      diffsync.Populator
	destination diffsync.Populator
	exporter    Saver
	differ      *diffsync.Differ
	logger      *zap.Logger
	sf          singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithExporter sets where Apply writes the destination when Export is requested.
func WithExporter(s Saver) Option {
	return func(svc *Service) {
		svc.exporter = s
	}
}

// NewService creates a service diffing destination against source.
func NewService(source, destination diffsync.Populator, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		source:      source,
		destination: destination,
		differ:      models.NewDiffer(logger),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan populates both stores concurrently and diffs them. Concurrent callers
// share one plan.
func (s *Service) Plan(ctx context.Context) (*Plan, error) {
	result, err, shared := s.sf.Do("plan", func() (any, error) {
		return s.buildPlan(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Plan shared with concurrent caller")
	}
	return result.(*Plan), nil
}

func (s *Service) buildPlan(ctx context.Context) (*Plan, error) {
	src := models.NewStore("source")
	dst := models.NewStore("destination")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.source.Populate(gctx, src); err != nil {
			return fmt.Errorf("failed to load source inventory: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.destination.Populate(gctx, dst); err != nil {
			return fmt.Errorf("failed to load destination inventory: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, store := range []*diffsync.Store{src, dst} {
		if err := store.Validate(); err != nil {
			return nil, fmt.Errorf("%s inventory is inconsistent: %w", store.Name(), err)
		}
	}

	diff := s.differ.Diff(dst, src)
	plan := &Plan{Source: src, Destination: dst, Diff: diff, Summary: diff.Summary()}

	s.logger.Info("Inventory plan ready",
		zap.Int("create", plan.Summary.Create),
		zap.Int("update", plan.Summary.Update),
		zap.Int("delete", plan.Summary.Delete),
		zap.Int("unchanged", plan.Summary.NoChange),
	)
	return plan, nil
}

// Apply syncs the plan's destination store. A plan can be applied once.
func (s *Service) Apply(ctx context.Context, plan *Plan, opts ApplyOptions) (*Outcome, error) {
	out := &Outcome{Summary: plan.Summary, Changes: plan.Diff.Report(true)}

	if opts.DryRun || !opts.Confirmed {
		s.logger.Info("Dry-run mode: no changes were made")
		return out, nil
	}

	plan.mu.Lock()
	defer plan.mu.Unlock()
	if plan.applied {
		return nil, ErrPlanApplied
	}
	plan.applied = true

	report, err := diffsync.NewSyncer(s.differ, s.logger).SyncDiff(ctx, plan.Destination, plan.Diff)
	if err != nil {
		return nil, fmt.Errorf("sync aborted: %w", err)
	}
	out.Applied = true
	out.Report = report

	if saver, ok := s.destination.(Saver); ok {
		if err := saver.Save(ctx, plan.Destination); err != nil {
			return out, fmt.Errorf("failed to save destination: %w", err)
		}
	}
	if opts.Export {
		if s.exporter == nil {
			return out, fmt.Errorf("export requested but no exporter is configured")
		}
		if err := s.exporter.Save(ctx, plan.Destination); err != nil {
			return out, fmt.Errorf("failed to export destination: %w", err)
		}
	}
	return out, nil
}
