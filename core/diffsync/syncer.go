package diffsync

import (
	"context"

	"go.uber.org/zap"
)

// Report collects the results of one sync pass.
type Report struct {
	// Results holds every dispatched operation in dispatch order.
	Results []Result `json:"results"`

	// Failures holds the subset of Results whose handler failed.
	Failures []Result `json:"failures"`
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	if res.Failed() {
		r.Failures = append(r.Failures, res)
	}
}

// OK reports whether every dispatched operation succeeded.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Counts returns the number of successful operations per action.
func (r *Report) Counts() map[Action]int {
	counts := make(map[Action]int)
	for _, res := range r.Results {
		if !res.Failed() {
			counts[res.Action]++
		}
	}
	return counts
}

// Syncer applies a Diff to a destination store.
type Syncer struct {
	differ     *Differ
	dispatcher *Dispatcher
	logger     *zap.Logger
}

// NewSyncer creates a Syncer that diffs with differ.
func NewSyncer(differ *Differ, logger *zap.Logger) *Syncer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if differ == nil {
		differ = NewDiffer(WithLogger(logger))
	}
	return &Syncer{
		differ:     differ,
		dispatcher: NewDispatcher(logger),
		logger:     logger,
	}
}

// Sync diffs dst against src and applies the result to dst.
func (s *Syncer) Sync(ctx context.Context, dst, src *Store) (*Report, error) {
	return s.SyncDiff(ctx, dst, s.differ.Diff(dst, src))
}

// SyncDiff applies diff to dst depth-first, parent before children.
//
// Children are visited even when their parent's operation failed; a recorded
// failure never stops the pass. Errors other than *CrudError abort the pass
// and are returned together with the partial report.
func (s *Syncer) SyncDiff(ctx context.Context, dst *Store, diff *Diff) (*Report, error) {
	report := &Report{}
	for _, e := range diff.Elements() {
		if err := s.syncElement(ctx, dst, nil, e, report); err != nil {
			return report, err
		}
	}

	counts := report.Counts()
	s.logger.Info("Sync completed",
		zap.String("store", dst.Name()),
		zap.Int("created", counts[ActionCreate]),
		zap.Int("updated", counts[ActionUpdate]),
		zap.Int("deleted", counts[ActionDelete]),
		zap.Int("failed", len(report.Failures)),
	)
	return report, nil
}

func (s *Syncer) syncElement(ctx context.Context, dst *Store, parent *ParentRef, e *DiffElement, report *Report) error {
	if !e.HasDiffs() {
		return nil
	}

	if action := e.Action(); action != ActionNone {
		attrs := e.Source
		if action == ActionDelete {
			attrs = e.Dest
		}
		res, err := s.dispatcher.Dispatch(ctx, dst, Op{
			Action: action,
			Type:   e.Type,
			Keys:   e.Keys,
			Attrs:  attrs,
			Parent: parent,
		})
		if err != nil {
			return err
		}
		report.add(res)
	}

	self := &ParentRef{Type: e.Type, Keys: e.Keys}
	for _, child := range e.children.Elements() {
		if err := s.syncElement(ctx, dst, self, child, report); err != nil {
			return err
		}
	}
	return nil
}
