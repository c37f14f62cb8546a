package inventory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"inventory-sync/core/diffsync"
	"inventory-sync/feature/inventory/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const desiredJSON = `{"sites": [{"name": "hq", "devices": [{"name": "leaf1", "role": "leaf",
  "interfaces": [{"name": "eth0", "enabled": true, "description": "uplink"}]}]}]}`

const currentJSON = `{"sites": [{"name": "hq"}]}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func setupService(t *testing.T, opts ...Option) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	src := snapshot.NewFileAdapter(writeFile(t, dir, "desired.json", desiredJSON), nil)
	dstPath := writeFile(t, dir, "current.json", currentJSON)
	dst := snapshot.NewFileAdapter(dstPath, nil)
	return NewService(src, dst, zap.NewNop(), opts...), dstPath
}

type failingPopulator struct{ err error }

func (f failingPopulator) Populate(context.Context, *diffsync.Store) error { return f.err }

type recordingSaver struct{ counts []int }

func (r *recordingSaver) Save(_ context.Context, store *diffsync.Store) error {
	r.counts = append(r.counts, store.Count())
	return nil
}

func TestService_Plan(t *testing.T) {
	svc, _ := setupService(t)

	plan, err := svc.Plan(context.Background())
	require.NoError(t, err)
	assert.True(t, plan.Diff.HasDiffs())
	assert.Equal(t, diffsync.Summary{Create: 2, NoChange: 1}, plan.Summary)
}

func TestService_ApplyRequiresConfirmation(t *testing.T) {
	svc, dstPath := setupService(t)
	ctx := context.Background()

	plan, err := svc.Plan(ctx)
	require.NoError(t, err)

	for _, opts := range []ApplyOptions{{}, {DryRun: true, Confirmed: true}} {
		out, err := svc.Apply(ctx, plan, opts)
		require.NoError(t, err)
		assert.False(t, out.Applied)
		assert.Nil(t, out.Report)
		assert.Len(t, out.Changes, 1)
	}

	data, err := os.ReadFile(dstPath)
	require.NoError(t, err)
	assert.Equal(t, currentJSON, string(data), "Destination is untouched")
}

func TestService_Apply(t *testing.T) {
	svc, dstPath := setupService(t)
	ctx := context.Background()

	plan, err := svc.Plan(ctx)
	require.NoError(t, err)

	out, err := svc.Apply(ctx, plan, ApplyOptions{Confirmed: true})
	require.NoError(t, err)
	assert.True(t, out.Applied)
	require.NotNil(t, out.Report)
	assert.True(t, out.Report.OK())
	assert.Equal(t, 2, out.Report.Counts()[diffsync.ActionCreate])

	data, err := os.ReadFile(dstPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"leaf1"`, "Snapshot destination is saved after sync")

	_, err = svc.Apply(ctx, plan, ApplyOptions{Confirmed: true})
	assert.ErrorIs(t, err, ErrPlanApplied)

	again, err := svc.Plan(ctx)
	require.NoError(t, err)
	assert.False(t, again.Diff.HasDiffs())
}

func TestService_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("Configured", func(t *testing.T) {
		saver := &recordingSaver{}
		svc, _ := setupService(t, WithExporter(saver))
		plan, err := svc.Plan(ctx)
		require.NoError(t, err)

		_, err = svc.Apply(ctx, plan, ApplyOptions{Confirmed: true, Export: true})
		require.NoError(t, err)
		assert.Equal(t, []int{3}, saver.counts)
	})

	t.Run("Missing", func(t *testing.T) {
		svc, _ := setupService(t)
		plan, err := svc.Plan(ctx)
		require.NoError(t, err)

		out, err := svc.Apply(ctx, plan, ApplyOptions{Confirmed: true, Export: true})
		assert.ErrorContains(t, err, "no exporter")
		assert.True(t, out.Applied)
	})
}

func TestService_PopulateErrors(t *testing.T) {
	boom := errors.New("unreachable")
	dst := snapshot.NewFileAdapter(writeFile(t, t.TempDir(), "current.json", currentJSON), nil)

	svc := NewService(failingPopulator{err: boom}, dst, nil)
	_, err := svc.Plan(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "failed to load source inventory")

	svc = NewService(dst, failingPopulator{err: boom}, nil)
	_, err = svc.Plan(context.Background())
	assert.ErrorContains(t, err, "failed to load destination inventory")
}
