package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"inventory-sync/core/diffsync"
	"inventory-sync/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncDryRun bool
	syncYes    bool
	syncExport bool
)

// syncCmd reconciles the destination with the source.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the destination inventory with the source",
	Long: `Computes the diff, asks for confirmation and applies it to the destination.

Individual object failures are reported and do not stop the sync.

Examples:
  # Show the plan only
  inventory-sync sync --dry-run

  # Apply without prompting and export the result to the bucket
  inventory-sync sync --yes --export`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Plan only, make no changes")
	syncCmd.Flags().BoolVar(&syncYes, "yes", false, "Auto-confirm changes (non-interactive)")
	syncCmd.Flags().BoolVar(&syncExport, "export", false, "Export the converged destination to the storage bucket")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	svc, err := buildService(ctx, cfg, l)
	if err != nil {
		return err
	}

	l.Info("Planning inventory sync...")
	plan, err := svc.Plan(ctx)
	if err != nil {
		return fmt.Errorf("failed to plan sync: %w", err)
	}

	if !plan.Diff.HasDiffs() {
		l.Info("Inventories are in sync. No changes required.")
		return nil
	}
	if err := diffsync.Render(os.Stdout, plan.Diff, diffsync.RenderOptions{Color: true}); err != nil {
		return err
	}

	opts := inventory.ApplyOptions{DryRun: syncDryRun, Export: syncExport}
	if !syncDryRun {
		if !confirmChanges(plan.Summary) {
			l.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
		opts.Confirmed = true
	}

	out, err := svc.Apply(ctx, plan, opts)
	if err != nil {
		return err
	}
	if !out.Applied {
		return nil
	}

	counts := out.Report.Counts()
	l.Info("Sync completed",
		zap.Int("created", counts[diffsync.ActionCreate]),
		zap.Int("updated", counts[diffsync.ActionUpdate]),
		zap.Int("deleted", counts[diffsync.ActionDelete]),
	)
	for _, f := range out.Report.Failures {
		l.Warn("Object not synced",
			zap.String("action", string(f.Action)),
			zap.String("type", f.Type),
			zap.String("id", f.ID),
			zap.Error(f.Err),
		)
	}
	if !out.Report.OK() {
		return fmt.Errorf("sync finished with %d failed operations", len(out.Report.Failures))
	}
	return nil
}

// confirmChanges prompts the user for confirmation or uses --yes flag.
func confirmChanges(s diffsync.Summary) bool {
	if syncYes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n%d to create, %d to update, %d to delete.\n", s.Create, s.Update, s.Delete)
	fmt.Print("⚠️  Type 'yes' to apply these changes: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
