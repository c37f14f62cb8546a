package cmd

import (
	"encoding/json"
	"os"

	"inventory-sync/core/diffsync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	diffJSON    bool
	diffNoColor bool
	diffAll     bool
)

// diffCmd prints the pending changes without applying them.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show differences between the source and destination inventories",
	Long: `Loads the desired inventory and the current destination and prints
what a sync would create, update or delete.

Examples:
  # Coloured tree of changes
  inventory-sync diff

  # JSON report including unchanged elements
  inventory-sync diff --json --all`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "Print the diff as JSON")
	diffCmd.Flags().BoolVar(&diffNoColor, "no-color", false, "Disable coloured output")
	diffCmd.Flags().BoolVar(&diffAll, "all", false, "Include unchanged elements")

	RootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
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

	plan, err := svc.Plan(ctx)
	if err != nil {
		return err
	}

	if diffJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(plan.Diff.Report(!diffAll))
	}

	if !plan.Diff.HasDiffs() && !diffAll {
		l.Info("Inventories are in sync")
		return nil
	}
	if err := diffsync.Render(os.Stdout, plan.Diff, diffsync.RenderOptions{
		Color:         !diffNoColor,
		ShowUnchanged: diffAll,
	}); err != nil {
		return err
	}

	l.Info("Diff summary",
		zap.Int("create", plan.Summary.Create),
		zap.Int("update", plan.Summary.Update),
		zap.Int("delete", plan.Summary.Delete),
	)
	return nil
}
