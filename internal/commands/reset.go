package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

func newResetCommand() *cobra.Command {
	var shopID string
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every account of a shop and reseed the canonical mains",
		Long: `Reset deletes every account of the shop, protected or not, waits for the
store to settle, then recreates the canonical main accounts. Sub-accounts
are not reseeded; run "chartops seed" afterwards to top them up.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shopID == "" {
				return errors.New("--shop is required")
			}
			if !yes {
				return errors.New("reset is destructive; re-run with --yes to confirm")
			}

			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			summary, err := rt.reconciler.ClearAndReseed(rt.ctx, shopID)
			if summary != nil {
				printRunSummary(summary)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&shopID, "shop", "", "shop id to reset")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the destructive reset")

	return cmd
}
