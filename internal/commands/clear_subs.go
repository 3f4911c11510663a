package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

func newClearSubsCommand() *cobra.Command {
	var shopID string
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear-subs",
		Short: "Delete a shop's non-protected accounts, preserving the canonical mains",
		Long: `Clear-subs deletes every account whose code is outside the protected set
(the canonical main-account codes). Protected accounts are never touched.
After the store settles, the remaining state is re-read and any account that
should be gone but is still present is reported as a warning.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shopID == "" {
				return errors.New("--shop is required")
			}
			if !yes {
				return errors.New("clear-subs is destructive; re-run with --yes to confirm")
			}

			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			summary, err := rt.reconciler.ClearSubAccounts(rt.ctx, shopID)
			if summary != nil {
				printRunSummary(summary)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&shopID, "shop", "", "shop id to clear")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the destructive clear")

	return cmd
}
