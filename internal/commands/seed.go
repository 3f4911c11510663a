package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var shopID string
	var all bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Top up shop charts to the canonical catalog",
		Long: `Seed creates every canonical main account a shop is missing, then every
default sub-account whose parent account already existed before the run.
The operation is idempotent: a complete shop produces no mutations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (shopID == "") == (!all) {
				return errors.New("exactly one of --shop or --all is required")
			}

			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			if all {
				summaries, err := rt.reconciler.EnsureCompleteAll(rt.ctx)
				if err != nil {
					return err
				}
				failed := 0
				for i := range summaries {
					printRunSummary(&summaries[i])
					if summaries[i].Failed() {
						failed++
					}
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d shop(s) failed", failed, len(summaries))
				}
				return nil
			}

			summary, err := rt.reconciler.EnsureComplete(rt.ctx, shopID)
			if summary != nil {
				printRunSummary(summary)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&shopID, "shop", "", "shop id to seed")
	cmd.Flags().BoolVar(&all, "all", false, "seed every shop, one at a time")

	return cmd
}
