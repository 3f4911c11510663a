package commands

import (
	"github.com/spf13/cobra"
)

func newRenameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Append each shop's name to its account names and codes",
		Long: `Rename appends "-<shop name>" to the name and account code of every
account not already carrying the suffix, across all shops. Running it twice
changes nothing. Accounts referencing a shop that no longer exists are
skipped with a warning.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			summary, err := rt.reconciler.RenameWithShopSuffix(rt.ctx)
			if summary != nil {
				printRunSummary(summary)
			}
			return err
		},
	}

	return cmd
}
