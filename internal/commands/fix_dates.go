package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFixDatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix-dates",
		Short: "Normalize legacy transaction date formats",
		Long: `Fix-dates rewrites transaction dates stored as "DD-MM-YYYY" strings to
RFC 3339. Dates already normalized are left alone; unparseable dates are
counted and reported, never modified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			summary, err := rt.dateFixer.NormalizeTransactionDates(rt.ctx)
			if summary != nil {
				fmt.Printf("scanned %d, updated %d, already normalized %d, unparseable %d\n",
					summary.Scanned, summary.Updated, summary.AlreadyNormalized, summary.Unparseable)
			}
			return err
		},
	}

	return cmd
}
