package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newWipeCommand() *cobra.Command {
	var shopID string
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete a shop and everything it owns",
		Long: `Wipe deletes the shop's accounts, transactions, financial years,
transaction templates, logs and notifications, unlinks any user whose
shopId points at the shop, and finally deletes the shop document itself.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shopID == "" {
				return errors.New("--shop is required")
			}
			if !yes {
				return errors.New("wipe is irreversible; re-run with --yes to confirm")
			}

			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			summary, err := rt.wiper.WipeShop(rt.ctx, shopID)
			if summary != nil {
				for _, collection := range sortedCollectionNames(summary.DeletedByCollection) {
					fmt.Printf("%s: %d deleted\n", collection, summary.DeletedByCollection[collection])
				}
				fmt.Printf("users unlinked: %d\n", summary.UsersUnlinked)
				if summary.ShopDeleted {
					fmt.Printf("shop %s deleted\n", summary.ShopID)
				}
			}
			return err
		},
	}

	cmd.Flags().StringVar(&shopID, "shop", "", "shop id to wipe")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the irreversible wipe")

	return cmd
}
