package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newBackupCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export every collection to a timestamped directory",
		Long: `Backup serializes each logical collection to one JSON file, plus a
combined file and a metadata summary, under a timestamped directory. A
collection that cannot be read is recorded as failed in the metadata and
does not abandon the rest of the export.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			dir := outDir
			if dir == "" {
				dir = rt.cfg.BackupDir
			}

			summary, err := rt.backup.Export(rt.ctx, dir)
			if summary != nil {
				for _, c := range summary.Collections {
					if c.Succeeded {
						fmt.Printf("%s: %d document(s)\n", c.Name, c.Count)
					} else {
						fmt.Printf("%s: FAILED (%s)\n", c.Name, c.Error)
					}
				}
				fmt.Printf("backup written to %s\n", summary.Dir)
			}
			if err != nil {
				return err
			}
			if summary != nil && !summary.Succeeded() {
				return fmt.Errorf("backup finished with failed collections")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "base directory for the export (defaults to BACKUP_DIR)")

	return cmd
}

func sortedCollectionNames(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
