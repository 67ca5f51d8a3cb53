package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up the inventory to a file, or restore from one",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "export <file>",
			Short: "Write the whole inventory to a JSON file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Inventory.ExportBackup(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "import <file>",
			Short: "Restore spools from a JSON backup file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Inventory.ImportBackup(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Backup imported.")
				return nil
			},
		},
	)
	return cmd
}
