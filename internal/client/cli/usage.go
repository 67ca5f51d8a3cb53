package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
)

func newUsageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Manage a spool's usage log",
	}

	cmd.AddCommand(
		newUsageLogCmd(app),
		newUsageEditCmd(app),
		newUsageDeleteCmd(app),
	)
	return cmd
}

func usageFlags(cmd *cobra.Command, entry *models.UsageEntry) {
	cmd.Flags().StringVar(&entry.PrintName, "print", "", "print job name")
	cmd.Flags().StringVar(&entry.Status, "status", models.UsageStatusSuccess, "success or failure")
	cmd.Flags().Float64Var(&entry.WeightDelta, "weight", 0, "filament consumed in grams")
	cmd.Flags().StringVar(&entry.Notes, "notes", "", "free-form notes")
}

func newUsageLogCmd(app *App) *cobra.Command {
	var entry models.UsageEntry

	cmd := &cobra.Command{
		Use:   "log <spool-id>",
		Short: "Log a print against a spool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.Inventory.LogUsage(cmd.Context(), args[0], entry)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usage logged: %s (%.1fg)\n", saved.ID, saved.WeightDelta)
			return nil
		},
	}

	usageFlags(cmd, &entry)
	return cmd
}

func newUsageEditCmd(app *App) *cobra.Command {
	var entry models.UsageEntry

	cmd := &cobra.Command{
		Use:   "edit <spool-id> <entry-id>",
		Short: "Edit a usage-log entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry.ID = args[1]
			if err := app.Inventory.UpdateUsage(cmd.Context(), args[0], entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usage entry updated: %s\n", entry.ID)
			return nil
		},
	}

	usageFlags(cmd, &entry)
	return cmd
}

func newUsageDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <spool-id> <entry-id>",
		Short: "Delete a usage-log entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Inventory.DeleteUsage(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usage entry deleted: %s\n", args[1])
			return nil
		},
	}
}
