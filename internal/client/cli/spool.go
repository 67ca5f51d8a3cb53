package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
)

func newSpoolCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spool",
		Short: "Manage filament spools",
	}

	cmd.AddCommand(
		newSpoolAddCmd(app),
		newSpoolListCmd(app),
		newSpoolGetCmd(app),
		newSpoolEditCmd(app),
		newSpoolDeleteCmd(app),
		newSpoolDuplicateCmd(app),
	)
	return cmd
}

// spoolFlags registers the business-field flags shared by add and edit.
func spoolFlags(cmd *cobra.Command, spool *models.FilamentSpool) {
	cmd.Flags().StringVar(&spool.Name, "name", "", "spool name")
	cmd.Flags().StringVar(&spool.Material, "material", "", "material (PLA, PETG, ABS, ...)")
	cmd.Flags().StringVar(&spool.Brand, "brand", "", "manufacturer")
	cmd.Flags().StringVar(&spool.Color, "color", "", "hex color (#RGB or #RRGGBB)")
	cmd.Flags().StringVar(&spool.Location, "location", "", "storage location")
	cmd.Flags().StringVar(&spool.Comments, "comments", "", "free-form notes")
	cmd.Flags().Float64Var(&spool.Price, "price", 0, "purchase price")
	cmd.Flags().Float64Var(&spool.TotalWeight, "total-weight", 1000, "filament weight in grams")
	cmd.Flags().Float64Var(&spool.UsedWeight, "used-weight", 0, "already used weight in grams")
}

func newSpoolAddCmd(app *App) *cobra.Command {
	var spool models.FilamentSpool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new spool",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Inventory.CreateSpool(cmd.Context(), &spool); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Spool created: %s\n", spool.ID)
			return nil
		},
	}

	spoolFlags(cmd, &spool)
	cmd.Flags().StringVar(&spool.ID, "id", "", "8-character label code (a UUID is assigned when omitted)")
	return cmd
}

func newSpoolListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all spools",
		RunE: func(cmd *cobra.Command, args []string) error {
			spools, err := app.Inventory.ListSpools(cmd.Context())
			if err != nil {
				return err
			}
			if len(spools) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No spools in inventory.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tMATERIAL\tBRAND\tREMAINING\tLOCATION")
			for i := range spools {
				s := &spools[i]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1fg\t%s\n",
					s.ID, s.Name, s.Material, s.Brand, s.RemainingWeight(), s.Location)
			}
			return w.Flush()
		},
	}
}

func newSpoolGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one spool in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spool, err := app.Inventory.GetSpool(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:        %s\n", spool.ID)
			fmt.Fprintf(out, "Name:      %s\n", spool.Name)
			fmt.Fprintf(out, "Material:  %s\n", spool.Material)
			fmt.Fprintf(out, "Brand:     %s\n", spool.Brand)
			fmt.Fprintf(out, "Color:     %s\n", spool.Color)
			fmt.Fprintf(out, "Location:  %s\n", spool.Location)
			fmt.Fprintf(out, "Price:     %.2f\n", spool.Price)
			fmt.Fprintf(out, "Weight:    %.1fg used of %.1fg (%.1fg remaining)\n",
				spool.UsedWeight, spool.TotalWeight, spool.RemainingWeight())
			if spool.Comments != "" {
				fmt.Fprintf(out, "Comments:  %s\n", spool.Comments)
			}

			if len(spool.UsageHistory) > 0 {
				fmt.Fprintln(out, "\nUsage history:")
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "  ID\tDATE\tPRINT\tSTATUS\tWEIGHT")
				for i := range spool.UsageHistory {
					e := &spool.UsageHistory[i]
					fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%.1fg\n",
						e.ID, e.Timestamp.Format("2006-01-02"), e.PrintName, e.Status, e.WeightDelta)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newSpoolEditCmd(app *App) *cobra.Command {
	var edits models.FilamentSpool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a spool; only the flags you pass change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spool, err := app.Inventory.GetSpool(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			apply := map[string]func(){
				"name":         func() { spool.Name = edits.Name },
				"material":     func() { spool.Material = edits.Material },
				"brand":        func() { spool.Brand = edits.Brand },
				"color":        func() { spool.Color = edits.Color },
				"location":     func() { spool.Location = edits.Location },
				"comments":     func() { spool.Comments = edits.Comments },
				"price":        func() { spool.Price = edits.Price },
				"total-weight": func() { spool.TotalWeight = edits.TotalWeight },
				"used-weight":  func() { spool.UsedWeight = edits.UsedWeight },
			}
			for name, set := range apply {
				if cmd.Flags().Changed(name) {
					set()
				}
			}

			if err := app.Inventory.UpdateSpool(cmd.Context(), spool); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Spool updated: %s\n", spool.ID)
			return nil
		},
	}

	spoolFlags(cmd, &edits)
	return cmd
}

func newSpoolDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a spool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Inventory.DeleteSpool(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Spool deleted: %s\n", args[0])
			return nil
		},
	}
}

func newSpoolDuplicateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <id>",
		Short: "Create a copy of a spool under a new id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dup, err := app.Inventory.DuplicateSpool(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Spool duplicated: %s\n", dup.ID)
			return nil
		},
	}
}
