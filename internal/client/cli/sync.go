package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	syncsvc "github.com/SiloCityLabs/filameter.com-sub000/internal/client/sync"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
)

func newSyncCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize the inventory through the relay",
	}

	cmd.AddCommand(
		newSyncSetupCmd(app),
		newSyncAdoptCmd(app),
		newSyncNowCmd(app),
		newSyncPushCmd(app),
		newSyncPullCmd(app),
		newSyncStatusCmd(app),
		newSyncRemoveCmd(app),
		newSyncForgotCmd(app),
	)
	return cmd
}

func newSyncSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup <email>",
		Short: "Request a sync key for an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := app.Sync.CreateSyncIdentity(cmd.Context(), args[0])
			if err != nil {
				return reportSyncError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			fmt.Fprintln(cmd.OutOrStdout(), "Run 'filameter sync adopt' once the key arrives.")
			return nil
		},
	}
}

func newSyncAdoptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "adopt [key]",
		Short: "Activate sync with a key you already have",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				var err error
				key, err = readSecret(cmd, "Sync key: ")
				if err != nil {
					return err
				}
			}

			outcome, err := app.Sync.AdoptExistingKey(cmd.Context(), key)
			if err != nil {
				return reportSyncError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sync activated.")
			printOutcome(cmd, outcome)
			return nil
		},
	}
}

func newSyncNowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Check the relay and sync if anything changed",
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := app.Sync.CheckForUpdates(cmd.Context())
			if err != nil {
				return reportSyncError(cmd, err)
			}
			printOutcome(cmd, outcome)
			return nil
		},
	}
}

func newSyncPushCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Overwrite the relay snapshot with local data",
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := app.Sync.ForcePush(cmd.Context())
			if err != nil {
				return reportSyncError(cmd, err)
			}
			printOutcome(cmd, outcome)
			return nil
		},
	}
}

func newSyncPullCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Pull the relay snapshot and merge it into local data",
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := app.Sync.ForcePull(cmd.Context())
			if err != nil {
				return reportSyncError(cmd, err)
			}
			printOutcome(cmd, outcome)
			return nil
		},
	}
}

func newSyncStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the sync state",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Sync.Status(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch status.State {
			case models.IdentityNone:
				fmt.Fprintln(out, "Sync: not configured")
				return nil
			case models.IdentityPendingVerification:
				fmt.Fprintf(out, "Sync: waiting for key verification (%s)\n", status.Email)
				return nil
			}

			fmt.Fprintf(out, "Sync: active (%s, %s account)\n", status.Email, status.AccountType)
			if status.LastSynced.IsZero() {
				fmt.Fprintln(out, "Last synced: never")
			} else {
				fmt.Fprintf(out, "Last synced: %s\n", status.LastSynced.Format("2006-01-02 15:04:05"))
			}
			if status.HasUnsyncedChanges {
				fmt.Fprintln(out, "Local changes: not yet synced")
			}
			if status.CooldownRemaining > 0 {
				fmt.Fprintf(out, "Cooldown: %s remaining\n", status.CooldownRemaining.Round(1e9))
			}
			return nil
		},
	}
}

func newSyncRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Disconnect this device from sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmFn := func() bool {
				if yes {
					return true
				}
				return confirm(cmd, "Remove sync from this device? Local data is kept.")
			}

			if err := app.Sync.RemoveSync(cmd.Context(), confirmFn); err != nil {
				if err == syncsvc.ErrRemovalNotConfirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
				return reportSyncError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sync removed. Local data is untouched.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newSyncForgotCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "forgot <email>",
		Short: "Email the sync keys registered for an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := app.Sync.RequestKeyRecovery(cmd.Context(), args[0])
			if err != nil {
				return reportSyncError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func printOutcome(cmd *cobra.Command, outcome *syncsvc.Outcome) {
	out := cmd.OutOrStdout()
	switch outcome.Action {
	case syncsvc.ActionNone:
		fmt.Fprintln(out, "Already up to date.")
	case syncsvc.ActionPush:
		fmt.Fprintf(out, "Pushed %d spools.\n", outcome.Pushed)
	case syncsvc.ActionPull:
		fmt.Fprintf(out, "Pulled %d spools (%d updated locally).\n", outcome.Pulled, outcome.Overwritten)
	case syncsvc.ActionBidirectional:
		fmt.Fprintf(out, "Synced: pulled %d, pushed %d (%d updated locally).\n",
			outcome.Pulled, outcome.Pushed, outcome.Overwritten)
	}
}
