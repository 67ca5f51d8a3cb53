// Package cli implements the filameter command tree.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/inventory"
	syncsvc "github.com/SiloCityLabs/filameter.com-sub000/internal/client/sync"
)

// App carries the services the commands operate on.
type App struct {
	Inventory inventory.Service
	Sync      *syncsvc.Service
}

// NewRootCommand builds the filameter command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "filameter",
		Short:         "Filament spool inventory with optional cloud sync",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSpoolCmd(app),
		newUsageCmd(app),
		newBackupCmd(app),
		newSyncCmd(app),
	)
	return root
}

// reportSyncError folds a sync failure into the single user-facing
// alert shape. Raw errors never reach the terminal from sync commands.
func reportSyncError(cmd *cobra.Command, err error) error {
	alert := syncsvc.AlertFromError(err)
	fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s\n", alert.Variant, alert.Message)
	if alert.Variant == syncsvc.AlertError {
		return err
	}
	return nil
}

// readSecret prompts for a value without echoing when stdin is a
// terminal, falling back to a plain line read when it is not (tests,
// pipes).
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question on the command's input stream.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
