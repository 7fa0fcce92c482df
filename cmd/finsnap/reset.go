package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/cli"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/seed"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all data",
		Long: `Reset deletes every wallet, transaction, budget, recurring definition,
debt, and shopping list, then recreates the default categories.

This is a destructive operation and cannot be undone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				fmt.Print("This will permanently delete all data. Continue? [y/N]: ")
				var response string
				if _, err := fmt.Scanln(&response); err != nil {
					response = ""
				}
				if !strings.EqualFold(strings.TrimSpace(response), "y") {
					fmt.Println(cli.InfoStyle.Render("Aborted."))
					return nil
				}
			}

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := app.Reset(ctx); err != nil {
				return fmt.Errorf("failed to reset data: %w", err)
			}
			seed.EnsureDefaults(ctx, app)

			fmt.Println(cli.FormatSuccess("All data erased"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
