package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/cli"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/seed"
)

func seedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with a demo dataset",
		Long: `Seed wipes the database and loads a small demo dataset: wallets in two
currencies, categorized transactions, budgets, a recurring definition, a
receivable, and a shopping list. Useful for trying the tool out.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				fmt.Print("This will erase all existing data. Continue? [y/N]: ")
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

			if err := seed.Demo(ctx, app); err != nil {
				return fmt.Errorf("failed to seed demo data: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Seeded demo data"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
