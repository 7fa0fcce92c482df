package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/cli"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/ledger"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
)

func walletsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallets",
		Short: "Manage wallets",
		Long:  `List, add, update, and deactivate the wallets that hold your money.`,
	}

	cmd.AddCommand(listWalletsCmd())
	cmd.AddCommand(addWalletCmd())
	cmd.AddCommand(updateWalletCmd())
	cmd.AddCommand(deactivateWalletCmd())

	return cmd
}

func listWalletsCmd() *cobra.Command {
	var includeInactive bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List wallets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			wallets := app.Wallets.List(includeInactive)
			if len(wallets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No wallets found. Use 'finsnap wallets add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Balance"),
				cli.HeaderStyle.Render("Active"))

			for _, wallet := range wallets {
				active := cli.SuccessIcon
				if !wallet.IsActive {
					active = cli.SubtleStyle.Render("inactive")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					wallet.ID,
					wallet.Name,
					wallet.Type,
					cli.FormatMoney(wallet.Balance, wallet.Currency),
					active)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&includeInactive, "all", false, "Include deactivated wallets")
	return cmd
}

func addWalletCmd() *cobra.Command {
	var (
		walletType string
		currency   string
		balance    float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			wallet := app.Wallets.Add(ctx, ledger.AddWalletInput{
				Name:     args[0],
				Currency: currency,
				Type:     model.WalletType(walletType),
				Balance:  balance,
			})

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created wallet %q (%s)", wallet.Name, wallet.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&walletType, "type", string(model.WalletTypeCash), "Wallet type (EWALLET, BANK, CASH)")
	cmd.Flags().StringVar(&currency, "currency", "IDR", "Wallet currency code")
	cmd.Flags().Float64Var(&balance, "balance", 0, "Opening balance")
	return cmd
}

func updateWalletCmd() *cobra.Command {
	var (
		name       string
		walletType string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a wallet's name or type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			input := ledger.UpdateWalletInput{Name: optionalString(name)}
			if walletType != "" {
				wt := model.WalletType(walletType)
				input.Type = &wt
			}
			app.Wallets.Update(ctx, args[0], input)

			fmt.Println(cli.FormatSuccess("Updated wallet"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New wallet name")
	cmd.Flags().StringVar(&walletType, "type", "", "New wallet type")
	return cmd
}

func deactivateWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Deactivate a wallet",
		Long:  `Deactivate soft-deletes a wallet. Its transactions stay in the ledger.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Wallets.Deactivate(ctx, args[0])
			fmt.Println(cli.FormatSuccess("Deactivated wallet"))
			return nil
		},
	}
}
