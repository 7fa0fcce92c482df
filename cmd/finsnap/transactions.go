package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/cli"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/ledger"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/service"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage ledger transactions",
		Long:    `Add, list, update, and delete transactions. Balance effects and budget totals follow automatically.`,
	}

	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(updateTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func addTransactionCmd() *cobra.Command {
	var (
		txType      string
		walletID    string
		categoryID  string
		toWalletID  string
		toAmount    float64
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Add a transaction",
		Long: `Add records an income, expense, or transfer.

For transfers between wallets of different currencies, pass --to-amount with
the amount that should arrive on the destination side; the implied rate is
simply amount divided by to-amount.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			txDate, err := parseDate(date, ledger.SystemClock{})
			if err != nil {
				return err
			}

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tx := app.Transactions.Add(ctx, ledger.AddTransactionInput{
				Amount:      amount,
				Type:        model.TransactionType(txType),
				Date:        txDate,
				Description: description,
				WalletID:    walletID,
				CategoryID:  categoryID,
				ToWalletID:  toWalletID,
				ToAmount:    optionalFloat(toAmount, cmd.Flags().Changed("to-amount")),
			})

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %s (%s)",
				tx.Type, cli.FormatMoney(tx.Amount, tx.Currency), tx.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", string(model.TransactionTypeExpense), "Transaction type (INCOME, EXPENSE, TRANSFER)")
	cmd.Flags().StringVar(&walletID, "wallet", "", "Source wallet id")
	cmd.Flags().StringVar(&categoryID, "category", "", "Category id (income/expense only)")
	cmd.Flags().StringVar(&toWalletID, "to-wallet", "", "Destination wallet id (transfers)")
	cmd.Flags().Float64Var(&toAmount, "to-amount", 0, "Destination-side amount (cross-currency transfers)")
	cmd.Flags().StringVar(&date, "date", "", "Transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "Free-text description")
	_ = cmd.MarkFlagRequired("wallet")
	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var (
		txType     string
		walletID   string
		categoryID string
		from       string
		to         string
		search     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			filter := service.TransactionFilter{
				Type:       model.TransactionType(txType),
				WalletID:   walletID,
				CategoryID: categoryID,
				Search:     search,
			}
			if from != "" {
				start, err := parseDate(from, ledger.SystemClock{})
				if err != nil {
					return err
				}
				filter.StartDate = &start
			}
			if to != "" {
				end, err := parseDate(to, ledger.SystemClock{})
				if err != nil {
					return err
				}
				filter.EndDate = &end
			}
			app.Transactions.SetFilter(filter)
			defer app.Transactions.ResetFilter()

			transactions := app.Transactions.Filtered()
			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions match."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("ID"))

			for _, tx := range transactions {
				amount := cli.FormatMoney(tx.Amount, tx.Currency)
				if tx.Type == model.TransactionTypeTransfer && tx.ToAmount != nil {
					amount += " → " + cli.FormatMoney(*tx.ToAmount, tx.ToCurrency)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					tx.Date.Format("2006-01-02"),
					tx.Type,
					amount,
					tx.Description,
					cli.SubtleStyle.Render(tx.ID))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "", "Filter by type")
	cmd.Flags().StringVar(&walletID, "wallet", "", "Filter by wallet id")
	cmd.Flags().StringVar(&categoryID, "category", "", "Filter by category id")
	cmd.Flags().StringVar(&from, "from", "", "Earliest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Latest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&search, "search", "", "Free-text search over descriptions")
	return cmd
}

func updateTransactionCmd() *cobra.Command {
	var (
		amount      float64
		txType      string
		categoryID  string
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a transaction",
		Long: `Update rewrites a transaction: the old balance effect is reversed and
the new one applied, and affected budgets are recalculated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			input := ledger.UpdateTransactionInput{
				Amount:      optionalFloat(amount, cmd.Flags().Changed("amount")),
				CategoryID:  optionalString(categoryID),
				Description: optionalString(description),
			}
			if txType != "" {
				tt := model.TransactionType(txType)
				input.Type = &tt
			}
			if date != "" {
				txDate, err := parseDate(date, ledger.SystemClock{})
				if err != nil {
					return err
				}
				input.Date = &txDate
			}
			app.Transactions.Update(ctx, args[0], input)

			fmt.Println(cli.FormatSuccess("Updated transaction"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "New amount")
	cmd.Flags().StringVar(&txType, "type", "", "New type")
	cmd.Flags().StringVar(&categoryID, "category", "", "New category id")
	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long:  `Delete removes a transaction and reverses its wallet-balance effect.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Transactions.Delete(ctx, args[0])
			fmt.Println(cli.FormatSuccess("Deleted transaction"))
			return nil
		},
	}
}
