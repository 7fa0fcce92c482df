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

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Manage debts and receivables",
		Long: `Track money you owe and money owed to you. Payments are mirrored into
the transaction ledger and the debt status follows automatically.`,
	}

	cmd.AddCommand(listDebtsCmd())
	cmd.AddCommand(addDebtCmd())
	cmd.AddCommand(payDebtCmd())
	cmd.AddCommand(settleDebtCmd())
	cmd.AddCommand(deleteDebtCmd())

	return cmd
}

func debtStatusStyle(status model.DebtStatus) string {
	switch status {
	case model.DebtStatusSettled:
		return cli.SuccessStyle.Render(string(status))
	case model.DebtStatusOverdue:
		return cli.ErrorStyle.Render(string(status))
	case model.DebtStatusPartiallyPaid:
		return cli.WarningStyle.Render(string(status))
	default:
		return string(status)
	}
}

func listDebtsCmd() *cobra.Command {
	var typeFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List debts and receivables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			debts := app.Debts.List(model.DebtType(typeFilter))
			if len(debts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No debts recorded."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Person"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Paid"),
				cli.HeaderStyle.Render("Due"),
				cli.HeaderStyle.Render("Status"))

			for _, debt := range debts {
				due := cli.SubtleStyle.Render("-")
				if debt.DueDate != nil {
					due = debt.DueDate.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					debt.ID,
					debt.Type,
					debt.PersonName,
					cli.FormatMoney(debt.Amount, debt.Currency),
					cli.FormatMoney(debt.PaidAmount, debt.Currency),
					due,
					debtStatusStyle(debt.Status))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&typeFilter, "type", "", "Restrict to one type (DEBT, RECEIVABLE)")
	return cmd
}

func addDebtCmd() *cobra.Command {
	var (
		debtType    string
		person      string
		currency    string
		walletID    string
		due         string
		description string
		initialTx   bool
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Add a debt or receivable",
		Long: `Add records money owed. With --initial-transaction the money that changed
hands is also recorded in the ledger: a debt you took on counts as income,
a receivable you gave out counts as an expense.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			input := ledger.AddDebtInput{
				Type:                     model.DebtType(debtType),
				PersonName:               person,
				Description:              description,
				Amount:                   amount,
				Currency:                 currency,
				WalletID:                 walletID,
				CreateInitialTransaction: initialTx,
			}
			if due != "" {
				dueDate, err := parseDate(due, ledger.SystemClock{})
				if err != nil {
					return err
				}
				input.DueDate = &dueDate
			}

			debt := app.Debts.Add(ctx, input)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %s for %s (%s)",
				debt.Type, debt.PersonName, debt.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&debtType, "type", string(model.DebtTypeDebt), "Debt type (DEBT, RECEIVABLE)")
	cmd.Flags().StringVar(&person, "person", "", "Counterparty name")
	cmd.Flags().StringVar(&currency, "currency", "IDR", "Currency code")
	cmd.Flags().StringVar(&walletID, "wallet", "", "Wallet payments move through")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "Free-text description")
	cmd.Flags().BoolVar(&initialTx, "initial-transaction", false, "Record the initial money movement in the ledger")
	_ = cmd.MarkFlagRequired("person")
	_ = cmd.MarkFlagRequired("wallet")
	return cmd
}

func payDebtCmd() *cobra.Command {
	var (
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "pay <id> <amount>",
		Short: "Record a payment against a debt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			payDate, err := parseDate(date, ledger.SystemClock{})
			if err != nil {
				return err
			}

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Debts.MakePayment(ctx, args[0], ledger.PaymentInput{
				Amount:      amount,
				Date:        payDate,
				Description: description,
			})

			fmt.Println(cli.FormatSuccess("Recorded payment"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Payment date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "Payment description")
	return cmd
}

func settleDebtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settle <id>",
		Short: "Mark a debt as settled",
		Long: `Settle writes a debt off: the paid amount is forced to the full amount
without creating a ledger entry for the forgiven remainder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Debts.MarkSettled(ctx, args[0])
			fmt.Println(cli.FormatSuccess("Settled debt"))
			return nil
		},
	}
}

func deleteDebtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a debt record",
		Long: `Delete removes the debt record only. Its linked transactions stay in the
ledger because their balance effects are real money movements.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Debts.Delete(ctx, args[0])
			fmt.Println(cli.FormatSuccess("Deleted debt"))
			return nil
		},
	}
}
