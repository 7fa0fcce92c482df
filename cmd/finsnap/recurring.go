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

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring transactions",
		Long: `Define transactions that repeat on a schedule and materialize the due
occurrences into the ledger.`,
	}

	cmd.AddCommand(listRecurringCmd())
	cmd.AddCommand(addRecurringCmd())
	cmd.AddCommand(toggleRecurringCmd())
	cmd.AddCommand(deleteRecurringCmd())
	cmd.AddCommand(processRecurringCmd())

	return cmd
}

func listRecurringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring definitions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			definitions := app.Recurring.List()
			if len(definitions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No recurring transactions defined."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Schedule"),
				cli.HeaderStyle.Render("Next run"),
				cli.HeaderStyle.Render("Active"))

			for _, def := range definitions {
				active := cli.SuccessIcon
				if !def.IsActive {
					active = cli.SubtleStyle.Render("paused")
				}
				schedule := fmt.Sprintf("every %d %s", def.Interval, def.Frequency)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					def.ID,
					def.Description,
					cli.FormatMoney(def.Amount, def.Currency),
					schedule,
					def.NextRunDate.Format("2006-01-02"),
					active)
			}

			return nil
		},
	}
}

func addRecurringCmd() *cobra.Command {
	var (
		txType      string
		walletID    string
		categoryID  string
		frequency   string
		interval    int
		start       string
		end         string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Add a recurring transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			startDate, err := parseDate(start, ledger.SystemClock{})
			if err != nil {
				return err
			}

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			input := ledger.AddRecurringInput{
				Amount:      amount,
				Currency:    app.Wallets.Currency(walletID),
				Type:        model.TransactionType(txType),
				WalletID:    walletID,
				CategoryID:  categoryID,
				Frequency:   model.Frequency(frequency),
				Interval:    interval,
				StartDate:   startDate,
				Description: description,
			}
			if end != "" {
				endDate, err := parseDate(end, ledger.SystemClock{})
				if err != nil {
					return err
				}
				input.EndDate = &endDate
			}

			def := app.Recurring.Add(ctx, input)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created recurring transaction %s, first run %s",
				def.ID, def.NextRunDate.Format("2006-01-02"))))
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", string(model.TransactionTypeExpense), "Transaction type")
	cmd.Flags().StringVar(&walletID, "wallet", "", "Wallet id")
	cmd.Flags().StringVar(&categoryID, "category", "", "Category id")
	cmd.Flags().StringVar(&frequency, "frequency", string(model.FrequencyMonthly), "Frequency (daily, weekly, monthly, yearly)")
	cmd.Flags().IntVar(&interval, "interval", 1, "Periods between occurrences")
	cmd.Flags().StringVar(&start, "start", "", "First occurrence (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&end, "end", "", "Last possible occurrence (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "Description for materialized entries")
	_ = cmd.MarkFlagRequired("wallet")
	return cmd
}

func toggleRecurringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Pause or resume a recurring transaction",
		Long: `Toggle flips a definition between active and paused. Resuming catches up
from the preserved next run date.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Recurring.ToggleActive(ctx, args[0])
			fmt.Println(cli.FormatSuccess("Toggled recurring transaction"))
			return nil
		},
	}
}

func deleteRecurringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recurring definition",
		Long:  `Delete removes the definition. Entries it already materialized stay in the ledger.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Recurring.Delete(ctx, args[0])
			fmt.Println(cli.FormatSuccess("Deleted recurring transaction"))
			return nil
		},
	}
}

func processRecurringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Materialize all due occurrences",
		Long: `Process creates ledger entries for every due occurrence of every active
definition, at most 100 per definition per call. A definition further behind
than that needs additional runs to fully catch up.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			result := app.Recurring.Process(ctx)
			if result.Created == 0 {
				fmt.Println(cli.InfoStyle.Render("Nothing due."))
				return nil
			}

			for _, detail := range result.Details {
				fmt.Printf("  %s: %d created\n", detail.Description, detail.Created)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %d transactions from %d definitions",
				result.Created, result.Processed)))
			return nil
		},
	}
}
