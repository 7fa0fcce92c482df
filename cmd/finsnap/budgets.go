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

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage monthly category budgets",
		Long:  `Set spending caps per category and month and watch the spent totals.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(addBudgetCmd())
	cmd.AddCommand(updateBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func healthStyle(health model.BudgetHealth) string {
	switch health {
	case model.BudgetHealthDanger:
		return cli.ErrorStyle.Render(string(health))
	case model.BudgetHealthWarning:
		return cli.WarningStyle.Render(string(health))
	default:
		return cli.SuccessStyle.Render(string(health))
	}
}

func listBudgetsCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budgets for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			month, year, err := parseMonthYear(period)
			if err != nil {
				return err
			}

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Budgets.SelectPeriod(month, year)
			budgets := app.Budgets.ForPeriod(month, year)
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets for this period."))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Budgets %s %d", month, year)))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Cap"),
				cli.HeaderStyle.Render("Spent"),
				cli.HeaderStyle.Render("Remaining"),
				cli.HeaderStyle.Render("Health"))

			for _, budget := range budgets {
				name := budget.CategoryID
				if cat, ok := app.Categories.Get(budget.CategoryID); ok {
					name = cat.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					budget.ID,
					name,
					cli.FormatMoney(budget.Amount, budget.Currency),
					cli.FormatMoney(budget.Spent, budget.Currency),
					cli.FormatMoney(budget.Amount-budget.Spent, budget.Currency),
					healthStyle(budget.Health()))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "Month to show (YYYY-MM, default current)")
	return cmd
}

func addBudgetCmd() *cobra.Command {
	var (
		categoryID string
		currency   string
		period     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Add a budget",
		Long: `Add creates a spending cap for one category and month. Expenses already
recorded for that category and month count against it immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			month, year, err := parseMonthYear(period)
			if err != nil {
				return err
			}

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			budget := app.Budgets.Add(ctx, ledger.AddBudgetInput{
				CategoryID: categoryID,
				Currency:   currency,
				Month:      month,
				Year:       year,
				Amount:     amount,
			})

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created budget %s (spent so far: %s)",
				budget.ID, cli.FormatMoney(budget.Spent, budget.Currency))))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "Category id")
	cmd.Flags().StringVar(&currency, "currency", "IDR", "Budget currency code")
	cmd.Flags().StringVar(&period, "period", "", "Month (YYYY-MM, default current)")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func updateBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <amount>",
		Short: "Change a budget's cap",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Budgets.Update(ctx, args[0], amount)
			fmt.Println(cli.FormatSuccess("Updated budget cap"))
			return nil
		},
	}
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Budgets.Delete(ctx, args[0])
			fmt.Println(cli.FormatSuccess("Deleted budget"))
			return nil
		},
	}
}
