package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/cli"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/common"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/ledger"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
)

func shoppingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shopping",
		Short: "Manage shopping lists",
		Long: `Plan purchases on a list, then buy items one by one. Each purchase books
an expense in the linked wallet, and the list completes itself once no
item is left pending.`,
	}

	cmd.AddCommand(listShoppingCmd())
	cmd.AddCommand(showShoppingCmd())
	cmd.AddCommand(addShoppingListCmd())
	cmd.AddCommand(addShoppingItemCmd())
	cmd.AddCommand(buyShoppingItemCmd())
	cmd.AddCommand(buyAllShoppingCmd())
	cmd.AddCommand(skipShoppingItemCmd())
	cmd.AddCommand(undoShoppingItemCmd())
	cmd.AddCommand(removeShoppingItemCmd())
	cmd.AddCommand(archiveShoppingCmd())
	cmd.AddCommand(deleteShoppingCmd())

	return cmd
}

func shoppingStatusStyle(status model.ShoppingListStatus) string {
	switch status {
	case model.ShoppingListStatusCompleted:
		return cli.SuccessStyle.Render(string(status))
	case model.ShoppingListStatusArchived:
		return cli.SubtleStyle.Render(string(status))
	default:
		return string(status)
	}
}

func listShoppingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List shopping lists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			lists := app.Shopping.List()
			if len(lists) == 0 {
				fmt.Println(cli.InfoStyle.Render("No shopping lists. Create one with 'finsnap shopping add'."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Items"),
				cli.HeaderStyle.Render("Estimated"),
				cli.HeaderStyle.Render("Status"))

			for _, list := range lists {
				total := 0.0
				for _, item := range list.Items {
					total += item.EstimatedTotal()
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					list.ID,
					list.Name,
					len(list.Items),
					cli.FormatMoney(total, list.Currency),
					shoppingStatusStyle(list.Status))
			}

			return nil
		},
	}
}

func showShoppingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <list-id>",
		Short: "Show a shopping list's items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list, ok := app.Shopping.Get(args[0])
			if !ok {
				return fmt.Errorf("shopping list %s: %w", args[0], common.ErrNotFound)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("%s (%s)", list.Name, shoppingStatusStyle(list.Status))))
			if len(list.Items) == 0 {
				fmt.Println(cli.InfoStyle.Render("No items yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Item"),
				cli.HeaderStyle.Render("Qty"),
				cli.HeaderStyle.Render("Estimated"),
				cli.HeaderStyle.Render("Actual"),
				cli.HeaderStyle.Render("Status"))

			for _, item := range list.Items {
				actual := cli.SubtleStyle.Render("-")
				if item.ActualPrice != nil {
					actual = cli.FormatMoney(*item.ActualPrice, list.Currency)
				}
				fmt.Fprintf(w, "%s\t%s\t%.0f\t%s\t%s\t%s\n",
					item.ID,
					item.Name,
					item.Quantity,
					cli.FormatMoney(item.EstimatedTotal(), list.Currency),
					actual,
					string(item.Status))
			}

			return nil
		},
	}
}

func addShoppingListCmd() *cobra.Command {
	var walletID string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list := app.Shopping.AddList(ctx, args[0], walletID)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created shopping list %q (%s)", list.Name, list.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&walletID, "wallet", "", "Wallet purchases are paid from")
	_ = cmd.MarkFlagRequired("wallet")
	return cmd
}

func addShoppingItemCmd() *cobra.Command {
	var (
		categoryID string
		quantity   float64
		price      float64
	)

	cmd := &cobra.Command{
		Use:   "add-item <list-id> <name>",
		Short: "Add an item to a shopping list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			item := app.Shopping.AddItem(ctx, args[0], ledger.AddItemInput{
				Name:           args[1],
				CategoryID:     categoryID,
				Quantity:       quantity,
				EstimatedPrice: price,
			})
			if item.ID == "" {
				return fmt.Errorf("shopping list %s: %w", args[0], common.ErrNotFound)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %q (%s)", item.Name, item.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "Expense category for the purchase")
	cmd.Flags().Float64Var(&quantity, "quantity", 1, "Quantity to buy")
	cmd.Flags().Float64Var(&price, "price", 0, "Estimated unit price")
	return cmd
}

func buyShoppingItemCmd() *cobra.Command {
	var actualPrice float64

	cmd := &cobra.Command{
		Use:   "buy <list-id> <item-id>",
		Short: "Mark an item purchased and book the expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Shopping.PurchaseItem(ctx, args[0], args[1],
				optionalFloat(actualPrice, cmd.Flags().Changed("price")))
			fmt.Println(cli.FormatSuccess("Purchased item"))
			return nil
		},
		Args: cobra.ExactArgs(2),
	}

	cmd.Flags().Float64Var(&actualPrice, "price", 0, "Actual total paid (default: estimated)")
	return cmd
}

func buyAllShoppingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy-all <list-id>",
		Short: "Purchase every pending item on a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			count := app.Shopping.PurchaseAllRemaining(ctx, args[0])
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Purchased %d item(s)", count)))
			return nil
		},
	}
}

func skipShoppingItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skip <list-id> <item-id>",
		Short: "Skip an item without buying it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Shopping.SkipItem(ctx, args[0], args[1])
			fmt.Println(cli.FormatSuccess("Skipped item"))
			return nil
		},
	}
}

func undoShoppingItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <list-id> <item-id>",
		Short: "Put an item back to pending",
		Long: `Undo reverts a purchased or skipped item to pending. A purchased item's
booked expense is deleted and its wallet balance restored, and the list
reopens if it had auto-completed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Shopping.MarkItemPending(ctx, args[0], args[1])
			fmt.Println(cli.FormatSuccess("Item back to pending"))
			return nil
		},
	}
}

func removeShoppingItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-item <list-id> <item-id>",
		Short: "Remove an item from a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Shopping.RemoveItem(ctx, args[0], args[1])
			fmt.Println(cli.FormatSuccess("Removed item"))
			return nil
		},
	}
}

func archiveShoppingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <list-id>",
		Short: "Archive a shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Shopping.Archive(ctx, args[0])
			fmt.Println(cli.FormatSuccess("Archived list"))
			return nil
		},
	}
}

func deleteShoppingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <list-id>",
		Short: "Delete a shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			app.Shopping.DeleteList(ctx, args[0])
			fmt.Println(cli.FormatSuccess("Deleted list"))
			return nil
		},
	}
}
