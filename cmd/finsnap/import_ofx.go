package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/cli"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/common"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/ledger"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	var (
		walletID   string
		categoryID string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import bank statement entries from OFX or QFX files into a wallet.
Negative statement amounts become expenses and positive ones income.
Entries already present in the ledger are skipped by fingerprint.

Examples:
  finsnap import-ofx --wallet <id> ~/Downloads/statement.qfx
  finsnap import-ofx --wallet <id> ~/Downloads/*.ofx --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var files []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					if _, err := os.Stat(pattern); err == nil {
						files = append(files, pattern)
					} else {
						slog.Warn("no files match pattern", "pattern", pattern)
					}
					continue
				}
				files = append(files, matches...)
			}
			if len(files) == 0 {
				return fmt.Errorf("no files found to import")
			}

			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, ok := app.Wallets.Get(walletID); !ok {
				return fmt.Errorf("wallet %s: %w", walletID, common.ErrWalletNotFound)
			}

			seen := make(map[string]bool)
			for _, tx := range app.Transactions.All() {
				seen[tx.GenerateHash()] = true
			}

			parser := ofx.NewParser()
			imported, skipped := 0, 0

			for _, path := range files {
				f, err := os.Open(path)
				if err != nil {
					slog.Error("failed to open file", "file", path, "error", err)
					continue
				}
				entries, err := parser.ParseFile(ctx, f)
				f.Close()
				if err != nil {
					slog.Error("failed to parse OFX file", "file", path, "error", err)
					continue
				}

				added := 0
				for _, entry := range entries {
					txType := model.TransactionTypeIncome
					if entry.Amount < 0 {
						txType = model.TransactionTypeExpense
					}
					candidate := model.Transaction{
						Date:        entry.Date,
						Amount:      math.Abs(entry.Amount),
						Type:        txType,
						Description: entry.Description,
						WalletID:    walletID,
					}
					hash := candidate.GenerateHash()
					if seen[hash] {
						skipped++
						continue
					}
					seen[hash] = true
					if !dryRun {
						app.Transactions.Add(ctx, ledger.AddTransactionInput{
							Date:        candidate.Date,
							Amount:      candidate.Amount,
							Type:        candidate.Type,
							Description: candidate.Description,
							WalletID:    walletID,
							CategoryID:  categoryID,
						})
					}
					added++
					imported++
				}

				slog.Info("processed statement file",
					"file", filepath.Base(path),
					"entries", len(entries),
					"added", added)
			}

			if dryRun {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf(
					"Dry run: %d entries would be imported, %d duplicates skipped", imported, skipped)))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Imported %d transaction(s), skipped %d duplicate(s)", imported, skipped)))
			return nil
		},
	}

	cmd.Flags().StringVar(&walletID, "wallet", "", "Wallet to import into")
	cmd.Flags().StringVar(&categoryID, "category", "", "Category assigned to imported entries")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Preview the import without saving")
	_ = cmd.MarkFlagRequired("wallet")
	return cmd
}
