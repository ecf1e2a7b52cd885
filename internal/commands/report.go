package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"crescent-wallet/internal/core/domain"
	"crescent-wallet/internal/core/ports"
	"crescent-wallet/internal/export"
	"crescent-wallet/internal/report"

	"github.com/spf13/cobra"
)

func newReportCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Financial reports",
	}
	cmd.AddCommand(newMonthlyReportCommand(d))
	cmd.AddCommand(newZakatReportCommand(d))
	cmd.AddCommand(newWalletExportCommand(d))
	return cmd
}

func newMonthlyReportCommand(d *deps) *cobra.Command {
	var csvPath string
	var remote bool

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Per-month incoming/outgoing summary, newest month first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(d); err != nil {
				return err
			}
			w, ok := d.app.Wallet.Snapshot()
			if !ok {
				if err := d.app.RefreshWallet(cmd.Context()); err != nil {
					return friendly(err)
				}
				w, _ = d.app.Wallet.Snapshot()
			}

			months, err := monthlyAggregates(cmd, d, w.WalletAddress, remote)
			if err != nil {
				return friendly(err)
			}

			if csvPath != "" {
				if err := os.WriteFile(csvPath, []byte(export.Monthly(months)), 0o600); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d months to %s\n", len(months), csvPath)
				return nil
			}

			if len(months) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no activity")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %12s %12s %10s %12s\n", "month", "incoming", "outgoing", "fee", "balance")
			for _, m := range months {
				fmt.Fprintf(out, "%-8s %12.2f %12.2f %10.2f %12.2f\n",
					m.Month, m.Incoming, m.Outgoing, m.Fee, m.Balance)
			}
			t := report.Totals(months)
			fmt.Fprintf(out, "%-8s %12.2f %12.2f %10.2f %12.2f\n",
				"TOTAL", t.Incoming, t.Outgoing, t.Fee, t.Balance)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "write the report as CSV to the given file")
	cmd.Flags().BoolVar(&remote, "remote", false, "use the server-computed report instead of aggregating locally")
	return cmd
}

// monthlyAggregates prefers local aggregation over the full history so the
// report stays consistent with what the history view shows; --remote asks
// the server instead.
func monthlyAggregates(cmd *cobra.Command, d *deps, walletAddress string, remote bool) ([]domain.MonthlyAggregate, error) {
	if remote {
		return d.app.Gateway.GetMonthlyReport(cmd.Context(), walletAddress)
	}
	txns, err := fetchFullHistory(cmd.Context(), d.app.Gateway, walletAddress)
	if err != nil {
		return nil, err
	}
	return report.Aggregate(txns, walletAddress), nil
}

const historyPageSize = 100

// fetchFullHistory pages through the history until a short page. Backends
// cap the page size server-side, so a single large-limit request cannot be
// trusted to return the whole history.
func fetchFullHistory(ctx context.Context, gw ports.Gateway, walletAddress string) ([]domain.Transaction, error) {
	var all []domain.Transaction
	for offset := 0; ; offset += historyPageSize {
		page, err := gw.GetTransactionHistory(ctx, walletAddress, historyPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < historyPageSize {
			return all, nil
		}
	}
}

func newZakatReportCommand(d *deps) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "zakat",
		Short: "Zakat levy on the current balance plus the server-side history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(d); err != nil {
				return err
			}
			if err := d.app.RefreshWallet(cmd.Context()); err != nil {
				return friendly(err)
			}
			w, _ := d.app.Wallet.Snapshot()

			records, err := d.app.Gateway.GetZakatReport(cmd.Context(), w.WalletAddress)
			if err != nil {
				return friendly(err)
			}
			if len(records) == 0 {
				records = []domain.ZakatRecord{report.CurrentZakat(w.Balance, time.Now())}
			}

			if csvPath != "" {
				if err := os.WriteFile(csvPath, []byte(export.Zakat(records)), 0o600); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d zakat records to %s\n", len(records), csvPath)
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %12s %6s  %s\n", "month", "zakat", "rate", "deducted")
			var total float64
			for _, r := range records {
				total += r.ZakatAmount
				fmt.Fprintf(out, "%-8s %12.2f %5.1f%%  %s\n",
					r.Month, r.ZakatAmount, r.Percentage, r.DeductedDate)
			}
			fmt.Fprintf(out, "%-8s %12.2f\n", "TOTAL", total)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "write the report as CSV to the given file")
	return cmd
}

func newWalletExportCommand(d *deps) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Export the current wallet snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(d); err != nil {
				return err
			}
			if err := d.app.RefreshWallet(cmd.Context()); err != nil {
				return friendly(err)
			}
			w, _ := d.app.Wallet.Snapshot()

			records, err := d.app.Gateway.GetZakatReport(cmd.Context(), w.WalletAddress)
			if err != nil {
				return friendly(err)
			}
			data := export.WalletSnapshot(w, len(records) > 0, time.Now())
			if csvPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), data)
				return nil
			}
			if err := os.WriteFile(csvPath, []byte(data), 0o600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote wallet snapshot to %s\n", csvPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "write the snapshot as CSV to the given file")
	return cmd
}
