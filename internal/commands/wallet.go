package commands

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"crescent-wallet/internal/core/domain"
	"crescent-wallet/internal/core/ports"
	"crescent-wallet/internal/export"
	"crescent-wallet/pkg/apperror"

	"github.com/spf13/cobra"
)

func newBalanceCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current wallet balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(d); err != nil {
				return err
			}
			if err := d.app.RefreshWallet(cmd.Context()); err != nil {
				// last-known snapshot still shows when the service is
				// momentarily down
				if !apperror.IsTransient(err) {
					return friendly(err)
				}
				d.app.Log.Debug().Err(err).Msg("balance refresh failed, showing cached value")
			}
			w, ok := d.app.Wallet.Snapshot()
			if !ok {
				return fmt.Errorf("no wallet data available yet")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f CRW (as of %s)\n",
				w.Balance, w.LastUpdated.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}

func newSendCommand(d *deps) *cobra.Command {
	var to, note string
	var amount, fee float64

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send CRW to another wallet",
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

			if err := validateSend(w, to, amount, fee); err != nil {
				return err
			}

			receipt, err := d.app.Gateway.SendTransaction(cmd.Context(), ports.SendParams{
				SenderWallet:   w.WalletAddress,
				ReceiverWallet: to,
				Amount:         amount,
				Fee:            fee,
				Note:           note,
				Signature:      signTransfer(w.WalletAddress, to, amount),
			})
			if err != nil {
				return friendly(err)
			}

			// instant feedback; the authoritative figure replaces it on the
			// refresh below
			d.app.Wallet.SetPreviewBalance(w.Balance - amount - fee)
			fmt.Fprintf(cmd.OutOrStdout(), "transaction submitted: %s (%s)\n",
				receipt.TransactionHash, receipt.Status)

			if err := d.app.RefreshWallet(cmd.Context()); err != nil {
				d.app.Log.Debug().Err(err).Msg("wallet refresh after send failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "receiver wallet address")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount in CRW")
	cmd.Flags().Float64Var(&fee, "fee", 0.5, "transaction fee in CRW")
	cmd.Flags().StringVar(&note, "note", "", "optional note")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

// validateSend checks transfer inputs before anything reaches the network.
func validateSend(w domain.Wallet, to string, amount, fee float64) error {
	if amount < domain.MinTransactionAmount || amount > domain.MaxTransactionAmount {
		return fmt.Errorf("amount must be between %g and %g CRW",
			domain.MinTransactionAmount, float64(domain.MaxTransactionAmount))
	}
	if fee < 0 || fee > domain.MaxTransactionFee {
		return fmt.Errorf("fee must be between 0 and %g CRW", float64(domain.MaxTransactionFee))
	}
	if to == w.WalletAddress {
		return fmt.Errorf("cannot send to your own wallet")
	}
	if amount+fee > w.Balance {
		return fmt.Errorf("insufficient balance: need %.2f, have %.2f", amount+fee, w.Balance)
	}
	return nil
}

// signTransfer produces the placeholder transfer signature. Real key
// material never reaches this client; the backend treats the field as
// opaque.
func signTransfer(sender, receiver string, amount float64) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%.8f|%d", sender, receiver, amount, time.Now().UnixNano()))
	return hex.EncodeToString(sum[:])
}

func newHistoryCommand(d *deps) *cobra.Command {
	var limit, offset int
	var pending bool
	var csvPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List wallet transactions, newest first",
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

			var txns []domain.Transaction
			var err error
			if pending {
				txns, err = d.app.Gateway.GetPendingTransactions(cmd.Context())
			} else {
				txns, err = d.app.Gateway.GetTransactionHistory(cmd.Context(), w.WalletAddress, limit, offset)
			}
			if err != nil {
				return friendly(err)
			}

			if csvPath != "" {
				if err := os.WriteFile(csvPath, []byte(export.Transactions(txns)), 0o600); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d transactions to %s\n", len(txns), csvPath)
				return nil
			}

			if len(txns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no transactions")
				return nil
			}
			for _, tx := range txns {
				dir := "in "
				if tx.IsOutgoing(w.WalletAddress) {
					dir = "out"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s %10.2f CRW  fee %.2f  %-9s  %s\n",
					tx.CreatedAt.Format("2006-01-02 15:04"), shortHash(tx.TransactionHash),
					dir, tx.Amount, tx.Fee, tx.Status, tx.Note)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")
	cmd.Flags().BoolVar(&pending, "pending", false, "show only unconfirmed transactions")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the page as CSV to the given file")
	return cmd
}

func shortHash(h string) string {
	if len(h) <= 12 {
		return h
	}
	return h[:12]
}
