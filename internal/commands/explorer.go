package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newExplorerCommand(d *deps) *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "explorer [block-hash]",
		Short: "Browse the blockchain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showBlock(cmd, d, args[0])
			}

			blocks, err := d.app.Gateway.GetBlocks(cmd.Context(), limit, offset)
			if err != nil {
				return friendly(err)
			}
			if len(blocks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no blocks")
				return nil
			}
			for _, b := range blocks {
				fmt.Fprintf(cmd.OutOrStdout(), "#%-6d %s  %s  nonce %d\n",
					b.BlockIndex, shortHash(b.Hash),
					time.Unix(b.Timestamp, 0).UTC().Format("2006-01-02 15:04:05"), b.Nonce)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")
	return cmd
}

func showBlock(cmd *cobra.Command, d *deps, hash string) error {
	detail, err := d.app.Gateway.GetBlock(cmd.Context(), hash)
	if err != nil {
		return friendly(err)
	}
	out := cmd.OutOrStdout()
	b := detail.Block
	fmt.Fprintf(out, "block #%d\n", b.BlockIndex)
	fmt.Fprintf(out, "hash:          %s\n", b.Hash)
	fmt.Fprintf(out, "previous hash: %s\n", b.PreviousHash)
	fmt.Fprintf(out, "merkle root:   %s\n", b.MerkleRoot)
	fmt.Fprintf(out, "mined:         %s by %s\n",
		time.Unix(b.Timestamp, 0).UTC().Format("2006-01-02 15:04:05"), b.MinedBy)
	fmt.Fprintf(out, "transactions:  %d\n", len(detail.Transactions))
	for _, tx := range detail.Transactions {
		fmt.Fprintf(out, "  %s  %s -> %s  %.2f CRW\n",
			shortHash(tx.TransactionHash), shortHash(tx.SenderWallet),
			shortHash(tx.ReceiverWallet), tx.Amount)
	}
	return nil
}

func newMineCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "Mine pending transactions into a block",
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

			block, err := d.app.Gateway.MineBlock(cmd.Context(), w.WalletAddress)
			if err != nil {
				return friendly(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mined block #%d (%s)\n", block.BlockIndex, shortHash(block.Hash))

			if err := d.app.RefreshWallet(cmd.Context()); err != nil {
				d.app.Log.Debug().Err(err).Msg("wallet refresh after mine failed")
			}
			return nil
		},
	}
}
