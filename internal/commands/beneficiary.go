package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBeneficiaryCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "beneficiary",
		Aliases: []string{"ben"},
		Short:   "Manage saved destination wallets",
	}

	var wallet, nickname string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Save a destination wallet under a nickname",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(d); err != nil {
				return err
			}
			b, err := d.app.Gateway.AddBeneficiary(cmd.Context(), wallet, nickname)
			if err != nil {
				return friendly(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %q -> %s\n", b.Nickname, b.BeneficiaryWalletID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&wallet, "wallet", "", "beneficiary wallet address")
	addCmd.Flags().StringVar(&nickname, "nickname", "", "display name")
	_ = addCmd.MarkFlagRequired("wallet")
	_ = addCmd.MarkFlagRequired("nickname")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved beneficiaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(d); err != nil {
				return err
			}
			bens, err := d.app.Gateway.ListBeneficiaries(cmd.Context())
			if err != nil {
				return friendly(err)
			}
			if len(bens) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no beneficiaries saved")
				return nil
			}
			for _, b := range bens {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", b.Nickname, b.BeneficiaryWalletID)
			}
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd)
	return cmd
}
