package commands

import (
	"fmt"

	"crescent-wallet/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

func newRegisterCommand(d *deps) *cobra.Command {
	var email, fullName, cnic, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new wallet account",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := d.app.Gateway.Register(cmd.Context(), ports.RegisterParams{
				Email:    email,
				FullName: fullName,
				CNIC:     cnic,
				Password: password,
			})
			if err != nil {
				return friendly(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "account created\nwallet address: %s\n", res.WalletAddress)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	cmd.Flags().StringVar(&cnic, "cnic", "", "CNIC number")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("cnic")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLoginCommand(d *deps) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := d.app.Login(cmd.Context(), email, password); err != nil {
				return friendly(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged in")
			if w, ok := d.app.Wallet.Snapshot(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "wallet %s, balance %.2f CRW\n", w.WalletAddress, w.Balance)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := d.app.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newStatusCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session and wallet state",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "session: %s\n", d.app.Session.State())

			if u := d.app.Session.User(); u != nil {
				fmt.Fprintf(out, "user: %s <%s>\n", u.FullName, u.Email)
			}
			if tok, ok := d.app.Session.Token(); ok {
				if exp := tokenExpiry(tok); exp != "" {
					fmt.Fprintf(out, "token expires: %s\n", exp)
				}
			}
			if w, ok := d.app.Wallet.Snapshot(); ok {
				fmt.Fprintf(out, "wallet: %s\n", w.WalletAddress)
				balance, preview := d.app.Wallet.DisplayBalance()
				label := ""
				if preview {
					label = " (preview)"
				}
				fmt.Fprintf(out, "balance: %.2f CRW%s\n", balance, label)
			}
			theme := "light"
			if d.app.UI.DarkMode() {
				theme = "dark"
			}
			fmt.Fprintf(out, "theme: %s\n", theme)
			return nil
		},
	}
}

// tokenExpiry extracts the exp claim without verifying the signature; this
// is display-only and never gates any behavior.
func tokenExpiry(tok string) string {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return ""
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ""
	}
	return exp.Time.Format("2006-01-02 15:04:05")
}
