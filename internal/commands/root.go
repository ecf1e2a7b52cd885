// Package commands wires the CLI surface. Commands are thin glue: they read
// from the injected stores, call gateway methods and print; all invariants
// live in the packages underneath.
package commands

import (
	"fmt"

	"crescent-wallet/config"
	"crescent-wallet/internal/app"
	"crescent-wallet/pkg/apperror"
	"crescent-wallet/pkg/logger"

	"github.com/spf13/cobra"
)

// deps is filled in by the root command's PersistentPreRunE and shared by
// every subcommand.
type deps struct {
	cfg *config.Config
	app *app.App
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(version string) *cobra.Command {
	d := &deps{}
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:     "crescent",
		Short:   "Crescent Wallet command-line client",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

			a, err := app.New(cfg, log)
			if err != nil {
				return err
			}
			a.Bootstrap(cmd.Context())

			d.cfg = cfg
			d.app = a
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")

	rootCmd.AddCommand(
		newRegisterCommand(d),
		newLoginCommand(d),
		newLogoutCommand(d),
		newStatusCommand(d),
		newBalanceCommand(d),
		newSendCommand(d),
		newHistoryCommand(d),
		newExplorerCommand(d),
		newMineCommand(d),
		newReportCommand(d),
		newBeneficiaryCommand(d),
		newAdminCommand(d),
		newThemeCommand(d),
		newMockServerCommand(d),
	)

	return rootCmd
}

// friendly turns gateway failures into messages fit for the terminal.
func friendly(err error) error {
	if err == nil {
		return nil
	}
	switch apperror.KindOf(err) {
	case apperror.KindUnauthorized:
		return fmt.Errorf("your session has expired, please login again")
	case apperror.KindTransient:
		return fmt.Errorf("could not reach the wallet service, try again later")
	default:
		return err
	}
}

// requireAuth guards commands that only make sense with a session.
func requireAuth(d *deps) error {
	if !d.app.Session.IsAuthenticated() {
		return fmt.Errorf("not logged in, run: crescent login")
	}
	return nil
}
