package commands

import (
	"fmt"

	"crescent-wallet/internal/mockapi"

	"github.com/spf13/cobra"
)

func newMockServerCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "mock-server",
		Short: "Run the in-memory backend for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := mockapi.NewServer(d.cfg.Mock.JWTSecret, d.cfg.Mock.JWTExpiry, d.app.Log)
			addr := d.cfg.Mock.Addr()
			fmt.Fprintf(cmd.OutOrStdout(), "mock backend listening on %s\n", addr)
			fmt.Fprintf(cmd.OutOrStdout(), "point the client at it with CRW_API_BASE_URL=http://%s/api\n", addr)
			return srv.Run(addr)
		},
	}
}
