package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newAdminCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Operational and diagnostic views",
	}
	cmd.AddCommand(newLogsCommand(d))
	cmd.AddCommand(newLogStatsCommand(d))
	cmd.AddCommand(newHealthCommand(d))
	return cmd
}

func newLogsCommand(d *deps) *cobra.Command {
	var logType string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Tail backend system logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(d); err != nil {
				return err
			}
			logs, err := d.app.Gateway.GetSystemLogs(cmd.Context(), logType, limit, offset)
			if err != nil {
				return friendly(err)
			}
			if len(logs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no log entries")
				return nil
			}
			for _, l := range logs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s %s\n",
					l.CreatedAt.Format("2006-01-02 15:04:05"), l.LogType, l.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logType, "type", "", "filter by log type")
	cmd.Flags().IntVar(&limit, "limit", 50, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")
	return cmd
}

func newLogStatsCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "log-stats",
		Short: "Show log volume per type",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(d); err != nil {
				return err
			}
			stats, err := d.app.Gateway.GetSystemLogStats(cmd.Context())
			if err != nil {
				return friendly(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total: %d\n", stats.Total)

			types := make([]string, 0, len(stats.ByType))
			for t := range stats.ByType {
				types = append(types, t)
			}
			sort.Strings(types)
			for _, t := range types {
				fmt.Fprintf(out, "  %-12s %d\n", t, stats.ByType[t])
			}
			return nil
		},
	}
}

func newHealthCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend health",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := d.app.Gateway.GetSystemHealth(cmd.Context())
			if err != nil {
				return friendly(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\nuptime: %s\n", h.Status, h.Uptime)
			return nil
		},
	}
}
