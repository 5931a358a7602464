package main

import (
	"os"

	"github.com/spf13/cobra"

	"smartincident/internal/interfaces/cli/migrate"
	"smartincident/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "smartincident",
		Short: "SmartIncident - multi-tenant incident ticketing backend",
		Long:  `SmartIncident is an incident ticketing backend with tenant-scoped access control, SLA-bearing ticket types and email notifications.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
