package main

import (
	"os"

	"github.com/spf13/cobra"

	"mantis/internal/interfaces/cli/migrate"
	"mantis/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mantis",
		Short: "Mantis - maintenance management for production equipment",
		Long:  `Mantis tracks equipment, maintenance plans, work orders, spare parts and inspections for a production site.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
