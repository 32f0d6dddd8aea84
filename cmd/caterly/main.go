package main

import (
	"os"

	"github.com/spf13/cobra"

	"caterly/internal/interfaces/cli/migrate"
	"caterly/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "caterly",
		Short: "Caterly - catering marketplace backend",
		Long:  `Caterly is the catering marketplace backend with a built-in HTTP server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
