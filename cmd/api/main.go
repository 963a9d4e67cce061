package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-api",
	Short: "Portfolio site API and admin backend",
	Long: `Serves the public portfolio API and the admin CMS API.

Available subcommands:
  serve         - run the HTTP server (default)
  migrate       - apply the database schema and exit
  hash-password - print a bcrypt hash for ADMIN_PASSWORD_HASH`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, hashPasswordCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
