package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Blank imports run the init() registrations for migrations and seeders.
	_ "github.com/shashiranjanraj/slopestock/database/migrations"
	_ "github.com/shashiranjanraj/slopestock/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slopestock",
	Short: "slopestock — ski & snowboard gear inventory service",
	Long: "slopestock manages a small retail catalog of ski and snowboard gear\n" +
		"behind an HTTP/JSON API. Use this CLI to run the server and manage\n" +
		"the database.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}
