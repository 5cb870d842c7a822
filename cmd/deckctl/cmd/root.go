// Package cmd contains the CLI commands for deckctl.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bright-coral-crab/tooldeck/internal/storage"
	"github.com/bright-coral-crab/tooldeck/internal/store"
)

var (
	// Used for flags
	verbose bool
	output  string
	dbPath  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "deckctl",
	Short: "deckctl - ToolDeck administration CLI",
	Long: `deckctl manages the ToolDeck directory database directly,
without going through the HTTP API.

It operates on the same SQLite file as the server and is intended for
operators: inspecting the catalog, auditing the user roster, and
re-seeding a fresh deployment.

Examples:
  # List the tool catalog
  deckctl tool list

  # List users filtered by role
  deckctl user list --role editor

  # Show the current site settings
  deckctl settings show`,
	// Run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		// Show help by default
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "output format (table, json)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "data/tooldeck.db", "path to the database file")
}

// GetOutput returns the output format.
func GetOutput() string {
	return output
}

// PrintVerbose prints a message only if verbose mode is enabled.
func PrintVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Printf(format+"\n", args...)
	}
}

// openStore opens the database and hydrates the entity store.
func openStore(ctx context.Context) (*store.Store, *storage.SQLiteKV, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, nil, fmt.Errorf("database %s not found (is the server initialized?)", dbPath)
	}

	kv := storage.NewSQLiteKV(dbPath)
	if err := kv.Open(); err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	st := store.New(kv)
	if err := st.Load(ctx); err != nil {
		kv.Close()
		return nil, nil, fmt.Errorf("load store: %w", err)
	}

	return st, kv, nil
}
