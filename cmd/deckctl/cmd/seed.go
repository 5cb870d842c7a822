package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/storage"
	"github.com/bright-coral-crab/tooldeck/internal/store"
)

var seedForce bool

// seedCmd initializes the database with the default demo data.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Initialize the database with default data",
	Long: `Create the database file and seed the default catalog, the demo
user roster, and the default site settings.

Collections that already exist in the database are left alone unless
--force is given, which discards the existing file first.

Examples:
  # Initialize a fresh database
  deckctl seed

  # Start over, discarding all stored data
  deckctl seed --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedForce {
			if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove database: %w", err)
			}
			PrintVerbose("removed %s", dbPath)
		}

		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}

		kv := storage.NewSQLiteKV(dbPath)
		if err := kv.Open(); err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer kv.Close()

		ctx := context.Background()
		st := store.New(kv)
		if err := st.Load(ctx); err != nil {
			return fmt.Errorf("seed store: %w", err)
		}

		tools, err := st.ListTools(ctx, models.RoleAdmin)
		if err != nil {
			return err
		}
		users, err := st.ListUsers(ctx, models.RoleAdmin)
		if err != nil {
			return err
		}

		fmt.Printf("Database ready at %s: %d tool(s), %d user(s).\n",
			dbPath, len(tools), len(users))
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "discard the existing database first")
	rootCmd.AddCommand(seedCmd)
}
