package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bright-coral-crab/tooldeck/internal/models"
	"github.com/bright-coral-crab/tooldeck/internal/store"
)

var (
	userFilterTerm   string
	userFilterRole   string
	userFilterStatus string
)

// userCmd represents the user command group
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User roster commands",
	Long: `Commands for auditing the admin user roster.

Examples:
  # List all users
  deckctl user list

  # List active editors only
  deckctl user list --role editor --status active`,
}

// userListCmd lists the roster
var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		st, kv, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer kv.Close()

		users, err := st.ListUsers(ctx, models.RoleAdmin)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}

		users = store.FilterUsers(users, store.UserFilter{
			Term:   userFilterTerm,
			Role:   userFilterRole,
			Status: userFilterStatus,
		})

		if GetOutput() == "json" {
			data, _ := json.MarshalIndent(users, "", "  ")
			fmt.Println(string(data))
			return nil
		}

		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}

		fmt.Printf("\n%-36s  %-20s  %-25s  %-8s  %-8s  %s\n",
			"ID", "NAME", "EMAIL", "ROLE", "STATUS", "LAST LOGIN")
		fmt.Println(strings.Repeat("-", 120))

		for _, u := range users {
			fmt.Printf("%-36s  %-20s  %-25s  %-8s  %-8s  %s\n",
				u.ID, u.Name, u.Email, u.Role, u.Status, u.LastLogin)
		}
		fmt.Printf("\nTotal: %d user(s)\n", len(users))

		return nil
	},
}

func init() {
	userListCmd.Flags().StringVar(&userFilterTerm, "filter", "", "substring filter over name and email")
	userListCmd.Flags().StringVar(&userFilterRole, "role", "all", "role filter (admin, editor, viewer, all)")
	userListCmd.Flags().StringVar(&userFilterStatus, "status", "all", "status filter (active, inactive, all)")

	userCmd.AddCommand(userListCmd)
	rootCmd.AddCommand(userCmd)
}
