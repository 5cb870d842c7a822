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
	toolFilter  string
	toolSortBy  string
	toolSortDir string
)

// toolCmd represents the tool command group
var toolCmd = &cobra.Command{
	Use:   "tool",
	Short: "Tool catalog commands",
	Long: `Commands for inspecting and maintaining the tool catalog.

These commands operate directly on the database file with full
administrative rights; role checks do not apply here.

Examples:
  # List all tools sorted by rating
  deckctl tool list --sort rating --dir desc

  # Search the catalog
  deckctl tool list --filter automation

  # Remove a tool
  deckctl tool remove "AI Writer Pro"`,
}

// toolListCmd lists the catalog
var toolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tool catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		st, kv, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer kv.Close()

		tools, err := st.ListTools(ctx, models.RoleAdmin)
		if err != nil {
			return fmt.Errorf("list tools: %w", err)
		}

		if toolFilter != "" {
			tools = store.FilterTools(tools, toolFilter)
		}
		if toolSortBy != "" {
			dir := store.Ascending
			if toolSortDir == string(store.Descending) {
				dir = store.Descending
			}
			tools = store.SortTools(tools, toolSortBy, dir)
		}

		if GetOutput() == "json" {
			data, _ := json.MarshalIndent(tools, "", "  ")
			fmt.Println(string(data))
			return nil
		}

		if len(tools) == 0 {
			fmt.Println("No tools found.")
			return nil
		}

		fmt.Printf("\n%-25s  %-6s  %-8s  %-9s  %-8s  %s\n",
			"NAME", "RATING", "REVIEWS", "BOOKMARKS", "FEATURED", "CATEGORIES")
		fmt.Println(strings.Repeat("-", 100))

		for _, t := range tools {
			cats := make([]string, len(t.Categories))
			for i, c := range t.Categories {
				cats[i] = string(c)
			}
			fmt.Printf("%-25s  %-6.1f  %-8d  %-9d  %-8v  %s\n",
				t.Name, t.Rating, t.Reviews, t.Bookmarks, t.Featured,
				strings.Join(cats, ", "))
		}
		fmt.Printf("\nTotal: %d tool(s)\n", len(tools))

		return nil
	},
}

// toolRemoveCmd removes a tool by name
var toolRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a tool from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		st, kv, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer kv.Close()

		if err := st.DeleteTool(ctx, models.RoleAdmin, args[0]); err != nil {
			return fmt.Errorf("remove tool: %w", err)
		}

		fmt.Printf("Removed %q from the catalog.\n", args[0])
		return nil
	},
}

func init() {
	toolListCmd.Flags().StringVar(&toolFilter, "filter", "", "substring filter over name, description, and tags")
	toolListCmd.Flags().StringVar(&toolSortBy, "sort", "", "sort field (name, description, rating, reviews, bookmarks, featured)")
	toolListCmd.Flags().StringVar(&toolSortDir, "dir", "asc", "sort direction (asc, desc)")

	toolCmd.AddCommand(toolListCmd)
	toolCmd.AddCommand(toolRemoveCmd)
	rootCmd.AddCommand(toolCmd)
}
