package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bright-coral-crab/tooldeck/internal/models"
)

// settingsCmd represents the settings command group
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Site settings commands",
}

// settingsShowCmd prints the current settings record
var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current site settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		st, kv, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer kv.Close()

		record, err := st.GetSettings(ctx, models.RoleAdmin)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}

		if GetOutput() == "json" {
			data, _ := json.MarshalIndent(record, "", "  ")
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Site name:          %s\n", record.SiteName)
		fmt.Printf("Description:        %s\n", record.SiteDescription)
		fmt.Printf("Contact email:      %s\n", record.ContactEmail)
		fmt.Printf("Items per page:     %d\n", record.ItemsPerPage)
		fmt.Printf("Notifications:      %v\n", record.EnableNotifications)
		fmt.Printf("User registration:  %v\n", record.EnableUserRegistration)
		fmt.Printf("Maintenance mode:   %v\n", record.MaintenanceMode)
		fmt.Printf("Analytics ID:       %s\n", record.AnalyticsID)
		fmt.Printf("Theme:              %s\n", record.Theme)

		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	rootCmd.AddCommand(settingsCmd)
}
