package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloodlink/bloodlink-admin/pkg/core/services"
)

// DashboardCmd creates the dashboard command
func DashboardCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the aggregate dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := services.GetDashboardStats(app.Ctx, app.Client, app.Cache, app.Logger)
			if err != nil {
				return fmt.Errorf("failed to fetch dashboard stats: %w", err)
			}

			printHeader("BloodLink dashboard")
			fmt.Printf("Campaigns:           %d (%d active)\n", stats.TotalCampaigns, stats.ActiveCampaigns)
			fmt.Printf("Donations:           %d (%d completed, %d this month)\n",
				stats.TotalDonations, stats.CompletedDonations, stats.DonationsThisMonth)
			fmt.Printf("Available units:     %d\n", stats.AvailableBloodUnits)
			fmt.Printf("Pending emergencies: %d\n", stats.PendingEmergencies)
			fmt.Printf("Members:             %d\n", stats.TotalMembers)

			if len(stats.BloodVolumeByComponent) > 0 {
				fmt.Println("\nStored volume by component:")
				for component, ml := range stats.BloodVolumeByComponent {
					fmt.Printf("  %-12s %d ml\n", component, ml)
				}
			}
			return nil
		},
	}
}
