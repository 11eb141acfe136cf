package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
	"github.com/bloodlink/bloodlink-admin/pkg/core/services"
)

const dateLayout = "2006-01-02"

// ListCampaignsCmd creates the listCampaigns command
func ListCampaignsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listCampaigns",
		Short: "List donation campaigns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")
			status, _ := cmd.Flags().GetString("status")
			search, _ := cmd.Flags().GetString("search")

			result, err := services.ListCampaigns(app.Ctx, app.Client, app.Cache, app.Logger, bloodlink.ListCampaignsParams{
				Page:   page,
				Limit:  limit,
				Status: model.CampaignStatus(status),
				Search: search,
			})
			if err != nil {
				return fmt.Errorf("failed to list campaigns: %w", err)
			}

			printHeader(fmt.Sprintf("Campaigns (%d)", result.Meta.Total))
			for _, c := range result.Data {
				end := "open-ended"
				if c.EndDate != nil {
					end = c.EndDate.Format(dateLayout)
				}
				fmt.Printf("- %s  %s\n  %s | %s → %s | limit %d | %s\n",
					c.ID,
					c.Name,
					campaignStatusBadge(c.Status),
					c.StartDate.Format(dateLayout),
					end,
					c.LimitDonation,
					c.Location,
				)
			}
			printMeta(result.Meta)
			return nil
		},
	}

	cmd.Flags().Int("page", 0, "Page number")
	cmd.Flags().Int("limit", 0, "Page size")
	cmd.Flags().String("status", "", "Filter by status (not_started, active, ended, archived)")
	cmd.Flags().String("search", "", "Search by name")

	return cmd
}

// CreateCampaignCmd creates the createCampaign command
func CreateCampaignCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createCampaign <name>",
		Short: "Create a campaign (status derived from its dates)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			location, _ := cmd.Flags().GetString("location")
			banner, _ := cmd.Flags().GetString("banner")
			limit, _ := cmd.Flags().GetInt("limit-donation")
			startStr, _ := cmd.Flags().GetString("start")
			endStr, _ := cmd.Flags().GetString("end")
			collectionStr, _ := cmd.Flags().GetString("collection-date")

			start, err := time.Parse(dateLayout, startStr)
			if err != nil {
				return fmt.Errorf("invalid --start date: %w", err)
			}

			draft := services.CampaignDraft{
				Name:          args[0],
				Description:   description,
				StartDate:     start,
				Banner:        banner,
				Location:      location,
				LimitDonation: limit,
			}
			if endStr != "" {
				end, err := time.Parse(dateLayout, endStr)
				if err != nil {
					return fmt.Errorf("invalid --end date: %w", err)
				}
				draft.EndDate = &end
			}
			if collectionStr != "" {
				collection, err := time.Parse(dateLayout, collectionStr)
				if err != nil {
					return fmt.Errorf("invalid --collection-date: %w", err)
				}
				draft.BloodCollectionDate = &collection
			}

			campaign, err := services.CreateCampaign(app.Ctx, app.Client, app.Cache, app.Logger, draft, time.Now())
			if err != nil {
				return fmt.Errorf("failed to create campaign: %w", err)
			}

			fmt.Printf("\n✓ Campaign created: %s (%s)\n", campaign.ID, campaignStatusBadge(campaign.Status))
			return nil
		},
	}

	cmd.Flags().String("description", "", "Campaign description (required)")
	cmd.Flags().String("location", "", "Campaign location (required)")
	cmd.Flags().String("start", "", "Start date, YYYY-MM-DD (required)")
	cmd.Flags().String("end", "", "End date, YYYY-MM-DD")
	cmd.Flags().String("collection-date", "", "Blood collection date, YYYY-MM-DD")
	cmd.Flags().String("banner", "", "Banner image URL")
	cmd.Flags().Int("limit-donation", 0, "Maximum number of donations (0 = unlimited)")

	return cmd
}

// UpdateCampaignCmd creates the updateCampaign command
func UpdateCampaignCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateCampaign <campaign_id>",
		Short: "Edit a campaign (only the given flags change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input bloodlink.UpdateCampaignInput

			if cmd.Flags().Changed("name") {
				v, _ := cmd.Flags().GetString("name")
				input.Name = &v
			}
			if cmd.Flags().Changed("description") {
				v, _ := cmd.Flags().GetString("description")
				input.Description = &v
			}
			if cmd.Flags().Changed("location") {
				v, _ := cmd.Flags().GetString("location")
				input.Location = &v
			}
			if cmd.Flags().Changed("banner") {
				v, _ := cmd.Flags().GetString("banner")
				input.Banner = &v
			}
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				status := model.CampaignStatus(v)
				input.Status = &status
			}
			if cmd.Flags().Changed("limit-donation") {
				v, _ := cmd.Flags().GetInt("limit-donation")
				input.LimitDonation = &v
			}
			if cmd.Flags().Changed("end") {
				v, _ := cmd.Flags().GetString("end")
				end, err := time.Parse(dateLayout, v)
				if err != nil {
					return fmt.Errorf("invalid --end date: %w", err)
				}
				input.EndDate = &end
			}

			campaign, err := services.UpdateCampaign(app.Ctx, app.Client, app.Cache, app.Logger, args[0], input)
			if err != nil {
				return fmt.Errorf("failed to update campaign: %w", err)
			}

			fmt.Printf("\n✓ Campaign updated: %s (%s)\n", campaign.ID, campaignStatusBadge(campaign.Status))
			return nil
		},
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("location", "", "New location")
	cmd.Flags().String("banner", "", "New banner URL")
	cmd.Flags().String("status", "", "New status (not_started, active, ended, archived)")
	cmd.Flags().String("end", "", "New end date, YYYY-MM-DD")
	cmd.Flags().Int("limit-donation", 0, "New donation limit")

	return cmd
}

// DeleteCampaignCmd creates the deleteCampaign command
func DeleteCampaignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteCampaign <campaign_id>",
		Short: "Delete a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteCampaign(app.Ctx, app.Client, app.Cache, app.Logger, args[0]); err != nil {
				return fmt.Errorf("failed to delete campaign: %w", err)
			}
			fmt.Printf("\n✓ Campaign %s deleted.\n", args[0])
			return nil
		},
	}
}
