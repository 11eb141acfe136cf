package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
	"github.com/bloodlink/bloodlink-admin/pkg/core/services"
	"github.com/bloodlink/bloodlink-admin/pkg/core/workflow"
)

// ListDonationsCmd creates the listDonations command
func ListDonationsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listDonations",
		Short: "List donation requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")
			status, _ := cmd.Flags().GetString("status")
			campaignID, _ := cmd.Flags().GetString("campaign")
			search, _ := cmd.Flags().GetString("search")

			result, err := services.ListDonations(app.Ctx, app.Client, app.Cache, app.Logger, bloodlink.ListDonationsParams{
				Page:       page,
				Limit:      limit,
				Status:     workflow.DonationStatus(status),
				CampaignID: campaignID,
				Search:     search,
			})
			if err != nil {
				return fmt.Errorf("failed to list donations: %w", err)
			}

			printHeader(fmt.Sprintf("Donation requests (%d)", result.Meta.Total))
			for _, d := range result.Data {
				appointment := "unscheduled"
				if d.AppointmentDate != nil {
					appointment = d.AppointmentDate.Format("2006-01-02 15:04")
				}
				fmt.Printf("- %s  %s\n  %s | %s | %s\n",
					d.ID,
					d.Donor.FullName(),
					donationStatusBadge(workflow.DonationStatus(d.CurrentStatus)),
					appointment,
					truncate(d.CampaignName, 40),
				)
			}
			printMeta(result.Meta)
			return nil
		},
	}

	cmd.Flags().Int("page", 0, "Page number")
	cmd.Flags().Int("limit", 0, "Page size")
	cmd.Flags().String("status", "", "Filter by workflow status")
	cmd.Flags().String("campaign", "", "Filter by campaign id")
	cmd.Flags().String("search", "", "Search by donor name")

	return cmd
}

// ViewDonationCmd creates the viewDonation command
func ViewDonationCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewDonation <donation_id>",
		Short: "Show a donation request and the actions available on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			donation, err := services.GetDonation(app.Ctx, app.Client, app.Cache, app.Logger, args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch donation: %w", err)
			}

			status := workflow.DonationStatus(donation.CurrentStatus)

			printHeader("Donation request " + donation.ID)
			fmt.Printf("Donor:    %s\n", donation.Donor.FullName())
			if donation.Donor.BloodType != nil {
				fmt.Printf("Blood:    %s\n", bloodTypeBadge(*donation.Donor.BloodType))
			}
			fmt.Printf("Campaign: %s\n", donation.CampaignName)
			fmt.Printf("Status:   %s\n", donationStatusBadge(status))
			if donation.Note != "" {
				fmt.Printf("Note:     %s\n", donation.Note)
			}

			next := workflow.AllowedDonationTransitions(status)
			if len(next) == 0 {
				fmt.Println("\nNo further staff actions; this status is final.")
				return nil
			}
			fmt.Println("\nAvailable transitions:")
			for _, s := range next {
				fmt.Printf("  → %s (%s)\n", s, workflow.DonationStatusLabel(s))
			}
			return nil
		},
	}
}

// UpdateDonationStatusCmd creates the updateDonationStatus command
func UpdateDonationStatusCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateDonationStatus <donation_id> <status>",
		Short: "Move a donation request to a new workflow status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, _ := cmd.Flags().GetString("note")

			updated, err := services.UpdateDonationStatus(app.Ctx, app.Client, app.Cache, app.Logger,
				args[0], workflow.DonationStatus(args[1]), note)
			if err != nil {
				return fmt.Errorf("failed to update donation status: %w", err)
			}

			fmt.Printf("\n✓ Donation %s is now %s\n", updated.ID,
				donationStatusBadge(workflow.DonationStatus(updated.CurrentStatus)))
			return nil
		},
	}

	cmd.Flags().String("note", "", "Note recorded with the status change")

	return cmd
}

// CompleteDonationCmd creates the completeDonation command
func CompleteDonationCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completeDonation <donation_id> <member_id>",
		Short: "Mark a checked-in donation completed and register the collected unit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, _ := cmd.Flags().GetString("group")
			rh, _ := cmd.Flags().GetString("rh")
			volume, _ := cmd.Flags().GetInt("volume")
			expiresStr, _ := cmd.Flags().GetString("expires")

			expires, err := time.Parse(dateLayout, expiresStr)
			if err != nil {
				return fmt.Errorf("invalid --expires date: %w", err)
			}

			donation, unit, err := services.CompleteDonation(app.Ctx, app.Client, app.Client, app.Cache, app.Logger,
				args[0], bloodlink.CreateBloodUnitInput{
					MemberID:      args[1],
					BloodType:     model.BloodType{Group: model.BloodGroup(group), Rh: model.Rh(rh)},
					ComponentType: model.ComponentWholeBlood,
					TotalVolumeML: volume,
					ExpiredDate:   expires,
				})
			if err != nil {
				return fmt.Errorf("failed to complete donation: %w", err)
			}

			fmt.Printf("\n✓ Donation %s completed; unit %s registered (%s, %d ml)\n",
				donation.ID, unit.ID, bloodTypeBadge(unit.BloodType), unit.TotalVolumeML)
			return nil
		},
	}

	cmd.Flags().String("group", "", "ABO group of the collected unit (A, B, AB, O)")
	cmd.Flags().String("rh", "", "Rhesus factor of the collected unit (+ or -)")
	cmd.Flags().Int("volume", 0, "Collected volume in ml (min 50)")
	cmd.Flags().String("expires", "", "Expiry date, YYYY-MM-DD")

	return cmd
}

// SubmitResultCmd creates the submitResult command
func SubmitResultCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submitResult <donation_id> <template_id> <key=value>...",
		Short: "Attach blood test results to a completed donation",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, _ := cmd.Flags().GetString("notes")

			data := make(map[string]string)
			for _, pair := range args[2:] {
				key, value, found := strings.Cut(pair, "=")
				if !found || key == "" {
					return fmt.Errorf("result values must be key=value, got %q", pair)
				}
				data[key] = value
			}

			result, err := services.SubmitDonationResult(app.Ctx, app.Client, app.Client, app.Cache, app.Logger,
				args[0], args[1], data, notes)
			if err != nil {
				return fmt.Errorf("failed to submit result: %w", err)
			}

			fmt.Printf("\n✓ Result %s recorded for donation %s\n", result.ID, result.DonationRequestID)
			return nil
		},
	}

	cmd.Flags().String("notes", "", "Free-form notes attached to the result")

	return cmd
}

// ViewResultCmd creates the viewResult command
func ViewResultCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewResult <donation_id>",
		Short: "Show the test results attached to a donation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Client.GetDonationResult(app.Ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch result: %w", err)
			}

			printHeader("Donation result " + result.ID)
			for key, value := range result.ResultData {
				fmt.Printf("  %-20s %s\n", key, value)
			}
			if result.Notes != "" {
				fmt.Printf("\nNotes: %s\n", result.Notes)
			}
			return nil
		},
	}
}
