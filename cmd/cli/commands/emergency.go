package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/services"
	"github.com/bloodlink/bloodlink-admin/pkg/core/workflow"
)

// ListEmergenciesCmd creates the listEmergencies command
func ListEmergenciesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listEmergencies",
		Short: "List emergency blood requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")
			status, _ := cmd.Flags().GetString("status")

			result, err := services.ListEmergencyRequests(app.Ctx, app.Client, app.Cache, app.Logger, bloodlink.ListEmergencyParams{
				Page:   page,
				Limit:  limit,
				Status: workflow.EmergencyStatus(status),
			})
			if err != nil {
				return fmt.Errorf("failed to list emergency requests: %w", err)
			}

			printHeader(fmt.Sprintf("Emergency requests (%d)", result.Meta.Total))
			for _, r := range result.Data {
				fmt.Printf("- %s  %s needs %s %s, %d ml\n  %s | raised %s\n",
					r.ID,
					r.RequestedBy.FullName(),
					bloodTypeBadge(r.BloodType),
					r.ComponentType,
					r.RequiredVolumeML,
					emergencyStatusBadge(workflow.EmergencyStatus(r.Status)),
					r.CreatedAt.Format(dateLayout),
				)
			}
			printMeta(result.Meta)
			return nil
		},
	}

	cmd.Flags().Int("page", 0, "Page number")
	cmd.Flags().Int("limit", 0, "Page size")
	cmd.Flags().String("status", "", "Filter by status (pending, approved, rejected, contacts_provided, expired)")

	return cmd
}

// ViewEmergencyCmd creates the viewEmergency command
func ViewEmergencyCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewEmergency <request_id>",
		Short: "Show an emergency request and its compatible inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := services.GetEmergencyRequest(app.Ctx, app.Client, app.Cache, app.Logger, args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch emergency request: %w", err)
			}

			status := workflow.EmergencyStatus(request.Status)

			printHeader("Emergency request " + request.ID)
			fmt.Printf("Requested by: %s\n", request.RequestedBy.FullName())
			fmt.Printf("Needs:        %s %s, %d ml\n", bloodTypeBadge(request.BloodType), request.ComponentType, request.RequiredVolumeML)
			fmt.Printf("Status:       %s\n", emergencyStatusBadge(status))
			if request.Description != "" {
				fmt.Printf("Description:  %s\n", request.Description)
			}
			if request.RejectionReason != "" {
				fmt.Printf("Rejected:     %s\n", request.RejectionReason)
			}

			if actions := workflow.AllowedEmergencyActions(status); len(actions) > 0 {
				fmt.Println("\nAvailable actions:")
				for _, a := range actions {
					fmt.Printf("  → %s\n", a)
				}
			}

			matched, err := services.CompatibleUnits(app.Ctx, app.Client, app.Logger, request)
			if err != nil {
				return fmt.Errorf("failed to search compatible units: %w", err)
			}

			fmt.Printf("\nCompatible units in stock (%d):\n", len(matched))
			for _, u := range matched {
				fmt.Printf("  %s  %s %s, %d ml, expires %s\n",
					u.ID, bloodTypeBadge(u.BloodType), u.ComponentType, u.RemainingML, u.ExpiredDate.Format(dateLayout))
			}
			return nil
		},
	}
}

// ApproveEmergencyCmd creates the approveEmergency command
func ApproveEmergencyCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approveEmergency <request_id>",
		Short: "Approve a pending emergency request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := services.ApproveEmergencyRequest(app.Ctx, app.Client, app.Cache, app.Logger, args[0])
			if err != nil {
				return fmt.Errorf("failed to approve request: %w", err)
			}
			fmt.Printf("\n✓ Request %s is now %s\n", updated.ID,
				emergencyStatusBadge(workflow.EmergencyStatus(updated.Status)))
			return nil
		},
	}
}

// RejectEmergencyCmd creates the rejectEmergency command
func RejectEmergencyCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rejectEmergency <request_id> <reason>",
		Short: "Reject a pending emergency request with a reason",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := services.RejectEmergencyRequest(app.Ctx, app.Client, app.Cache, app.Logger, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to reject request: %w", err)
			}
			fmt.Printf("\n✓ Request %s is now %s\n", updated.ID,
				emergencyStatusBadge(workflow.EmergencyStatus(updated.Status)))
			return nil
		},
	}
}

// ProvideContactsCmd creates the provideContacts command
func ProvideContactsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provideContacts <request_id> <unit_id>...",
		Short: "Serve an approved emergency request with compatible units",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, _ := cmd.Flags().GetString("note")

			updated, err := services.ProvideEmergencyContacts(app.Ctx, app.Client, app.Client, app.Cache, app.Logger,
				args[0], args[1:], note)
			if err != nil {
				return fmt.Errorf("failed to provide contacts: %w", err)
			}

			fmt.Printf("\n✓ Request %s served with %d unit(s); now %s\n", updated.ID, len(args)-1,
				emergencyStatusBadge(workflow.EmergencyStatus(updated.Status)))
			return nil
		},
	}

	cmd.Flags().String("note", "", "Note recorded with the action")

	return cmd
}

// EmergencyLogsCmd creates the emergencyLogs command
func EmergencyLogsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "emergencyLogs <request_id>",
		Short: "Show the action log of an emergency request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := services.ListEmergencyRequestLogs(app.Ctx, app.Client, app.Cache, app.Logger, args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch request logs: %w", err)
			}

			printHeader(fmt.Sprintf("Action log for %s (%d entries)", args[0], len(logs)))
			for _, l := range logs {
				change := ""
				if l.PreviousValue != "" || l.NewValue != "" {
					change = fmt.Sprintf(" (%s → %s)", l.PreviousValue, l.NewValue)
				}
				fmt.Printf("- %s  %s by %s%s\n", l.CreatedAt.Format("2006-01-02 15:04"), l.Action, l.StaffName, change)
				if l.Note != "" {
					fmt.Printf("  %s\n", l.Note)
				}
			}
			return nil
		},
	}
}
