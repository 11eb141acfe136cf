package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
	"github.com/bloodlink/bloodlink-admin/pkg/core/services"
)

// ListBloodUnitsCmd creates the listBloodUnits command
func ListBloodUnitsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listBloodUnits",
		Short: "List stored blood units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")
			status, _ := cmd.Flags().GetString("status")
			group, _ := cmd.Flags().GetString("group")
			rh, _ := cmd.Flags().GetString("rh")
			component, _ := cmd.Flags().GetString("component")

			result, err := services.ListBloodUnits(app.Ctx, app.Client, app.Cache, app.Logger, bloodlink.ListBloodUnitsParams{
				Page:          page,
				Limit:         limit,
				Status:        model.BloodUnitStatus(status),
				Group:         model.BloodGroup(group),
				Rh:            model.Rh(rh),
				ComponentType: model.ComponentType(component),
			})
			if err != nil {
				return fmt.Errorf("failed to list blood units: %w", err)
			}

			printHeader(fmt.Sprintf("Blood units (%d)", result.Meta.Total))
			for _, u := range result.Data {
				fmt.Printf("- %s  %s %s\n  %s | %d/%d ml | expires %s\n",
					u.ID,
					bloodTypeBadge(u.BloodType),
					u.ComponentType,
					unitStatusBadge(u.Status),
					u.RemainingML,
					u.TotalVolumeML,
					u.ExpiredDate.Format(dateLayout),
				)
			}
			printMeta(result.Meta)
			return nil
		},
	}

	cmd.Flags().Int("page", 0, "Page number")
	cmd.Flags().Int("limit", 0, "Page size")
	cmd.Flags().String("status", "", "Filter by status (available, used, expired, damaged)")
	cmd.Flags().String("group", "", "Filter by ABO group (A, B, AB, O)")
	cmd.Flags().String("rh", "", "Filter by rhesus factor (+ or -)")
	cmd.Flags().String("component", "", "Filter by component (whole_blood, red_cells, plasma, platelets)")

	return cmd
}

// RegisterBloodUnitCmd creates the registerBloodUnit command
func RegisterBloodUnitCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registerBloodUnit <member_id> <donation_id>",
		Short: "Register a unit collected from a completed donation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, _ := cmd.Flags().GetString("group")
			rh, _ := cmd.Flags().GetString("rh")
			component, _ := cmd.Flags().GetString("component")
			volume, _ := cmd.Flags().GetInt("volume")
			expiresStr, _ := cmd.Flags().GetString("expires")

			expires, err := time.Parse(dateLayout, expiresStr)
			if err != nil {
				return fmt.Errorf("invalid --expires date: %w", err)
			}

			unit, err := services.RegisterBloodUnit(app.Ctx, app.Client, app.Cache, app.Logger, bloodlink.CreateBloodUnitInput{
				MemberID:      args[0],
				DonationID:    args[1],
				BloodType:     model.BloodType{Group: model.BloodGroup(group), Rh: model.Rh(rh)},
				ComponentType: model.ComponentType(component),
				TotalVolumeML: volume,
				ExpiredDate:   expires,
			})
			if err != nil {
				return fmt.Errorf("failed to register blood unit: %w", err)
			}

			fmt.Printf("\n✓ Unit registered: %s (%s, %d ml)\n", unit.ID, bloodTypeBadge(unit.BloodType), unit.TotalVolumeML)
			return nil
		},
	}

	cmd.Flags().String("group", "", "ABO group (A, B, AB, O)")
	cmd.Flags().String("rh", "", "Rhesus factor (+ or -)")
	cmd.Flags().String("component", string(model.ComponentWholeBlood), "Component type")
	cmd.Flags().Int("volume", 0, "Collected volume in ml (min 50)")
	cmd.Flags().String("expires", "", "Expiry date, YYYY-MM-DD")

	return cmd
}

// UpdateBloodUnitCmd creates the updateBloodUnit command
func UpdateBloodUnitCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateBloodUnit <unit_id>",
		Short: "Edit a unit's remaining volume or status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input bloodlink.UpdateBloodUnitInput

			if cmd.Flags().Changed("remaining") {
				v, _ := cmd.Flags().GetInt("remaining")
				input.RemainingML = &v
			}
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				status := model.BloodUnitStatus(v)
				input.Status = &status
			}
			input.Description, _ = cmd.Flags().GetString("description")

			unit, err := services.UpdateBloodUnit(app.Ctx, app.Client, app.Cache, app.Logger, args[0], input)
			if err != nil {
				return fmt.Errorf("failed to update blood unit: %w", err)
			}

			fmt.Printf("\n✓ Unit %s updated: %s, %d ml remaining\n", unit.ID, unitStatusBadge(unit.Status), unit.RemainingML)
			return nil
		},
	}

	cmd.Flags().Int("remaining", 0, "New remaining volume in ml")
	cmd.Flags().String("status", "", "New status (available, used, expired, damaged)")
	cmd.Flags().String("description", "", "Reason recorded in the audit log")

	return cmd
}

// SeparateBloodUnitCmd creates the separateBloodUnit command
func SeparateBloodUnitCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "separateBloodUnit <unit_id>",
		Short: "Split a whole-blood unit into red cells, plasma and platelets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			separated, err := services.SeparateBloodUnit(app.Ctx, app.Client, app.Cache, app.Logger, args[0])
			if err != nil {
				return fmt.Errorf("failed to separate blood unit: %w", err)
			}

			fmt.Printf("\n✓ Unit %s separated into:\n", args[0])
			fmt.Printf("  Red cells: %s (%d ml)\n", separated.RedCells.ID, separated.RedCells.TotalVolumeML)
			fmt.Printf("  Plasma:    %s (%d ml)\n", separated.Plasma.ID, separated.Plasma.TotalVolumeML)
			fmt.Printf("  Platelets: %s (%d ml)\n", separated.Platelets.ID, separated.Platelets.TotalVolumeML)
			return nil
		},
	}
}

// UnitHistoryCmd creates the unitHistory command
func UnitHistoryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unitHistory <unit_id>",
		Short: "Show the audit log of a blood unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := services.ListBloodUnitActions(app.Ctx, app.Client, app.Cache, app.Logger, args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch unit history: %w", err)
			}

			printHeader(fmt.Sprintf("Audit log for %s (%d entries)", args[0], len(actions)))
			for _, a := range actions {
				change := ""
				if a.PreviousValue != "" || a.NewValue != "" {
					change = fmt.Sprintf(" (%s → %s)", a.PreviousValue, a.NewValue)
				}
				fmt.Printf("- %s  %s by %s%s\n", a.CreatedAt.Format("2006-01-02 15:04"), a.Action, a.StaffName, change)
				if a.Description != "" {
					fmt.Printf("  %s\n", a.Description)
				}
			}
			return nil
		},
	}
}
