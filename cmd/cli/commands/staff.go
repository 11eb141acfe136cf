package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
	"github.com/bloodlink/bloodlink-admin/pkg/core/services"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listStaff",
		Short: "List staff and doctor profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")
			role, _ := cmd.Flags().GetString("role")
			search, _ := cmd.Flags().GetString("search")

			result, err := services.ListStaff(app.Ctx, app.Client, app.Cache, app.Logger, bloodlink.ListStaffParams{
				Page:   page,
				Limit:  limit,
				Role:   model.Role(role),
				Search: search,
			})
			if err != nil {
				return fmt.Errorf("failed to list staff: %w", err)
			}

			printHeader(fmt.Sprintf("Staff (%d)", result.Meta.Total))
			for _, s := range result.Data {
				fmt.Printf("- %s  %s %s (%s) - %s\n",
					s.ID, s.FirstName, s.LastName, s.Account.Role, s.Account.Email)
			}
			printMeta(result.Meta)
			return nil
		},
	}

	cmd.Flags().Int("page", 0, "Page number")
	cmd.Flags().Int("limit", 0, "Page size")
	cmd.Flags().String("role", "", "Filter by role (staff, doctor)")
	cmd.Flags().String("search", "", "Search by name")

	return cmd
}

// UpdateProfileCmd creates the updateProfile command. The endpoint depends on
// the area the CLI is running as: admins edit /admins/me, everyone else
// /staffs/me.
func UpdateProfileCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateProfile",
		Short: "Edit the signed-in account's own profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input bloodlink.UpdateProfileInput

			if cmd.Flags().Changed("first-name") {
				v, _ := cmd.Flags().GetString("first-name")
				input.FirstName = &v
			}
			if cmd.Flags().Changed("last-name") {
				v, _ := cmd.Flags().GetString("last-name")
				input.LastName = &v
			}
			if cmd.Flags().Changed("avatar") {
				v, _ := cmd.Flags().GetString("avatar")
				input.Avatar = &v
			}

			if app.Role == model.RoleAdmin {
				profile, err := services.UpdateOwnAdminProfile(app.Ctx, app.Client, app.Cache, app.Logger, input)
				if err != nil {
					return fmt.Errorf("failed to update profile: %w", err)
				}
				fmt.Printf("\n✓ Profile updated: %s %s\n", profile.FirstName, profile.LastName)
				return nil
			}

			profile, err := services.UpdateOwnStaffProfile(app.Ctx, app.Client, app.Cache, app.Logger, input)
			if err != nil {
				return fmt.Errorf("failed to update profile: %w", err)
			}
			fmt.Printf("\n✓ Profile updated: %s %s\n", profile.FirstName, profile.LastName)
			return nil
		},
	}

	cmd.Flags().String("first-name", "", "New first name")
	cmd.Flags().String("last-name", "", "New last name")
	cmd.Flags().String("avatar", "", "New avatar URL")

	return cmd
}
