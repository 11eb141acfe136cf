package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/services"
)

// ListTemplatesCmd creates the listTemplates command
func ListTemplatesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listTemplates",
		Short: "List donation result templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")

			params := bloodlink.ListTemplatesParams{Page: page, Limit: limit}
			if cmd.Flags().Changed("active") {
				active, _ := cmd.Flags().GetBool("active")
				params.Active = &active
			}

			result, err := services.ListTemplates(app.Ctx, app.Client, app.Cache, app.Logger, params)
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}

			printHeader(fmt.Sprintf("Result templates (%d)", result.Meta.Total))
			for _, tpl := range result.Data {
				marker := " "
				if tpl.Active {
					marker = styleOK.Render("●")
				}
				fmt.Printf("%s %s  %s (v%d, %d fields)\n", marker, tpl.ID, tpl.Name, tpl.Version, len(tpl.Items))
			}
			printMeta(result.Meta)
			return nil
		},
	}

	cmd.Flags().Int("page", 0, "Page number")
	cmd.Flags().Int("limit", 0, "Page size")
	cmd.Flags().Bool("active", false, "Only the active template")

	return cmd
}

// ViewTemplateCmd creates the viewTemplate command
func ViewTemplateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewTemplate <template_id>",
		Short: "Show a result template's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := services.GetTemplate(app.Ctx, app.Client, app.Cache, app.Logger, args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch template: %w", err)
			}

			printHeader(fmt.Sprintf("%s (v%d)", tpl.Name, tpl.Version))
			for _, item := range tpl.Items {
				required := ""
				if item.Required {
					required = styleWarn.Render(" required")
				}
				constraint := ""
				switch {
				case item.MinValue != nil && item.MaxValue != nil:
					constraint = fmt.Sprintf(" [%g–%g]", *item.MinValue, *item.MaxValue)
				case len(item.Options) > 0:
					constraint = fmt.Sprintf(" %v", item.Options)
				case item.MaxLength > 0:
					constraint = fmt.Sprintf(" [max %d chars]", item.MaxLength)
				}
				fmt.Printf("  %-20s %s%s%s\n", item.Key, item.Type, constraint, required)
			}
			return nil
		},
	}
}

// readTemplateInput loads a SaveTemplateInput from a JSON file.
func readTemplateInput(path string) (bloodlink.SaveTemplateInput, error) {
	var input bloodlink.SaveTemplateInput

	data, err := os.ReadFile(path)
	if err != nil {
		return input, fmt.Errorf("failed to read template file: %w", err)
	}
	if err := json.Unmarshal(data, &input); err != nil {
		return input, fmt.Errorf("failed to parse template file: %w", err)
	}
	return input, nil
}

// CreateTemplateCmd creates the createTemplate command
func CreateTemplateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "createTemplate <template_file.json>",
		Short: "Create a result template from a JSON definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readTemplateInput(args[0])
			if err != nil {
				return err
			}

			tpl, err := services.CreateTemplate(app.Ctx, app.Client, app.Cache, app.Logger, input)
			if err != nil {
				return fmt.Errorf("failed to create template: %w", err)
			}

			fmt.Printf("\n✓ Template created: %s (%s, v%d)\n", tpl.ID, tpl.Name, tpl.Version)
			return nil
		},
	}
}

// UpdateTemplateCmd creates the updateTemplate command
func UpdateTemplateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "updateTemplate <template_id> <template_file.json>",
		Short: "Save a new version of a result template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readTemplateInput(args[1])
			if err != nil {
				return err
			}

			tpl, err := services.UpdateTemplate(app.Ctx, app.Client, app.Cache, app.Logger, args[0], input)
			if err != nil {
				return fmt.Errorf("failed to update template: %w", err)
			}

			fmt.Printf("\n✓ Template %s saved as v%d\n", tpl.ID, tpl.Version)
			return nil
		},
	}
}

// ActivateTemplateCmd creates the activateTemplate command
func ActivateTemplateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "activateTemplate <template_id>",
		Short: "Make a template the default for new results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := services.ActivateTemplate(app.Ctx, app.Client, app.Cache, app.Logger, args[0])
			if err != nil {
				return fmt.Errorf("failed to activate template: %w", err)
			}
			fmt.Printf("\n✓ Template %s (%s) is now active.\n", tpl.ID, tpl.Name)
			return nil
		},
	}
}

// DeleteTemplateCmd creates the deleteTemplate command
func DeleteTemplateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteTemplate <template_id>",
		Short: "Delete a result template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteTemplate(app.Ctx, app.Client, app.Cache, app.Logger, args[0]); err != nil {
				return fmt.Errorf("failed to delete template: %w", err)
			}
			fmt.Printf("\n✓ Template %s deleted.\n", args[0])
			return nil
		},
	}
}
