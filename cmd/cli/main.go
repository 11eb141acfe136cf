package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-admin/cmd/cli/commands"
	"github.com/bloodlink/bloodlink-admin/internal/config"
	"github.com/bloodlink/bloodlink-admin/pkg/auth"
	"github.com/bloodlink/bloodlink-admin/pkg/cache"
	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
	"github.com/bloodlink/bloodlink-admin/pkg/utils/logging"
)

var (
	env     string
	role    string
	verbose bool
	app     *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bloodlink",
		Short: "BloodLink admin CLI - Manage campaigns, donations and blood inventory",
		Long:  `A CLI tool for the BloodLink donation platform: campaigns, donation requests, blood inventory, emergency requests, blogs and result templates.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: staging, prod, etc.)")
	rootCmd.PersistentFlags().StringVarP(&role, "role", "r", string(model.RoleAdmin), "Dashboard area to act as (admin, staff, doctor)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug output on the console")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.LoginCmd(appRef()))
	rootCmd.AddCommand(commands.LogoutCmd(appRef()))
	rootCmd.AddCommand(commands.WhoAmICmd(appRef()))
	rootCmd.AddCommand(commands.DashboardCmd(appRef()))
	rootCmd.AddCommand(commands.ListCampaignsCmd(appRef()))
	rootCmd.AddCommand(commands.CreateCampaignCmd(appRef()))
	rootCmd.AddCommand(commands.UpdateCampaignCmd(appRef()))
	rootCmd.AddCommand(commands.DeleteCampaignCmd(appRef()))
	rootCmd.AddCommand(commands.ListDonationsCmd(appRef()))
	rootCmd.AddCommand(commands.ViewDonationCmd(appRef()))
	rootCmd.AddCommand(commands.UpdateDonationStatusCmd(appRef()))
	rootCmd.AddCommand(commands.CompleteDonationCmd(appRef()))
	rootCmd.AddCommand(commands.SubmitResultCmd(appRef()))
	rootCmd.AddCommand(commands.ViewResultCmd(appRef()))
	rootCmd.AddCommand(commands.ListBloodUnitsCmd(appRef()))
	rootCmd.AddCommand(commands.RegisterBloodUnitCmd(appRef()))
	rootCmd.AddCommand(commands.UpdateBloodUnitCmd(appRef()))
	rootCmd.AddCommand(commands.SeparateBloodUnitCmd(appRef()))
	rootCmd.AddCommand(commands.UnitHistoryCmd(appRef()))
	rootCmd.AddCommand(commands.ListEmergenciesCmd(appRef()))
	rootCmd.AddCommand(commands.ViewEmergencyCmd(appRef()))
	rootCmd.AddCommand(commands.ApproveEmergencyCmd(appRef()))
	rootCmd.AddCommand(commands.RejectEmergencyCmd(appRef()))
	rootCmd.AddCommand(commands.ProvideContactsCmd(appRef()))
	rootCmd.AddCommand(commands.EmergencyLogsCmd(appRef()))
	rootCmd.AddCommand(commands.ListBlogsCmd(appRef()))
	rootCmd.AddCommand(commands.CreateBlogCmd(appRef()))
	rootCmd.AddCommand(commands.UpdateBlogCmd(appRef()))
	rootCmd.AddCommand(commands.DeleteBlogCmd(appRef()))
	rootCmd.AddCommand(commands.ListTemplatesCmd(appRef()))
	rootCmd.AddCommand(commands.ViewTemplateCmd(appRef()))
	rootCmd.AddCommand(commands.CreateTemplateCmd(appRef()))
	rootCmd.AddCommand(commands.UpdateTemplateCmd(appRef()))
	rootCmd.AddCommand(commands.ActivateTemplateCmd(appRef()))
	rootCmd.AddCommand(commands.DeleteTemplateCmd(appRef()))
	rootCmd.AddCommand(commands.ListStaffCmd(appRef()))
	rootCmd.AddCommand(commands.UpdateProfileCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared context. Commands close over the pointer; the
// fields are populated by initApp before any RunE fires.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, session, API client, and cache
func initApp() error {
	a := appRef()
	a.Ctx = context.Background()

	switch model.Role(role) {
	case model.RoleAdmin, model.RoleStaff, model.RoleDoctor:
		a.Role = model.Role(role)
	default:
		return fmt.Errorf("unknown role %q (want admin, staff or doctor)", role)
	}

	// Initialize logger
	logger, err := logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.Logger = logger

	logger.Info("Starting application", zap.String("environment", env), zap.String("role", role))

	// Load configuration
	logger.Debug("Loading configuration")
	cfg, err := config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.Cfg = cfg

	// Initialize identity-provider session
	a.Session = auth.NewSession(cfg.Auth, env, logger)

	// Initialize API client with the session's token getter
	client, err := bloodlink.New(bloodlink.Config{
		BaseURL:       cfg.APIBaseURL,
		TokenGetter:   a.Session.TokenGetter(),
		TokenTemplate: cfg.Auth.TokenTemplate,
		Timeout:       cfg.RequestTimeout(),
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}
	a.Client = client

	// Initialize the query cache
	a.Cache = cache.New()

	logger.Debug("Application initialized", zap.String("api", cfg.APIBaseURL))
	return nil
}
