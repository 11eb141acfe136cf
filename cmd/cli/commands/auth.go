package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bloodlink/bloodlink-admin/pkg/core/services"
)

// LoginCmd creates the login command
func LoginCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in through the identity provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.SignIn(app.Ctx); err != nil {
				return fmt.Errorf("sign-in failed: %w", err)
			}

			identity, err := services.ResolveIdentity(app.Ctx, app.Client, app.Session, app.Logger, app.Role)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Signed in as %s (%s, %s)\n", identity.Name, identity.Email, identity.Role)
			return nil
		},
	}
}

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and delete the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.SignOut(); err != nil {
				return fmt.Errorf("sign-out failed: %w", err)
			}
			fmt.Println("\n✓ Signed out.")
			return nil
		},
	}
}

// WhoAmICmd creates the whoami command
func WhoAmICmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := services.ResolveIdentity(app.Ctx, app.Client, app.Session, app.Logger, app.Role)
			if err != nil {
				return err
			}

			printHeader("Signed-in account")
			fmt.Printf("Name:  %s\n", identity.Name)
			fmt.Printf("Email: %s\n", identity.Email)
			fmt.Printf("Role:  %s\n", identity.Role)
			return nil
		},
	}
}
