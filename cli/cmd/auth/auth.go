package auth

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/FM1201/aijohub/cli/cmd"
	"github.com/FM1201/aijohub/pkg/logger"
)

// NewLoginCmd authenticates against the backend and persists the session.
// Credentials come from flags or, when missing, an interactive prompt.
func NewLoginCmd() *cobra.Command {
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist a session",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			rt, err := cmd.NewRuntime(cobraCmd)
			if err != nil {
				return err
			}

			username, _ := cobraCmd.Flags().GetString("username")
			password, _ := cobraCmd.Flags().GetString("password")
			if username == "" || password == "" {
				if err := promptCredentials(&username, &password); err != nil {
					return err
				}
			}

			ctx := cobraCmd.Context()
			sess, err := rt.Store.Login(ctx, rt.Client, username, password)
			if err != nil {
				return err
			}
			logger.FromContext(ctx).Info("logged in", "username", sess.Username)
			fmt.Printf("Logged in as %s\n", sess.Username)
			return nil
		},
	}
	loginCmd.Flags().StringP("username", "u", "", "Username")
	loginCmd.Flags().StringP("password", "p", "", "Password")
	return loginCmd
}

func promptCredentials(username, password *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(username).
				Validate(huh.ValidateNotEmpty()),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(huh.ValidateNotEmpty()),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("login aborted: %w", err)
	}
	return nil
}

// NewLogoutCmd clears the persisted session.
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			rt, err := cmd.NewRuntime(cobraCmd)
			if err != nil {
				return err
			}
			if err := rt.Store.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

// NewWhoamiCmd prints the identity behind the persisted session.
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			rt, err := cmd.NewRuntime(cobraCmd)
			if err != nil {
				return err
			}
			sess, err := rt.RequireSession()
			if err != nil {
				return err
			}
			fmt.Println(sess.Username)
			return nil
		},
	}
}
