package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var identifier, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the backend and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.Login(cmd.Context(), identifier, password); err != nil {
				return err
			}
			u := app.Session.User()
			fmt.Fprintf(app.Out, "Logged in as %s (%s)\n", u.Name, u.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&identifier, "identifier", "", "phone or CID to log in with")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("identifier")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.Logout()
			fmt.Fprintln(app.Out, "Logged out.")
			return nil
		},
	}
}

func newMeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			u := app.Session.User()
			fmt.Fprintf(app.Out, "Name:  %s\nCID:   %s\nPhone: %s\nRole:  %s\n", u.Name, u.CID, u.Phone, u.Role)
			return nil
		},
	}
}
