package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"drukwater-admin/internal/model"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts (Super Admin only for mutations)",
	}
	cmd.AddCommand(newUserListCmd(app))
	cmd.AddCommand(newUserAddCmd(app))
	cmd.AddCommand(newUserUpdateCmd(app))
	cmd.AddCommand(newUserDeleteCmd(app))
	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			if err := app.Users.FetchAll(cmd.Context()); err != nil {
				return err
			}
			w := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCID\tPHONE\tROLE")
			for _, u := range app.Users.Items() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.CID, u.Phone, u.Role)
			}
			return w.Flush()
		},
	}
}

func newUserAddCmd(app *App) *cobra.Command {
	var payload model.AddUserPayload
	var role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireSuperAdmin(cmd.Context()); err != nil {
				return err
			}
			payload.Role = model.Role(role)
			if err := model.Validate(payload); err != nil {
				return err
			}
			_, err := app.Users.AddUser(cmd.Context(), payload)
			return err
		},
	}

	cmd.Flags().StringVar(&payload.Name, "name", "", "full name")
	cmd.Flags().StringVar(&payload.CID, "cid", "", "national ID (11 characters)")
	cmd.Flags().StringVar(&payload.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&role, "role", string(model.RoleViewer), "account role")
	cmd.Flags().StringVar(&payload.Password, "password", "", "initial password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("cid")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}

func newUserUpdateCmd(app *App) *cobra.Command {
	var payload model.UpdateUserPayload
	var role string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireSuperAdmin(cmd.Context()); err != nil {
				return err
			}
			if cmd.Flags().Changed("role") {
				payload.Role = model.Role(role)
			}
			if err := model.Validate(payload); err != nil {
				return err
			}
			_, err := app.Users.Update(cmd.Context(), args[0], payload)
			return err
		},
	}

	cmd.Flags().StringVar(&payload.Name, "name", "", "full name")
	cmd.Flags().StringVar(&payload.CID, "cid", "", "national ID (11 characters)")
	cmd.Flags().StringVar(&payload.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&role, "role", "", "account role")
	cmd.Flags().StringVar(&payload.Password, "password", "", "new password")

	return cmd
}

func newUserDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireSuperAdmin(cmd.Context()); err != nil {
				return err
			}
			return app.Users.Delete(cmd.Context(), args[0])
		},
	}
}
