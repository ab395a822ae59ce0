package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"drukwater-admin/internal/model"
)

func newGewogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gewog",
		Short: "Manage gewogs (sub-districts)",
	}
	cmd.AddCommand(newGewogListCmd(app))
	cmd.AddCommand(newGewogCreateCmd(app))
	cmd.AddCommand(newGewogUpdateCmd(app))
	cmd.AddCommand(newGewogDeleteCmd(app))
	return cmd
}

func newGewogListCmd(app *App) *cobra.Command {
	var dzongkhagID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List gewogs with their parent dzongkhag",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			// Dzongkhags first so bare parent ids resolve to names. A failed
			// dzongkhag fetch degrades display to "Unknown", nothing more.
			_ = app.Dzongkhags.FetchAll(cmd.Context())
			if err := app.Gewogs.FetchAll(cmd.Context()); err != nil {
				return err
			}

			gewogs := app.Gewogs.Items()
			if dzongkhagID != "" {
				gewogs = app.Gewogs.ByDzongkhag(dzongkhagID)
			}

			w := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDZONGKHAG\tPOPULATION")
			for _, g := range gewogs {
				pop := "-"
				if g.Population != nil {
					pop = fmt.Sprintf("%d", *g.Population)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", g.ID, g.Name, app.Gewogs.DzongkhagName(g, app.Dzongkhags), pop)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dzongkhagID, "dzongkhag", "", "only gewogs of this dzongkhag id")
	return cmd
}

type gewogPayloadFlags struct {
	name       string
	nameDz     string
	dzongkhag  string
	area       float64
	population int
}

func (f *gewogPayloadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "gewog name")
	cmd.Flags().StringVar(&f.nameDz, "name-dz", "", "name in Dzongkha")
	cmd.Flags().StringVar(&f.dzongkhag, "dzongkhag", "", "parent dzongkhag id")
	cmd.Flags().Float64Var(&f.area, "area", 0, "area in square km")
	cmd.Flags().IntVar(&f.population, "population", 0, "population count")
}

func (f *gewogPayloadFlags) payload(cmd *cobra.Command) model.GewogPayload {
	p := model.GewogPayload{
		Name:           f.name,
		NameInDzongkha: f.nameDz,
		Dzongkhag:      f.dzongkhag,
	}
	if cmd.Flags().Changed("area") {
		p.Area = &f.area
	}
	if cmd.Flags().Changed("population") {
		p.Population = &f.population
	}
	return p
}

func newGewogCreateCmd(app *App) *cobra.Command {
	flags := &gewogPayloadFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a gewog under a dzongkhag",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			payload := flags.payload(cmd)
			if err := model.Validate(payload); err != nil {
				return err
			}
			_, err := app.Gewogs.Create(cmd.Context(), payload)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newGewogUpdateCmd(app *App) *cobra.Command {
	flags := &gewogPayloadFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a gewog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			payload := flags.payload(cmd)
			if err := model.Validate(payload); err != nil {
				return err
			}
			_, err := app.Gewogs.Update(cmd.Context(), args[0], payload)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newGewogDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a gewog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			return app.Gewogs.Delete(cmd.Context(), args[0])
		},
	}
}
