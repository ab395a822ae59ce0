package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"drukwater-admin/internal/model"
)

func newDzongkhagCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dzongkhag",
		Short: "Manage dzongkhags (administrative districts)",
	}
	cmd.AddCommand(newDzongkhagListCmd(app))
	cmd.AddCommand(newDzongkhagCreateCmd(app))
	cmd.AddCommand(newDzongkhagUpdateCmd(app))
	cmd.AddCommand(newDzongkhagDeleteCmd(app))
	return cmd
}

func newDzongkhagListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all dzongkhags",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			if err := app.Dzongkhags.FetchAll(cmd.Context()); err != nil {
				return err
			}
			w := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCODE\tREGION\tPOPULATION")
			for _, d := range app.Dzongkhags.Items() {
				pop := "-"
				if d.Population != nil {
					pop = fmt.Sprintf("%d", *d.Population)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Code, d.Region, pop)
			}
			return w.Flush()
		},
	}
}

// dzongkhagPayloadFlags binds the create/update form fields.
type dzongkhagPayloadFlags struct {
	name       string
	nameDz     string
	code       string
	region     string
	area       float64
	population int
	latitude   float64
	longitude  float64
}

func (f *dzongkhagPayloadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "dzongkhag name")
	cmd.Flags().StringVar(&f.nameDz, "name-dz", "", "name in Dzongkha")
	cmd.Flags().StringVar(&f.code, "code", "", "unique short code")
	cmd.Flags().StringVar(&f.region, "region", "", "region (Western, Central, Southern, Eastern)")
	cmd.Flags().Float64Var(&f.area, "area", 0, "area in square km")
	cmd.Flags().IntVar(&f.population, "population", 0, "population count")
	cmd.Flags().Float64Var(&f.latitude, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&f.longitude, "long", 0, "longitude")
}

func (f *dzongkhagPayloadFlags) payload(cmd *cobra.Command) model.DzongkhagPayload {
	p := model.DzongkhagPayload{
		Name:           f.name,
		NameInDzongkha: f.nameDz,
		Code:           f.code,
		Region:         model.Region(f.region),
	}
	if cmd.Flags().Changed("area") {
		p.Area = &f.area
	}
	if cmd.Flags().Changed("population") {
		p.Population = &f.population
	}
	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("long") {
		p.Coordinates = &model.Coordinates{}
		if cmd.Flags().Changed("lat") {
			p.Coordinates.Latitude = &f.latitude
		}
		if cmd.Flags().Changed("long") {
			p.Coordinates.Longitude = &f.longitude
		}
	}
	return p
}

func newDzongkhagCreateCmd(app *App) *cobra.Command {
	flags := &dzongkhagPayloadFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a dzongkhag",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			payload := flags.payload(cmd)
			if err := model.Validate(payload); err != nil {
				return err
			}
			_, err := app.Dzongkhags.Create(cmd.Context(), payload)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newDzongkhagUpdateCmd(app *App) *cobra.Command {
	flags := &dzongkhagPayloadFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a dzongkhag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			payload := flags.payload(cmd)
			if err := model.Validate(payload); err != nil {
				return err
			}
			_, err := app.Dzongkhags.Update(cmd.Context(), args[0], payload)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newDzongkhagDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a dzongkhag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			return app.Dzongkhags.Delete(cmd.Context(), args[0])
		},
	}
}
