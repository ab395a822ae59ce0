package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"drukwater-admin/internal/export"
	"drukwater-admin/internal/model"
	"drukwater-admin/internal/store"
)

func newConsumerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consumer",
		Short: "Manage household utility accounts",
	}
	cmd.AddCommand(newConsumerListCmd(app))
	cmd.AddCommand(newConsumerCreateCmd(app))
	cmd.AddCommand(newConsumerUpdateCmd(app))
	cmd.AddCommand(newConsumerDeleteCmd(app))
	cmd.AddCommand(newConsumerExportCmd(app))
	return cmd
}

func listParamsFlags(cmd *cobra.Command, params *model.ConsumerListParams) {
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size")
	cmd.Flags().StringVar(&params.Search, "search", "", "free-text search")
	cmd.Flags().StringVar((*string)(&params.Status), "status", "", "filter by status (Active, Suspended, Disconnected)")
	cmd.Flags().StringVar((*string)(&params.TariffCategory), "tariff", "", "filter by tariff category")
	cmd.Flags().StringVar(&params.Gewog, "gewog", "", "filter by gewog id")
	cmd.Flags().StringVar(&params.SortBy, "sort-by", "", "sort field")
	cmd.Flags().StringVar(&params.Order, "order", "", "sort order (asc or desc)")
}

func newConsumerListCmd(app *App) *cobra.Command {
	var params model.ConsumerListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List consumers with filters and pagination",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			if err := app.Consumers.FetchAll(cmd.Context(), params); err != nil {
				return err
			}

			w := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tHOUSEHOLD\tHEAD\tGEWOG\tMETER\tSTATUS\tTARIFF")
			for _, c := range app.Consumers.Items() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					c.ID, c.HouseholdID, c.HouseholdHead.Name, c.Address.Gewog.Name,
					c.MeterNumber, c.Status, c.TariffCategory)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if meta := app.Consumers.Meta(); meta != nil {
				fmt.Fprintf(app.Out, "page %d/%d (%d total)\n", meta.Page, meta.TotalPages, meta.Total)
			}
			return nil
		},
	}

	listParamsFlags(cmd, &params)
	return cmd
}

// consumerFormFlags binds the denormalized edit form.
type consumerFormFlags struct {
	householdID    string
	head           string
	headSearch     string
	gewog          string
	village        string
	houseNumber    string
	familySize     int
	connectionType string
	meterNumber    string
	connectionDate string
	status         string
	tariff         string
}

func (f *consumerFormFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.householdID, "household-id", "", "household business key")
	cmd.Flags().StringVar(&f.head, "head", "", "household head user id")
	cmd.Flags().StringVar(&f.headSearch, "head-search", "", "find household head by exact CID or phone")
	cmd.Flags().StringVar(&f.gewog, "gewog", "", "address gewog id")
	cmd.Flags().StringVar(&f.village, "village", "", "address village")
	cmd.Flags().StringVar(&f.houseNumber, "house-number", "", "address house number")
	cmd.Flags().IntVar(&f.familySize, "family-size", 0, "family size")
	cmd.Flags().StringVar(&f.connectionType, "connection-type", "", "Individual, Shared or Community_Standpost")
	cmd.Flags().StringVar(&f.meterNumber, "meter-number", "", "meter number")
	cmd.Flags().StringVar(&f.connectionDate, "connection-date", "", "connection date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.status, "status", "", "Active, Suspended or Disconnected")
	cmd.Flags().StringVar(&f.tariff, "tariff", "", "Domestic, Commercial, Industrial or Institutional")
}

// apply overlays the set flags onto a form, resolving --head-search through
// the user collection (exact CID first, then exact phone).
func (f *consumerFormFlags) apply(cmd *cobra.Command, app *App, form *store.ConsumerForm) error {
	if f.headSearch != "" {
		if err := app.Users.FetchAll(cmd.Context()); err != nil {
			return err
		}
		head, ok := app.Users.FindByIdentifier(f.headSearch)
		if !ok {
			return errors.New("No user found with that CID or phone")
		}
		form.HouseholdHead = head.ID
		form.HouseholdHeadName = head.Name
		form.HouseholdHeadCID = head.CID
		form.HouseholdHeadPhone = head.Phone
	}

	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("household-id", func() { form.HouseholdID = f.householdID })
	set("head", func() { form.HouseholdHead = f.head })
	set("gewog", func() { form.AddressGewog = f.gewog })
	set("village", func() { form.AddressVillage = f.village })
	set("house-number", func() { form.AddressHouseNumber = f.houseNumber })
	set("family-size", func() { form.FamilySize = f.familySize })
	set("connection-type", func() { form.ConnectionType = model.ConnectionType(f.connectionType) })
	set("meter-number", func() { form.MeterNumber = f.meterNumber })
	set("connection-date", func() { form.ConnectionDate = f.connectionDate })
	set("status", func() { form.Status = model.ConsumerStatus(f.status) })
	set("tariff", func() { form.TariffCategory = model.TariffCategory(f.tariff) })
	return nil
}

func newConsumerCreateCmd(app *App) *cobra.Command {
	flags := &consumerFormFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a consumer household",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			form := store.EmptyConsumerForm()
			if err := flags.apply(cmd, app, &form); err != nil {
				return err
			}
			payload := form.Payload()
			if err := model.Validate(payload); err != nil {
				return err
			}
			_, err := app.Consumers.Create(cmd.Context(), payload)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newConsumerUpdateCmd(app *App) *cobra.Command {
	flags := &consumerFormFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a consumer household",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			// Initialize the form from the current record so unset flags
			// keep their existing values.
			if err := app.Consumers.FetchAll(cmd.Context(), model.ConsumerListParams{Limit: 5000}); err != nil {
				return err
			}
			existing, ok := app.Consumers.Lookup(args[0])
			form := store.EmptyConsumerForm()
			if ok {
				form = store.FormFromConsumer(*existing)
			}
			if err := flags.apply(cmd, app, &form); err != nil {
				return err
			}
			payload := form.Payload()
			if err := model.Validate(payload); err != nil {
				return err
			}
			_, err := app.Consumers.Update(cmd.Context(), args[0], payload)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newConsumerDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a consumer household",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			return app.Consumers.Delete(cmd.Context(), args[0])
		},
	}
}

func newConsumerExportCmd(app *App) *cobra.Command {
	var out string
	var params model.ConsumerListParams

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the consumer register to an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			// Reference data for dzongkhag name resolution; degraded rows
			// show "Unknown" rather than failing the export.
			_ = app.Dzongkhags.FetchAll(cmd.Context())
			_ = app.Gewogs.FetchAll(cmd.Context())
			if params.Limit == 0 {
				params.Limit = 5000
			}
			if err := app.Consumers.FetchAll(cmd.Context(), params); err != nil {
				return err
			}

			workbook, err := export.ConsumersWorkbook(app.Consumers.Items(), app.consumerDzongkhagName)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, workbook, 0o644); err != nil {
				return fmt.Errorf("failed to write workbook: %w", err)
			}
			fmt.Fprintf(app.Out, "Exported %d consumers to %s\n", len(app.Consumers.Items()), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "consumers.xlsx", "output file path")
	listParamsFlags(cmd, &params)
	return cmd
}

// consumerDzongkhagName resolves a consumer row's parent dzongkhag: the
// two-level embed when the backend populated it, else a join through the
// gewog and dzongkhag collections.
func (a *App) consumerDzongkhagName(c model.Consumer) string {
	if ref := c.Address.Gewog.Dzongkhag; ref != nil {
		return ref.DisplayName(a.Dzongkhags.Lookup)
	}
	if g, ok := a.Gewogs.Lookup(c.Address.Gewog.ID); ok {
		return a.Gewogs.DzongkhagName(*g, a.Dzongkhags)
	}
	return model.UnknownName
}
