package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"drukwater-admin/internal/model"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Summarize consumers by status, tariff and region",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireAuth(cmd.Context()); err != nil {
				return err
			}
			_ = app.Dzongkhags.FetchAll(cmd.Context())
			_ = app.Gewogs.FetchAll(cmd.Context())
			if err := app.Consumers.FetchAll(cmd.Context(), model.ConsumerListParams{Limit: 5000}); err != nil {
				return err
			}

			consumers := app.Consumers.Items()
			byStatus := map[string]int{}
			byTariff := map[string]int{}
			byRegion := map[string]int{}
			for _, c := range consumers {
				byStatus[string(c.Status)]++
				byTariff[string(c.TariffCategory)]++
				byRegion[regionOf(app, c)]++
			}

			fmt.Fprintf(app.Out, "Consumers: %d\n\n", len(consumers))
			printCounts(app, "BY STATUS", byStatus)
			printCounts(app, "BY TARIFF", byTariff)
			printCounts(app, "BY REGION", byRegion)
			return nil
		},
	}
}

// regionOf walks consumer -> gewog -> dzongkhag -> region, degrading to
// the Unknown sentinel at any missing link.
func regionOf(app *App, c model.Consumer) string {
	var ref *model.DzongkhagRef
	if c.Address.Gewog.Dzongkhag != nil {
		ref = c.Address.Gewog.Dzongkhag
	} else if g, ok := app.Gewogs.Lookup(c.Address.Gewog.ID); ok {
		ref = &g.Dzongkhag
	}
	if ref == nil {
		return model.UnknownName
	}
	if d, ok := ref.Resolve(app.Dzongkhags.Lookup); ok && d.Region != "" {
		return string(d.Region)
	}
	return model.UnknownName
}

func printCounts(app *App, title string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, title)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s\t%d\n", k, counts[k])
	}
	fmt.Fprintln(w)
	w.Flush()
}
