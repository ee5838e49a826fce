package cli

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-dashboard-api/internal/client"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/inventory"
)

// SummaryView tarjetas de KPIs del tablero.
type SummaryView struct {
	TotalStock  int    `json:"total_stock" yaml:"total_stock"`
	TotalDemand int    `json:"total_demand" yaml:"total_demand"`
	FillRate    string `json:"fill_rate" yaml:"fill_rate"` // porcentaje con un decimal
}

// NewKPIsCommand muestra la serie de tendencia.
func NewKPIsCommand(opts *RootOptions) *cobra.Command {
	var rng string
	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Serie diaria de stock y demanda",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := opts.client().KPIs(cmd.Context(), rng)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.Format, points, func(tw *tabwriter.Writer) {
				row(tw, "DATE", "STOCK", "DEMAND")
				for _, p := range points {
					row(tw, p.Date, p.Stock, p.Demand)
				}
			})
		},
	}
	cmd.Flags().StringVar(&rng, "range", "7d", "rango: 7d, 14d o 30d")
	return cmd
}

// NewSummaryCommand calcula las tarjetas (stock, demanda, fill rate) sobre los productos filtrados.
func NewSummaryCommand(opts *RootOptions) *cobra.Command {
	var f client.Filter
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Stock total, demanda total y fill rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := opts.client().Products(cmd.Context(), f)
			if err != nil {
				return err
			}
			view := summarize(products)
			return render(cmd.OutOrStdout(), opts.Format, view, func(tw *tabwriter.Writer) {
				row(tw, "Total Stock", view.TotalStock)
				row(tw, "Total Demand", view.TotalDemand)
				row(tw, "Fill Rate", view.FillRate+"%")
			})
		},
	}
	addFilterFlags(cmd, &f)
	return cmd
}

func summarize(products []client.Product) SummaryView {
	list := make([]entity.Product, 0, len(products))
	for _, p := range products {
		list = append(list, p.Entity())
	}
	s := inventory.Summarize(list)
	return SummaryView{
		TotalStock:  s.TotalStock,
		TotalDemand: s.TotalDemand,
		FillRate:    s.FillRate.StringFixed(1),
	}
}
