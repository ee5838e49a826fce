package cli

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-dashboard-api/internal/client"
)

func addFilterFlags(cmd *cobra.Command, f *client.Filter) {
	cmd.Flags().StringVar(&f.Search, "search", "", "buscar por nombre, SKU o ID")
	cmd.Flags().StringVar(&f.Status, "status", "", "All, Healthy, Low o Critical")
	cmd.Flags().StringVar(&f.Warehouse, "warehouse", "", "código de bodega")
}

// NewProductsCommand lista productos con filtros.
func NewProductsCommand(opts *RootOptions) *cobra.Command {
	var f client.Filter
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Listar productos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := opts.client().Products(cmd.Context(), f)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.Format, products, func(tw *tabwriter.Writer) {
				row(tw, "ID", "NAME", "SKU", "WAREHOUSE", "STOCK", "DEMAND", "STATUS")
				for _, p := range products {
					row(tw, p.ID, p.Name, p.SKU, p.Warehouse, p.Stock, p.Demand, p.Entity().Status())
				}
			})
		},
	}
	addFilterFlags(cmd, &f)
	return cmd
}

// NewWarehousesCommand lista bodegas.
func NewWarehousesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "warehouses",
		Short: "Listar bodegas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			warehouses, err := opts.client().Warehouses(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.Format, warehouses, func(tw *tabwriter.Writer) {
				row(tw, "CODE", "NAME", "CITY", "COUNTRY")
				for _, w := range warehouses {
					row(tw, w.Code, w.Name, w.City, w.Country)
				}
			})
		},
	}
}
