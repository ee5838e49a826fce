package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-dashboard-api/internal/client"
)

func renderProduct(cmd *cobra.Command, opts *RootOptions, p *client.Product) error {
	return render(cmd.OutOrStdout(), opts.Format, p, func(tw *tabwriter.Writer) {
		row(tw, "ID", "NAME", "WAREHOUSE", "STOCK", "DEMAND", "STATUS")
		row(tw, p.ID, p.Name, p.Warehouse, p.Stock, p.Demand, p.Entity().Status())
	})
}

// NewUpdateDemandCommand reemplaza la demanda de un producto.
func NewUpdateDemandCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update-demand <id> <demand>",
		Short: "Actualizar la demanda de un producto",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			demand, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("demand debe ser entero: %w", err)
			}
			p, err := opts.client().UpdateDemand(cmd.Context(), args[0], demand)
			if err != nil {
				return err
			}
			return renderProduct(cmd, opts, p)
		},
	}
}

// NewTransferCommand transfiere stock desde la bodega origen.
func NewTransferCommand(opts *RootOptions) *cobra.Command {
	var from, to string
	var qty int
	cmd := &cobra.Command{
		Use:   "transfer <id>",
		Short: "Transferir stock desde la bodega origen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.client().TransferStock(cmd.Context(), args[0], from, to, qty)
			if err != nil {
				return err
			}
			return renderProduct(cmd, opts, p)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "bodega origen")
	cmd.Flags().StringVar(&to, "to", "", "bodega destino")
	cmd.Flags().IntVar(&qty, "qty", 0, "cantidad")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("qty")
	return cmd
}
