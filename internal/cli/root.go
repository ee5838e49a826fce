// Package cli implementa invctl: consulta y modifica el inventario a través del endpoint GraphQL.
package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-dashboard-api/internal/client"
)

// EndpointEnv variable de entorno con el endpoint por defecto.
const EndpointEnv = "INVCTL_ENDPOINT"

// RootOptions flags globales de todos los comandos.
type RootOptions struct {
	Endpoint string
	Format   string // text | json | yaml
}

// ValidFormats formatos de salida permitidos.
var ValidFormats = []string{"text", "json", "yaml"}

func (o *RootOptions) client() *client.Client {
	return client.New(o.Endpoint)
}

// NewRootCommand crea el comando raíz de invctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "invctl",
		Short:         "Cliente del tablero de inventario",
		Long:          "Consulta productos, bodegas y KPIs, y aplica mutaciones de demanda y transferencia.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		endpoint = client.DefaultEndpoint
	}
	cmd.PersistentFlags().StringVar(&opts.Endpoint, "endpoint", endpoint, "endpoint GraphQL (env "+EndpointEnv+")")
	cmd.PersistentFlags().StringVarP(&opts.Format, "format", "o", "text", "formato de salida (text|json|yaml)")

	cmd.AddCommand(NewProductsCommand(opts))
	cmd.AddCommand(NewWarehousesCommand(opts))
	cmd.AddCommand(NewKPIsCommand(opts))
	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewUpdateDemandCommand(opts))
	cmd.AddCommand(NewTransferCommand(opts))

	return cmd
}
