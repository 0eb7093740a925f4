// Package cli comandos de mantenimiento de la base del dashboard (cobra).
package cli

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Carga datos de ejemplo del dashboard de facturas",
		Long:          "Crea el esquema mínimo y carga usuarios, clientes y facturas de ejemplo, o genera SQL a partir de un CSV de clientes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newDemoCmd())
	cmd.AddCommand(newCustomersSQLCmd())
	return cmd
}

// NewRootCmdForTest devuelve el comando raíz para tests.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute ejecuta el comando raíz.
func Execute() error {
	return newRootCmd().Execute()
}
