package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/invoices-dashboard/pkg/config"
)

// demoSeeder lo implementa *postgres.Seeder.
type demoSeeder interface {
	EnsureSchema(ctx context.Context) error
	SeedUsers(ctx context.Context, users []entity.User) (int, error)
	SeedCustomers(ctx context.Context, customers []entity.Customer) (int, error)
	SeedInvoices(ctx context.Context, invoices []entity.Invoice) (int, error)
}

func newDemoCmd() *cobra.Command {
	var (
		password   string
		skipSchema bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Crea las tablas y carga los datos de ejemplo",
		Long:  "Usa la misma configuración que la API (DATABASE_URL o DB_*). Es idempotente: las filas existentes no se tocan.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()

			return runDemo(ctx, cmd, postgres.NewSeeder(pool), password, skipSchema)
		},
	}

	cmd.Flags().StringVar(&password, "password", placeholderPassword, "Password del usuario de ejemplo")
	cmd.Flags().BoolVar(&skipSchema, "skip-schema", false, "No crear tablas (ya existen)")

	return cmd
}

func runDemo(ctx context.Context, cmd *cobra.Command, s demoSeeder, password string, skipSchema bool) error {
	if !skipSchema {
		if err := s.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	users := make([]entity.User, 0, len(placeholderUsers))
	for _, u := range placeholderUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashear password: %w", err)
		}
		u.Password = string(hash)
		users = append(users, u)
	}

	nUsers, err := s.SeedUsers(ctx, users)
	if err != nil {
		return err
	}
	nCustomers, err := s.SeedCustomers(ctx, placeholderCustomers)
	if err != nil {
		return err
	}
	nInvoices, err := s.SeedInvoices(ctx, placeholderInvoices)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Insertados: %d usuarios, %d clientes, %d facturas\n", nUsers, nCustomers, nInvoices)
	return nil
}
