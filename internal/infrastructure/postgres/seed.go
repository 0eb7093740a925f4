package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// schemaStatements crea las tablas si no existen. No es un sistema de migraciones:
// solo deja una base vacía lista para cargar datos de ejemplo.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id       UUID PRIMARY KEY,
		name     VARCHAR(255) NOT NULL,
		email    TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id        UUID PRIMARY KEY,
		name      VARCHAR(255) NOT NULL,
		email     VARCHAR(255) NOT NULL,
		image_url VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id          UUID PRIMARY KEY,
		customer_id UUID NOT NULL,
		amount      INT NOT NULL CHECK (amount >= 0),
		status      VARCHAR(255) NOT NULL,
		date        DATE NOT NULL
	)`,
}

// Seeder carga datos de ejemplo; cada fila se inserta con ON CONFLICT DO NOTHING.
type Seeder struct {
	q Querier
}

// NewSeeder construye el seeder sobre pool o tx.
func NewSeeder(q Querier) *Seeder {
	return &Seeder{q: q}
}

// EnsureSchema crea las tablas que faltan.
func (s *Seeder) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear tabla: %w", err)
		}
	}
	return nil
}

// SeedUsers inserta usuarios; Password ya debe venir hasheado.
func (s *Seeder) SeedUsers(ctx context.Context, users []entity.User) (int, error) {
	n := 0
	for _, u := range users {
		tag, err := s.q.Exec(ctx, `
			INSERT INTO users (id, name, email, password)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			u.ID, u.Name, u.Email, u.Password)
		if err != nil {
			return n, fmt.Errorf("insert user %s: %w", u.Email, err)
		}
		n += int(tag.RowsAffected())
	}
	return n, nil
}

// SeedCustomers inserta clientes.
func (s *Seeder) SeedCustomers(ctx context.Context, customers []entity.Customer) (int, error) {
	n := 0
	for _, c := range customers {
		tag, err := s.q.Exec(ctx, `
			INSERT INTO customers (id, name, email, image_url)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.Email, c.ImageURL)
		if err != nil {
			return n, fmt.Errorf("insert customer %s: %w", c.Name, err)
		}
		n += int(tag.RowsAffected())
	}
	return n, nil
}

// SeedInvoices inserta facturas; Amount en centavos.
func (s *Seeder) SeedInvoices(ctx context.Context, invoices []entity.Invoice) (int, error) {
	n := 0
	for _, inv := range invoices {
		tag, err := s.q.Exec(ctx, `
			INSERT INTO invoices (id, customer_id, amount, status, date)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`,
			inv.ID, inv.CustomerID, inv.Amount, string(inv.Status), inv.Date)
		if err != nil {
			return n, fmt.Errorf("insert invoice: %w", err)
		}
		n += int(tag.RowsAffected())
	}
	return n, nil
}
