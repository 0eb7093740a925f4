package repository

import (
	"context"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// CustomerRepository define el puerto de lectura para Customer.
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	ListAll(ctx context.Context) ([]*entity.Customer, error)
}
