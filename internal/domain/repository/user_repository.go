package repository

import (
	"context"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
