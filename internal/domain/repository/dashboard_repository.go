package repository

import (
	"context"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// DashboardRepository consultas agregadas de solo lectura para el dashboard.
type DashboardRepository interface {
	CardData(ctx context.Context) (*entity.CardData, error)
}
