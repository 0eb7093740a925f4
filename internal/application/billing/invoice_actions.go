package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/application/validation"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/money"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
	"github.com/jhoicas/invoices-dashboard/pkg/config"
	"github.com/jhoicas/invoices-dashboard/pkg/logger"
)

// Mensajes que devuelven las acciones.
const (
	MsgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MsgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	MsgCreateDBError       = "Database Error: Failed to Create Invoice."
	MsgUpdateDBError       = "Database Error: Failed to Update Invoice."
	MsgDeleteDBError       = "Database Error: Failed to Delete Invoice."
	MsgDeleted             = "Deleted Invoice."
)

// ActionsConfig configuración explícita de las acciones.
type ActionsConfig struct {
	Env string // solo en "development" se registra el detalle de los errores de DB
}

// InvoiceActions acciones de formulario sobre facturas: crear, editar y eliminar.
// Cada acción ejecuta una sola sentencia SQL y nunca devuelve el detalle del error de DB.
type InvoiceActions struct {
	repo  repository.InvoiceRepository
	cache PathRevalidator
	log   *logger.Logger
	cfg   ActionsConfig
	now   func() time.Time
	newID func() string
}

// NewInvoiceActions construye las acciones. log puede ser nil.
func NewInvoiceActions(repo repository.InvoiceRepository, cache PathRevalidator, log *logger.Logger, cfg ActionsConfig) *InvoiceActions {
	return &InvoiceActions{
		repo:  repo,
		cache: cache,
		log:   log,
		cfg:   cfg,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// WithClock reemplaza el reloj usado para la fecha de emisión.
func (a *InvoiceActions) WithClock(now func() time.Time) *InvoiceActions {
	a.now = now
	return a
}

// CreateInvoice valida el formulario, inserta la factura con la fecha de hoy y redirige al listado.
// _prev no se usa; se recibe para respetar la firma común de las acciones de formulario.
func (a *InvoiceActions) CreateInvoice(ctx context.Context, _ dto.State, form dto.InvoiceForm) dto.Outcome {
	data, fieldErrs := validation.ParseInvoiceForm(form)
	if fieldErrs != nil {
		return dto.State{Errors: fieldErrs, Message: MsgCreateMissingFields}
	}

	amount, err := money.ToMinorUnits(data.Amount)
	if err != nil {
		return dto.State{Errors: dto.FieldErrors{dto.FieldAmount: {validation.MsgAmount}}, Message: MsgCreateMissingFields}
	}

	invoice := &entity.Invoice{
		ID:         a.newID(),
		CustomerID: data.CustomerID,
		Amount:     amount,
		Status:     data.Status,
		Date:       a.now().UTC().Format(entity.DateLayout),
	}
	if err := a.repo.Create(ctx, invoice); err != nil {
		a.logDBError(err, "crear factura")
		return dto.State{Message: MsgCreateDBError}
	}

	a.cache.Revalidate(InvoicesPath)
	return dto.Redirect{To: InvoicesPath}
}

// UpdateInvoice valida el formulario y actualiza cliente, monto y estado de la factura id.
// id viene del contexto de la ruta y no se valida contra el formulario. Un id inexistente
// se comporta igual que uno existente.
func (a *InvoiceActions) UpdateInvoice(ctx context.Context, id string, _ dto.State, form dto.InvoiceForm) dto.Outcome {
	data, fieldErrs := validation.ParseInvoiceForm(form)
	if fieldErrs != nil {
		return dto.State{Errors: fieldErrs, Message: MsgUpdateMissingFields}
	}

	amount, err := money.ToMinorUnits(data.Amount)
	if err != nil {
		return dto.State{Errors: dto.FieldErrors{dto.FieldAmount: {validation.MsgAmount}}, Message: MsgUpdateMissingFields}
	}

	invoice := &entity.Invoice{
		ID:         id,
		CustomerID: data.CustomerID,
		Amount:     amount,
		Status:     data.Status,
	}
	if err := a.repo.Update(ctx, invoice); err != nil {
		a.logDBError(err, "actualizar factura")
		return dto.State{Message: MsgUpdateDBError}
	}

	a.cache.Revalidate(InvoicesPath)
	return dto.Redirect{To: InvoicesPath}
}

// DeleteInvoice elimina la factura id. No redirige: devuelve un mensaje para que la UI lo muestre.
// No se verifica existencia previa, así que borrar un id inexistente también responde MsgDeleted.
func (a *InvoiceActions) DeleteInvoice(ctx context.Context, id string) dto.Outcome {
	if err := a.repo.Delete(ctx, id); err != nil {
		a.logDBError(err, "eliminar factura")
		return dto.State{Message: MsgDeleteDBError}
	}
	a.cache.Revalidate(InvoicesPath)
	return dto.State{Message: MsgDeleted}
}

func (a *InvoiceActions) logDBError(err error, op string) {
	if a.log == nil || a.cfg.Env != config.EnvDevelopment {
		return
	}
	a.log.Error().Err(err).Str("op", op).Msg("error de base de datos")
}
