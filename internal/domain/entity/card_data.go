package entity

import "github.com/shopspring/decimal"

// CardData agregados para las tarjetas del dashboard.
// Los totales están en unidades mayores (ej. dólares), ya divididos por 100.
type CardData struct {
	NumberOfInvoices  int
	NumberOfCustomers int
	TotalPaid         decimal.Decimal
	TotalPending      decimal.Decimal
}
