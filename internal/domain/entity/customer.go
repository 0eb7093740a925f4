package entity

// Customer representa un cliente al que se le emiten facturas.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
