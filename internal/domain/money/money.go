// Package money convierte montos en unidades mayores (lo que escribe el usuario, ej. "133.70")
// a unidades menores enteras (centavos) usando aritmética decimal.
//
// Multiplicar un float64 por 100 puede dar 13369.999999999998 en vez de 13370; por eso
// toda la escala se hace con shopspring/decimal y el redondeo es explícito.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// MinorUnitsPerMajor centavos por unidad mayor.
const MinorUnitsPerMajor = 100

// MaxMinorUnits mayor monto guardable: la columna invoices.amount es INT.
const MaxMinorUnits = math.MaxInt32

// Límites de escala aceptados antes de operar; fuera de ellos Round construiría
// enteros gigantes (ej. 1e400000000).
const (
	maxExponent        = 10
	minExponent        = -20
	maxCoefficientBits = 128
)

// ErrInvalidAmount monto negativo o fuera de rango.
var ErrInvalidAmount = errors.New("monto inválido")

var (
	hundred  = decimal.NewFromInt(MinorUnitsPerMajor)
	maxMinor = decimal.NewFromInt(MaxMinorUnits)
)

// ToMinorUnits escala amount por 100 y redondea (half away from zero) a entero.
// 133.70 -> 13370, 0.29 -> 29, 1.005 -> 101.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: %s es negativo", ErrInvalidAmount, amount.String())
	}
	if exp := amount.Exponent(); exp > maxExponent || exp < minExponent ||
		amount.Coefficient().BitLen() > maxCoefficientBits {
		return 0, fmt.Errorf("%w: escala fuera de rango", ErrInvalidAmount)
	}
	minor := amount.Mul(hundred).Round(0)
	if minor.GreaterThan(maxMinor) {
		return 0, fmt.Errorf("%w: %s excede el máximo", ErrInvalidAmount, amount.String())
	}
	return minor.IntPart(), nil
}

// FromMinorUnits devuelve el monto en unidades mayores con dos decimales exactos.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// FormatCurrency formatea centavos como "$1,234.56".
func FormatCurrency(minor int64) string {
	sign := ""
	d := FromMinorUnits(minor)
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	s := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + "$" + groupThousands(intPart) + "." + frac
}

// groupThousands inserta comas de miles en un string numérico sin signo.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
