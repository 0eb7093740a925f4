package money_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoices-dashboard/internal/domain/money"
)

// 133.7 * 100 en float64 da 13369.999999999998; la conversión debe dar 13370 exacto.
func TestToMinorUnits_SinDerivaDeFloat(t *testing.T) {
	entered := 133.7
	require.NotEqual(t, float64(13370), entered*100, "precondición: el float nativo deriva")

	got, err := money.ToMinorUnits(decimal.RequireFromString("133.70"))
	require.NoError(t, err)
	assert.Equal(t, int64(13370), got)
}

func TestToMinorUnits_Casos(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0.01", 1},
		{"0.29", 29},
		{"1", 100},
		{"19.99", 1999},
		{"1.005", 101},
		{"1.004", 100},
		{"4.35", 435},
		{"1234567.89", 123456789},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := money.ToMinorUnits(decimal.RequireFromString(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Para todo monto con hasta dos decimales el resultado es exactamente el entero escrito.
func TestToMinorUnits_BarridoDosDecimales(t *testing.T) {
	for cents := int64(1); cents <= 200000; cents += 7 {
		s := fmt.Sprintf("%d.%02d", cents/100, cents%100)
		got, err := money.ToMinorUnits(decimal.RequireFromString(s))
		require.NoError(t, err)
		require.Equal(t, cents, got, "monto %s", s)
	}
}

func TestToMinorUnits_Negativo(t *testing.T) {
	_, err := money.ToMinorUnits(decimal.NewFromInt(-1))
	assert.True(t, errors.Is(err, money.ErrInvalidAmount))
}

func TestToMinorUnits_FueraDeRango(t *testing.T) {
	huge := decimal.NewFromInt(math.MaxInt64)
	_, err := money.ToMinorUnits(huge)
	assert.True(t, errors.Is(err, money.ErrInvalidAmount))
}

// El tope es el de la columna INT de Postgres.
func TestToMinorUnits_TopeDeColumnaInt(t *testing.T) {
	got, err := money.ToMinorUnits(decimal.RequireFromString("21474836.47"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt32), got)

	_, err = money.ToMinorUnits(decimal.RequireFromString("21474836.48"))
	assert.True(t, errors.Is(err, money.ErrInvalidAmount))
}

// Escalas extremas fallan antes de redondear.
func TestToMinorUnits_EscalaExtrema(t *testing.T) {
	for _, d := range []decimal.Decimal{
		decimal.New(1, 400000000),
		decimal.New(1, -400000000),
		decimal.New(1, 11),
	} {
		_, err := money.ToMinorUnits(d)
		assert.True(t, errors.Is(err, money.ErrInvalidAmount), "exponente %d", d.Exponent())
	}
}

func TestFromMinorUnits(t *testing.T) {
	assert.Equal(t, "133.70", money.FromMinorUnits(13370).StringFixed(2))
	assert.True(t, money.FromMinorUnits(29).Equal(decimal.RequireFromString("0.29")))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.05", money.FormatCurrency(5))
	assert.Equal(t, "$133.70", money.FormatCurrency(13370))
	assert.Equal(t, "$1,234,567.89", money.FormatCurrency(123456789))
	assert.Equal(t, "-$12.00", money.FormatCurrency(-1200))
}
