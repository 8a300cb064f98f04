package entity

import (
	"github.com/shopspring/decimal"

	"github.com/MartinGalvanCastro/Software-Modernization/internal/domain"
)

// Price objeto de valor para el precio en USD. Siempre > 0; se formatea con
// dos decimales. Se valida de nuevo en la capa de aplicación aunque el
// transporte ya lo haya validado.
type Price struct {
	amount decimal.Decimal
}

// NewPrice valida y construye un Price. Devuelve InvalidPriceError si amount <= 0.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Price{}, &domain.InvalidPriceError{Amount: amount}
	}
	return Price{amount: amount}, nil
}

// Amount devuelve el monto decimal.
func (p Price) Amount() decimal.Decimal { return p.amount }

// Equal compara dos precios por valor.
func (p Price) Equal(other Price) bool { return p.amount.Equal(other.amount) }

// String siempre muestra dos decimales.
func (p Price) String() string { return p.amount.StringFixed(2) }
