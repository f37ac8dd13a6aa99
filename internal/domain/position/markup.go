package position

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/storehouse-api/internal/domain"
)

// MoneyScale decimales para precios (redondeo a centavos).
const MoneyScale = 2

// Límites de percent en la frontera HTTP: nunca más de 95% de descuento ni
// 500% de recargo en una sola llamada. El calculador de factor no los conoce;
// solo exige factor > 0.
var (
	PercentFloor = decimal.NewFromInt(-95)
	PercentCeil  = decimal.NewFromInt(500)
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// FactorFromPercent convierte un porcentaje con signo en el factor
// multiplicativo 1 + percent/100. Un percent ≤ -100 produce un factor no
// positivo y no tiene sentido aplicado sobre un markup positivo existente.
func FactorFromPercent(percent decimal.Decimal) (decimal.Decimal, error) {
	factor := one.Add(percent.Div(hundred))
	if factor.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, domain.ErrInvalidMarkup
	}
	return factor, nil
}

// PercentInBounds valida el rango de negocio [-95, 500] de la frontera.
func PercentInBounds(percent decimal.Decimal) bool {
	return percent.GreaterThanOrEqual(PercentFloor) && percent.LessThanOrEqual(PercentCeil)
}

// DeriveSalePrice calcula el precio de venta a partir del precio de compra y
// el markup, redondeado a centavos.
func DeriveSalePrice(purchasePrice, markup decimal.Decimal) decimal.Decimal {
	return purchasePrice.Mul(markup).Round(MoneyScale)
}
