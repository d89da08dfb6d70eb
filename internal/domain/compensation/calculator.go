package compensation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// AdvanceAmount calcula el anticipo (servicio de dominio).
// Anticipo = MontoBase * PorcentajeAnticipado / 100, redondeado a 2 decimales.
func AdvanceAmount(baseAmount, advancePercentage decimal.Decimal) decimal.Decimal {
	return baseAmount.Mul(advancePercentage).Div(hundred).Round(2)
}

// Breakdown deriva el desglose de compensación del financiamiento.
// Devuelve nil si el descriptor está incompleto.
func Breakdown(f *entity.Financing) *entity.CompensationBreakdown {
	if !f.Complete() {
		return nil
	}
	advance := AdvanceAmount(*f.BaseAmount, *f.AdvancePercentage)
	return &entity.CompensationBreakdown{
		AdvanceAmount:   advance,
		RemainingAmount: f.BaseAmount.Sub(advance),
		Currency:        f.Currency,
	}
}

// AdvanceConcept texto del concepto de la orden de pago de anticipo.
func AdvanceConcept(advancePercentage decimal.Decimal, timeboxID, roleKey string) string {
	return fmt.Sprintf("Advance %s%% - Timebox %s - Role %s", advancePercentage.String(), timeboxID, roleKey)
}

// AdvanceReference referencia del pago de anticipo.
func AdvanceReference(timeboxID, roleKey string) string {
	return fmt.Sprintf("TB-%s-%s", timeboxID, roleKey)
}
