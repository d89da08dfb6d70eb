package compensation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/timebox-api/internal/domain/compensation"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAdvanceAmount_TreintaPorCientoDeMil(t *testing.T) {
	got := compensation.AdvanceAmount(decimal.NewFromInt(1000), decimal.NewFromInt(30))
	assert.True(t, got.Equal(decimal.RequireFromString("300.00")), "got %s", got)
	assert.Equal(t, "300.00", got.StringFixed(2))
}

func TestAdvanceAmount_PorcentajeDecimal(t *testing.T) {
	got := compensation.AdvanceAmount(decimal.RequireFromString("1234.56"), decimal.RequireFromString("12.5"))
	assert.Equal(t, "154.32", got.StringFixed(2))
}

func TestBreakdown_FinanciamientoIncompleto(t *testing.T) {
	assert.Nil(t, compensation.Breakdown(nil))
	assert.Nil(t, compensation.Breakdown(&entity.Financing{BaseAmount: dec("1000"), Currency: "USD"}))
	assert.Nil(t, compensation.Breakdown(&entity.Financing{AdvancePercentage: dec("30"), Currency: "USD"}))
}

func TestBreakdown_Completo(t *testing.T) {
	b := compensation.Breakdown(&entity.Financing{BaseAmount: dec("1000"), AdvancePercentage: dec("30"), Currency: "USD"})
	require.NotNil(t, b)
	assert.Equal(t, "300.00", b.AdvanceAmount.StringFixed(2))
	assert.Equal(t, "700.00", b.RemainingAmount.StringFixed(2))
	assert.Equal(t, "USD", b.Currency)
}

func TestAdvanceConceptYReferencia(t *testing.T) {
	assert.Equal(t, "Advance 30% - Timebox tb-1 - Role solutionDeveloper",
		compensation.AdvanceConcept(decimal.NewFromInt(30), "tb-1", "solutionDeveloper"))
	assert.Equal(t, "TB-tb-1-solutionDeveloper", compensation.AdvanceReference("tb-1", "solutionDeveloper"))
}
