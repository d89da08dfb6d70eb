package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

func TestToJSON_EquipoConSlotsVaciosEnNull(t *testing.T) {
	team := entity.TeamMobilization{
		BusinessAmbassador: &entity.PersonRef{ID: "u-1", Name: "Ana"},
		SolutionDeveloper:  &entity.PersonRef{Name: "Luis"},
	}

	raw, err := toJSON(team)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"businessAmbassador": {"id": "u-1", "nombre": "Ana"},
		"solutionDeveloper": {"nombre": "Luis"},
		"solutionTester": null,
		"businessAdvisor": null,
		"technicalAdvisor": null
	}`, string(raw))

	var back entity.TeamMobilization
	require.NoError(t, fromJSON(raw, &back))
	assert.Equal(t, team, back)
}

func TestFromJSON_EquipoHeredadoConClavesFaltantes(t *testing.T) {
	raw := []byte(`{"solutionTester": {"nombre": "Marta"}, "businessAdvisor": null}`)

	var team entity.TeamMobilization
	require.NoError(t, fromJSON(raw, &team))

	assert.Nil(t, team.BusinessAmbassador)
	assert.Nil(t, team.SolutionDeveloper)
	assert.Nil(t, team.BusinessAdvisor)
	assert.Nil(t, team.TechnicalAdvisor)
	require.NotNil(t, team.SolutionTester)
	assert.Equal(t, "Marta", team.SolutionTester.Name)
}

func TestToJSON_FinanciamientoConPorcentajeNulo(t *testing.T) {
	base := decimal.RequireFromString("1500.50")
	f := &entity.Financing{BaseAmount: &base, Currency: "CLP"}

	raw, err := toJSON(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"montoBase": "1500.5", "porcentajeAnticipado": null, "moneda": "CLP"}`, string(raw))

	var back entity.Financing
	require.NoError(t, fromJSON(raw, &back))
	require.NotNil(t, back.BaseAmount)
	assert.True(t, base.Equal(*back.BaseAmount))
	assert.Nil(t, back.AdvancePercentage)
	assert.Equal(t, "CLP", back.Currency)
	assert.False(t, back.Complete())
}

func TestFromJSON_FinanciamientoConNumerosSinComillas(t *testing.T) {
	raw := []byte(`{"montoBase": 2000, "porcentajeAnticipado": 30, "moneda": "USD"}`)

	var f entity.Financing
	require.NoError(t, fromJSON(raw, &f))

	require.True(t, f.Complete())
	assert.Equal(t, "2000", f.BaseAmount.String())
	assert.Equal(t, "30", f.AdvancePercentage.String())
}

func TestFromJSON_NullODesconocidoNoTocaElDestino(t *testing.T) {
	agreements := []string{"daily 9:00"}

	require.NoError(t, fromJSON(nil, &agreements))
	require.NoError(t, fromJSON([]byte("null"), &agreements))
	assert.Equal(t, []string{"daily 9:00"}, agreements)

	err := fromJSON([]byte(`{"roto"`), &agreements)
	assert.ErrorContains(t, err, "unmarshal jsonb")
}

func TestToJSON_NilEsNULL(t *testing.T) {
	raw, err := toJSON(nil)

	require.NoError(t, err)
	assert.Nil(t, raw)
}
