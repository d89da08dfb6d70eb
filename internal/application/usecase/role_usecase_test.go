package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/application/usecase"
	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/infrastructure/memory"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

func newRoles(t *testing.T) (*memory.Store, *usecase.RoleUseCase) {
	t.Helper()
	st := memory.NewStore()
	st.RoleSalaries().Seed(
		&entity.RoleSalary{RoleID: "dev", RoleName: "Solution Developer", WeeklySalary: decimal.NewFromInt(500), Currency: "USD"},
		&entity.RoleSalary{RoleID: "qa", RoleName: "Solution Tester", WeeklySalary: decimal.NewFromInt(300)},
		&entity.RoleSalary{RoleID: "ba", RoleName: "Business Ambassador", WeeklySalary: decimal.Zero},
	)
	return st, usecase.NewRoleUseCase(st.RoleSalaries(), "USD", logger.Nop())
}

func salary(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestRoles_ListaConMonedaPorDefecto(t *testing.T) {
	_, uc := newRoles(t)

	list, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Business Ambassador", list[0].Name, "ordenados por nombre")
	for _, r := range list {
		assert.Equal(t, "USD", r.Currency)
		assert.True(t, r.Active)
	}
}

func TestRoles_ActualizarSueldoAlimentaPublicacionesAutomaticas(t *testing.T) {
	st, uc := newRoles(t)
	ctx := context.Background()

	out, err := uc.UpdateSalary(ctx, "qa", dto.UpdateRoleSalaryRequest{WeeklySalary: salary("420.555"), Currency: "clp"})

	require.NoError(t, err)
	assert.Equal(t, "420.56", out.WeeklySalary.StringFixed(2))
	assert.Equal(t, "CLP", out.Currency)
	require.NotNil(t, out.StartDate)

	active, err := st.RoleSalaries().ListActive(ctx)
	require.NoError(t, err)
	var qa *entity.RoleSalary
	for _, r := range active {
		if r.RoleID == "qa" {
			qa = r
		}
	}
	require.NotNil(t, qa)
	assert.True(t, decimal.RequireFromString("420.56").Equal(qa.WeeklySalary))
	assert.Equal(t, "CLP", qa.Currency)
}

func TestRoles_ActualizarSueldoValidaciones(t *testing.T) {
	_, uc := newRoles(t)
	ctx := context.Background()

	cases := map[string]dto.UpdateRoleSalaryRequest{
		"sin sueldo":      {Currency: "USD"},
		"sueldo negativo": {WeeklySalary: salary("-1")},
		"moneda inválida": {WeeklySalary: salary("100"), Currency: "PESOS"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.UpdateSalary(ctx, "dev", in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	_, err := uc.UpdateSalary(ctx, "no-existe", dto.UpdateRoleSalaryRequest{WeeklySalary: salary("100")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.GetByID(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoles_FallaDePersistencia(t *testing.T) {
	st, uc := newRoles(t)
	st.Fail("role_salaries.update", errors.New("timeout"))

	_, err := uc.UpdateSalary(context.Background(), "dev", dto.UpdateRoleSalaryRequest{WeeklySalary: salary("100")})

	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestRoles_Estadisticas(t *testing.T) {
	_, uc := newRoles(t)

	stats, err := uc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalRoles)
	assert.Equal(t, 2, stats.RolesWithSalary)
	assert.Equal(t, "800.00", stats.WeeklyTotal.StringFixed(2))
	assert.Equal(t, "3464.00", stats.MonthlyTotal.StringFixed(2))
}
