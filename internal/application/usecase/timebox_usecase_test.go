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
	"github.com/jhoicas/timebox-api/pkg/keylock"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

func newUseCase() (*memory.Store, *usecase.TimeboxUseCase) {
	st := memory.NewStore()
	return st, usecase.NewTimeboxUseCase(st.Timeboxes(), memory.NewTxRunner(st), keylock.New(), logger.Nop())
}

func TestCreate_EstadoPorDefecto(t *testing.T) {
	_, uc := newUseCase()

	tb, err := uc.Create(context.Background(), dto.CreateTimeboxRequest{TypeID: "t-1", ProjectID: "p-1"})

	require.NoError(t, err)
	assert.NotEmpty(t, tb.ID)
	assert.Equal(t, string(entity.StatusEnDefinicion), tb.Status)
}

func TestCreate_Validaciones(t *testing.T) {
	_, uc := newUseCase()
	ctx := context.Background()
	neg := decimal.NewFromInt(-1)

	cases := map[string]dto.CreateTimeboxRequest{
		"sin proyecto":    {TypeID: "t-1"},
		"estado inválido": {TypeID: "t-1", ProjectID: "p-1", Status: "Cancelado"},
		"monto negativo":  {TypeID: "t-1", ProjectID: "p-1", Amount: &neg},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUpdateStatus_AceptaEtiquetasConTilde(t *testing.T) {
	_, uc := newUseCase()
	ctx := context.Background()
	tb, err := uc.Create(ctx, dto.CreateTimeboxRequest{TypeID: "t-1", ProjectID: "p-1"})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(ctx, tb.ID, "En Ejecución")

	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusEnEjecucion), out.Status)
	st, err := uc.GetStatus(ctx, tb.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusEnEjecucion), st.Status)

	_, err = uc.UpdateStatus(ctx, tb.ID, "Pausado")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.UpdateStatus(ctx, "no-existe", "Finalizado")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStats_CuentaPorEstado(t *testing.T) {
	_, uc := newUseCase()
	ctx := context.Background()
	for _, s := range []string{"", "Disponible", "Disponible", "Finalizado"} {
		_, err := uc.Create(ctx, dto.CreateTimeboxRequest{TypeID: "t-1", ProjectID: "p-1", Status: s})
		require.NoError(t, err)
	}

	stats, err := uc.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.EnDefinicion)
	assert.Equal(t, 2, stats.Disponible)
	assert.Equal(t, 0, stats.EnEjecucion)
	assert.Equal(t, 1, stats.Finalizado)

	list, err := uc.ListByProject(ctx, "p-1")
	require.NoError(t, err)
	assert.Len(t, list, 4)
}

func TestDelete_CascadaConservaOrdenesDePago(t *testing.T) {
	st, uc := newUseCase()
	ctx := context.Background()
	tb, err := uc.Create(ctx, dto.CreateTimeboxRequest{TypeID: "t-1", ProjectID: "p-1"})
	require.NoError(t, err)

	require.NoError(t, st.Phases().UpsertPlanning(ctx, &entity.PlanningPhase{TimeboxID: tb.ID, Name: "x"}))
	require.NoError(t, st.Phases().UpsertKickoff(ctx, &entity.KickoffPhase{TimeboxID: tb.ID}))
	offer := &entity.PublicationOffer{TimeboxID: tb.ID, Requested: true}
	require.NoError(t, st.Offers().Upsert(ctx, offer))
	require.NoError(t, st.Postulations().Create(ctx, &entity.Postulation{OfferID: offer.ID, Role: "dev", ApplicantName: "Ana", Status: entity.PostulationPendiente}))
	require.NoError(t, st.AutoPublications().Create(ctx, &entity.AutoPublication{TimeboxID: tb.ID, Role: "dev", Weeks: 1}))
	require.NoError(t, st.PaymentOrders().Create(ctx, &entity.PaymentOrder{PayeeID: "Ana", Amount: decimal.NewFromInt(300), Status: entity.OrderPendiente}))

	require.NoError(t, uc.Delete(ctx, tb.ID))

	_, err = uc.GetByID(ctx, tb.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, st.Phases().RowCount(tb.ID, entity.PhasePlanning))
	assert.Equal(t, 0, st.Phases().RowCount(tb.ID, entity.PhaseKickoff))
	offers, err := st.Offers().ListByTimebox(ctx, tb.ID)
	require.NoError(t, err)
	assert.Empty(t, offers)
	posts, err := st.Postulations().ListByOffer(ctx, offer.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)
	autos, err := st.AutoPublications().ListByTimebox(ctx, tb.ID)
	require.NoError(t, err)
	assert.Empty(t, autos)
	assert.Equal(t, 1, st.PaymentOrders().Count())

	assert.ErrorIs(t, uc.Delete(ctx, tb.ID), domain.ErrNotFound)
}

func TestDelete_FallaDePersistencia(t *testing.T) {
	st, uc := newUseCase()
	ctx := context.Background()
	tb, err := uc.Create(ctx, dto.CreateTimeboxRequest{TypeID: "t-1", ProjectID: "p-1"})
	require.NoError(t, err)
	st.Fail("phases.delete", errors.New("timeout"))

	err = uc.Delete(ctx, tb.ID)

	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func strPtr(s string) *string { return &s }

func TestUpdate_SoloCamposPresentes(t *testing.T) {
	_, uc := newUseCase()
	ctx := context.Background()
	ba := "ba-1"
	amount := decimal.NewFromInt(1200)
	tb, err := uc.Create(ctx, dto.CreateTimeboxRequest{TypeID: "t-1", ProjectID: "p-1", BusinessAnalystID: &ba, Amount: &amount})
	require.NoError(t, err)
	newAmount := decimal.RequireFromString("1500.50")

	out, err := uc.Update(ctx, tb.ID, dto.UpdateTimeboxRequest{TypeID: strPtr(" t-2 "), Amount: &newAmount})

	require.NoError(t, err)
	assert.Equal(t, "t-2", out.TypeID)
	assert.Equal(t, "p-1", out.ProjectID, "el proyecto no viene en el body y se conserva")
	require.NotNil(t, out.BusinessAnalystID)
	assert.Equal(t, "ba-1", *out.BusinessAnalystID)
	assert.True(t, newAmount.Equal(*out.Amount))
	assert.Equal(t, string(entity.StatusEnDefinicion), out.Status)

	stored, err := uc.GetByID(ctx, tb.ID)
	require.NoError(t, err)
	assert.Equal(t, "t-2", stored.TypeID)

	out, err = uc.Update(ctx, tb.ID, dto.UpdateTimeboxRequest{BusinessAnalystID: strPtr(""), Status: strPtr("Finalizado")})
	require.NoError(t, err)
	assert.Nil(t, out.BusinessAnalystID)
	assert.Equal(t, string(entity.StatusFinalizado), out.Status)
}

func TestUpdate_Validaciones(t *testing.T) {
	_, uc := newUseCase()
	ctx := context.Background()
	tb, err := uc.Create(ctx, dto.CreateTimeboxRequest{TypeID: "t-1", ProjectID: "p-1"})
	require.NoError(t, err)
	neg := decimal.NewFromInt(-5)

	cases := map[string]dto.UpdateTimeboxRequest{
		"tipo vacío":      {TypeID: strPtr("  ")},
		"proyecto vacío":  {ProjectID: strPtr("")},
		"monto negativo":  {Amount: &neg},
		"estado inválido": {Status: strPtr("Pausado")},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Update(ctx, tb.ID, in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	_, err = uc.Update(ctx, "no-existe", dto.UpdateTimeboxRequest{TypeID: strPtr("t-2")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_TodosLosProyectos(t *testing.T) {
	_, uc := newUseCase()
	ctx := context.Background()
	for _, p := range []string{"p-1", "p-2", "p-2"} {
		_, err := uc.Create(ctx, dto.CreateTimeboxRequest{TypeID: "t-1", ProjectID: p})
		require.NoError(t, err)
	}

	list, err := uc.List(ctx)

	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestWithPostulations_OrdenaPorCantidad(t *testing.T) {
	st, uc := newUseCase()
	ctx := context.Background()
	apply := func(tbID string, n int) {
		offer := &entity.PublicationOffer{TimeboxID: tbID, Requested: true}
		require.NoError(t, st.Offers().Upsert(ctx, offer))
		for i := 0; i < n; i++ {
			require.NoError(t, st.Postulations().Create(ctx, &entity.Postulation{OfferID: offer.ID, Role: "dev", ApplicantName: "Ana", Status: entity.PostulationPendiente}))
		}
	}
	one, err := uc.Create(ctx, dto.CreateTimeboxRequest{TypeID: "t-1", ProjectID: "p-1"})
	require.NoError(t, err)
	three, err := uc.Create(ctx, dto.CreateTimeboxRequest{TypeID: "t-1", ProjectID: "p-1"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateTimeboxRequest{TypeID: "t-1", ProjectID: "p-1"})
	require.NoError(t, err)
	apply(one.ID, 1)
	apply(three.ID, 3)

	queue, err := uc.WithPostulations(ctx)

	require.NoError(t, err)
	require.Len(t, queue, 2, "los timeboxes sin postulaciones no aparecen")
	assert.Equal(t, three.ID, queue[0].ID)
	assert.Equal(t, 3, queue[0].Postulations)
	assert.Equal(t, one.ID, queue[1].ID)
	assert.Equal(t, 1, queue[1].Postulations)
}
