package publication_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/timebox-api/internal/application/finance"
	"github.com/jhoicas/timebox-api/internal/application/lifecycle"
	"github.com/jhoicas/timebox-api/internal/application/publication"
	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
	"github.com/jhoicas/timebox-api/internal/infrastructure/memory"
	"github.com/jhoicas/timebox-api/pkg/keylock"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

type fixture struct {
	ctx    context.Context
	store  *memory.Store
	phases *lifecycle.PhaseStore
	wf     *publication.Workflow
	auto   *publication.AutoPublisher
	tbID   string
}

func newFixture(t *testing.T, status entity.TimeboxStatus) *fixture {
	t.Helper()
	st := memory.NewStore()
	log := logger.Nop()
	phaseStore := lifecycle.NewPhaseStore(st.Phases())
	engine := lifecycle.NewProgressionEngine(st.Timeboxes(), st.Phases(), log)
	emitter := finance.NewAdvanceEmitter(st.PaymentOrders(), st.Payments(), log)
	wf := publication.NewWorkflow(st.Timeboxes(), st.Offers(), st.Postulations(), phaseStore, engine, emitter, keylock.New(), log)
	auto := publication.NewAutoPublisher(st.Timeboxes(), st.AutoPublications(), st.RoleSalaries(), phaseStore, "USD", log)

	tb := &entity.Timebox{TypeID: "tipo-1", ProjectID: "proj-1", Status: status}
	require.NoError(t, st.Timeboxes().Create(context.Background(), tb))
	return &fixture{ctx: context.Background(), store: st, phases: phaseStore, wf: wf, auto: auto, tbID: tb.ID}
}

func (f *fixture) status(t *testing.T) entity.TimeboxStatus {
	t.Helper()
	tb, err := f.store.Timeboxes().GetByID(f.ctx, f.tbID)
	require.NoError(t, err)
	return tb.Status
}

func (f *fixture) withFinancing(t *testing.T, base, pct string) {
	t.Helper()
	k := &entity.KickoffPhase{TimeboxID: f.tbID, Financing: &entity.Financing{Currency: "USD"}}
	if base != "" {
		d := decimal.RequireFromString(base)
		k.Financing.BaseAmount = &d
	}
	if pct != "" {
		d := decimal.RequireFromString(pct)
		k.Financing.AdvancePercentage = &d
	}
	k.Team.Assign(entity.RoleBusinessAmbassador, entity.PersonRef{ID: "p-9", Name: "Bea"})
	_, err := f.phases.Upsert(f.ctx, k)
	require.NoError(t, err)
}

func (f *fixture) openOfferWithApplicant(t *testing.T, name string) (*entity.PublicationOffer, *entity.Postulation) {
	t.Helper()
	offer, err := f.wf.RequestPublication(f.ctx, f.tbID)
	require.NoError(t, err)
	post, err := f.wf.Apply(f.ctx, offer.ID, "Solution Developer", name)
	require.NoError(t, err)
	return offer, post
}

func (f *fixture) orders(t *testing.T) []*entity.PaymentOrder {
	t.Helper()
	list, err := f.store.PaymentOrders().List(f.ctx, repository.PaymentOrderFilter{})
	require.NoError(t, err)
	return list
}

// ──────────────────────────────────────────────────────────────────────────────
// Oferta
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestPublication_CreaOfertaSolicitadaUnaVez(t *testing.T) {
	f := newFixture(t, entity.StatusEnDefinicion)

	first, err := f.wf.RequestPublication(f.ctx, f.tbID)
	require.NoError(t, err)
	second, err := f.wf.RequestPublication(f.ctx, f.tbID)
	require.NoError(t, err)

	assert.True(t, first.Requested)
	assert.False(t, first.Published)
	assert.Equal(t, first.ID, second.ID)
	offers, err := f.wf.ListOffers(f.ctx, f.tbID)
	require.NoError(t, err)
	assert.Len(t, offers, 1)
	assert.Equal(t, entity.StatusEnDefinicion, f.status(t))
}

func TestRequestPublication_TimeboxInexistente(t *testing.T) {
	f := newFixture(t, entity.StatusEnDefinicion)

	_, err := f.wf.RequestPublication(f.ctx, "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPublish_DejaElTimeboxDisponible(t *testing.T) {
	for _, from := range []entity.TimeboxStatus{entity.StatusEnDefinicion, entity.StatusEnEjecucion, entity.StatusDisponible} {
		t.Run(string(from), func(t *testing.T) {
			f := newFixture(t, from)
			offer, err := f.wf.RequestPublication(f.ctx, f.tbID)
			require.NoError(t, err)

			published, tr, err := f.wf.Publish(f.ctx, offer.ID)

			require.NoError(t, err)
			assert.True(t, published.Published)
			assert.NotNil(t, published.PublicationDate)
			assert.Equal(t, entity.StatusDisponible, tr.To)
			assert.Equal(t, from != entity.StatusDisponible, tr.Changed)
			assert.Equal(t, entity.StatusDisponible, f.status(t))
		})
	}
}

func TestPublish_OfertaInexistente(t *testing.T) {
	f := newFixture(t, entity.StatusEnDefinicion)

	_, _, err := f.wf.Publish(f.ctx, "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Postulación
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_PermitePostulacionesRepetidas(t *testing.T) {
	f := newFixture(t, entity.StatusEnDefinicion)
	offer, first := f.openOfferWithApplicant(t, "Ana")
	second, err := f.wf.Apply(f.ctx, offer.ID, "Solution Developer", "Ana")
	require.NoError(t, err)

	list, err := f.wf.ListPostulations(f.ctx, offer.ID)

	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NotEqual(t, first.ID, second.ID)
	for _, p := range list {
		assert.Equal(t, entity.PostulationPendiente, p.Status)
		assert.False(t, p.Assigned)
	}
}

func TestApply_CamposRequeridos(t *testing.T) {
	f := newFixture(t, entity.StatusEnDefinicion)
	offer, err := f.wf.RequestPublication(f.ctx, f.tbID)
	require.NoError(t, err)

	_, err = f.wf.Apply(f.ctx, offer.ID, "", "Ana")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.wf.Apply(f.ctx, "no-existe", "Solution Developer", "Ana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aprobación
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_AsignaRolYEmiteAnticipo(t *testing.T) {
	f := newFixture(t, entity.StatusDisponible)
	f.withFinancing(t, "1000", "30")
	_, post := f.openOfferWithApplicant(t, "Ana")

	res, err := f.wf.Approve(f.ctx, f.tbID, post.ID, "solutionDeveloper", "Ana")

	require.NoError(t, err)
	assert.True(t, res.Approved)
	assert.True(t, res.PaymentEmitted)
	assert.NoError(t, res.PaymentError)

	orders := f.orders(t)
	require.Len(t, orders, 1)
	order := orders[0]
	assert.Equal(t, res.PaymentOrderID, order.ID)
	assert.Equal(t, "Ana", order.PayeeID)
	assert.True(t, decimal.RequireFromString("300.00").Equal(order.Amount))
	assert.Equal(t, "USD", order.Currency)
	assert.Equal(t, "Advance 30% - Timebox "+f.tbID+" - Role solutionDeveloper", order.Concept)
	assert.Equal(t, entity.OrderPendiente, order.Status)

	payments, err := f.store.Payments().ListByOrders(f.ctx, []string{order.ID})
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, entity.PaymentMethodAnticipo, payments[0].Method)
	assert.Equal(t, "TB-"+f.tbID+"-solutionDeveloper", payments[0].Reference)

	phases, err := f.phases.Load(f.ctx, f.tbID)
	require.NoError(t, err)
	require.NotNil(t, phases.Kickoff)
	require.NotNil(t, phases.Kickoff.Team.SolutionDeveloper)
	assert.Equal(t, "Ana", phases.Kickoff.Team.SolutionDeveloper.Name)
	require.NotNil(t, phases.Kickoff.Team.BusinessAmbassador, "los demás slots se conservan")
	assert.Equal(t, "Bea", phases.Kickoff.Team.BusinessAmbassador.Name)
	assert.Nil(t, phases.Kickoff.Team.SolutionTester)

	stored, err := f.store.Postulations().GetByID(f.ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PostulationAprobada, stored.Status)
	assert.True(t, stored.Assigned)
	assert.NotNil(t, stored.AssignmentDate)

	assert.Equal(t, entity.StatusDisponible, f.status(t), "aprobar no cambia el estado")
}

func TestApprove_SinFinanciamientoCompletoNoEmite(t *testing.T) {
	f := newFixture(t, entity.StatusDisponible)
	f.withFinancing(t, "1000", "")
	_, post := f.openOfferWithApplicant(t, "Ana")

	res, err := f.wf.Approve(f.ctx, f.tbID, post.ID, "solutionDeveloper", "Ana")

	require.NoError(t, err)
	assert.True(t, res.Approved)
	assert.False(t, res.PaymentEmitted)
	assert.NoError(t, res.PaymentError)
	assert.Empty(t, f.orders(t))
}

func TestApprove_SinKickoffLoCrea(t *testing.T) {
	f := newFixture(t, entity.StatusDisponible)
	_, post := f.openOfferWithApplicant(t, "Ana")

	res, err := f.wf.Approve(f.ctx, f.tbID, post.ID, "solution_tester", "")

	require.NoError(t, err)
	assert.False(t, res.PaymentEmitted)
	phases, err := f.phases.Load(f.ctx, f.tbID)
	require.NoError(t, err)
	require.NotNil(t, phases.Kickoff)
	require.NotNil(t, phases.Kickoff.Team.SolutionTester)
	assert.Equal(t, "Ana", phases.Kickoff.Team.SolutionTester.Name, "sin nombre se usa el de la postulación")
}

func TestApprove_UnaSolaAprobadaPorRol(t *testing.T) {
	f := newFixture(t, entity.StatusDisponible)
	f.withFinancing(t, "1000", "30")
	offer, first := f.openOfferWithApplicant(t, "Ana")
	second, err := f.wf.Apply(f.ctx, offer.ID, "solution developer", "Luis")
	require.NoError(t, err)

	_, err = f.wf.Approve(f.ctx, f.tbID, first.ID, "solutionDeveloper", "Ana")
	require.NoError(t, err)
	_, err = f.wf.Approve(f.ctx, f.tbID, second.ID, "solutionDeveloper", "Luis")

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Len(t, f.orders(t), 1)
	stored, err := f.store.Postulations().GetByID(f.ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PostulationPendiente, stored.Status)
	assert.False(t, stored.Assigned)
	phases, err := f.phases.Load(f.ctx, f.tbID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", phases.Kickoff.Team.SolutionDeveloper.Name)
}

func TestApprove_OtroRolDeLaMismaOferta(t *testing.T) {
	f := newFixture(t, entity.StatusDisponible)
	offer, first := f.openOfferWithApplicant(t, "Ana")
	tester, err := f.wf.Apply(f.ctx, offer.ID, "Solution Tester", "Luis")
	require.NoError(t, err)

	_, err = f.wf.Approve(f.ctx, f.tbID, first.ID, "solutionDeveloper", "Ana")
	require.NoError(t, err)
	res, err := f.wf.Approve(f.ctx, f.tbID, tester.ID, "solutionTester", "Luis")

	require.NoError(t, err)
	assert.True(t, res.Approved)
	phases, err := f.phases.Load(f.ctx, f.tbID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", phases.Kickoff.Team.SolutionDeveloper.Name)
	assert.Equal(t, "Luis", phases.Kickoff.Team.SolutionTester.Name)
}

func TestApprove_YaAprobadaEsEstadoInvalido(t *testing.T) {
	f := newFixture(t, entity.StatusDisponible)
	f.withFinancing(t, "1000", "30")
	_, post := f.openOfferWithApplicant(t, "Ana")
	_, err := f.wf.Approve(f.ctx, f.tbID, post.ID, "solutionDeveloper", "Ana")
	require.NoError(t, err)
	before, err := f.store.Postulations().GetByID(f.ctx, post.ID)
	require.NoError(t, err)
	assignedAt := *before.AssignmentDate

	_, err = f.wf.Approve(f.ctx, f.tbID, post.ID, "solutionTester", "Otra")

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Len(t, f.orders(t), 1)
	after, err := f.store.Postulations().GetByID(f.ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PostulationAprobada, after.Status)
	assert.Equal(t, assignedAt, *after.AssignmentDate)
	phases, err := f.phases.Load(f.ctx, f.tbID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", phases.Kickoff.Team.SolutionDeveloper.Name)
	assert.Nil(t, phases.Kickoff.Team.SolutionTester)
}

func TestApprove_PostulacionDeOtroTimebox(t *testing.T) {
	f := newFixture(t, entity.StatusDisponible)
	_, post := f.openOfferWithApplicant(t, "Ana")
	other := &entity.Timebox{TypeID: "tipo-1", ProjectID: "proj-1", Status: entity.StatusDisponible}
	require.NoError(t, f.store.Timeboxes().Create(f.ctx, other))

	_, err := f.wf.Approve(f.ctx, other.ID, post.ID, "solutionDeveloper", "Ana")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.wf.Approve(f.ctx, f.tbID, "no-existe", "solutionDeveloper", "Ana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApprove_RolDesconocidoNoMutaNada(t *testing.T) {
	f := newFixture(t, entity.StatusDisponible)
	f.withFinancing(t, "1000", "30")
	_, post := f.openOfferWithApplicant(t, "Ana")

	_, err := f.wf.Approve(f.ctx, f.tbID, post.ID, "scrumMaster", "Ana")

	assert.ErrorIs(t, err, domain.ErrValidation)
	stored, err := f.store.Postulations().GetByID(f.ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PostulationPendiente, stored.Status)
	assert.Empty(t, f.orders(t))
}

func TestApprove_FallaDeEmisionNoRevierteLaAprobacion(t *testing.T) {
	f := newFixture(t, entity.StatusDisponible)
	f.withFinancing(t, "1000", "30")
	_, post := f.openOfferWithApplicant(t, "Ana")
	f.store.Fail("payment_orders.create", errors.New("conexión perdida"))

	res, err := f.wf.Approve(f.ctx, f.tbID, post.ID, "solutionDeveloper", "Ana")

	require.NoError(t, err)
	assert.True(t, res.Approved)
	assert.False(t, res.PaymentEmitted)
	assert.False(t, res.OrderCreated)
	assert.Empty(t, res.PaymentOrderID)
	require.Error(t, res.PaymentError)
	assert.ErrorIs(t, res.PaymentError, domain.ErrPersistence)

	stored, err := f.store.Postulations().GetByID(f.ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PostulationAprobada, stored.Status)
	phases, err := f.phases.Load(f.ctx, f.tbID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", phases.Kickoff.Team.SolutionDeveloper.Name)
}

func TestApprove_OrdenSinPagoSeReportaComoParcial(t *testing.T) {
	f := newFixture(t, entity.StatusDisponible)
	f.withFinancing(t, "1000", "30")
	_, post := f.openOfferWithApplicant(t, "Ana")
	f.store.Fail("payments.create", errors.New("disco lleno"))

	res, err := f.wf.Approve(f.ctx, f.tbID, post.ID, "solutionDeveloper", "Ana")

	require.NoError(t, err)
	assert.True(t, res.Approved)
	assert.False(t, res.PaymentEmitted)
	assert.True(t, res.OrderCreated)
	assert.ErrorIs(t, res.PaymentError, domain.ErrPersistence)
	orders := f.orders(t)
	require.Len(t, orders, 1)
	assert.Equal(t, orders[0].ID, res.PaymentOrderID)
	assert.Equal(t, entity.OrderPendiente, orders[0].Status)
	payments, err := f.store.Payments().ListByOrders(f.ctx, []string{orders[0].ID})
	require.NoError(t, err)
	assert.Empty(t, payments)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazo
// ──────────────────────────────────────────────────────────────────────────────

func TestReject_EsTerminal(t *testing.T) {
	f := newFixture(t, entity.StatusDisponible)
	f.withFinancing(t, "1000", "30")
	_, post := f.openOfferWithApplicant(t, "Ana")
	reason := "sin disponibilidad"

	rejected, err := f.wf.Reject(f.ctx, post.ID, &reason)

	require.NoError(t, err)
	assert.Equal(t, entity.PostulationRechazada, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, reason, *rejected.RejectionReason)
	assert.NotNil(t, rejected.RejectionDate)

	_, err = f.wf.Reject(f.ctx, post.ID, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	_, err = f.wf.Approve(f.ctx, f.tbID, post.ID, "solutionDeveloper", "Ana")
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	assert.Empty(t, f.orders(t))
	stored, err := f.store.Postulations().GetByID(f.ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PostulationRechazada, stored.Status)
	assert.False(t, stored.Assigned)
	assert.Nil(t, stored.AssignmentDate)
	require.NotNil(t, stored.RejectionReason)
	assert.Equal(t, reason, *stored.RejectionReason)
	phases, err := f.phases.Load(f.ctx, f.tbID)
	require.NoError(t, err)
	require.NotNil(t, phases.Kickoff)
	assert.Nil(t, phases.Kickoff.Team.SolutionDeveloper)
}

func TestReject_Inexistente(t *testing.T) {
	f := newFixture(t, entity.StatusDisponible)

	_, err := f.wf.Reject(f.ctx, "no-existe", nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Publicaciones automáticas
// ──────────────────────────────────────────────────────────────────────────────

func seedRoles(f *fixture) {
	f.store.RoleSalaries().Seed(
		&entity.RoleSalary{RoleID: "r-1", RoleName: "Solution Developer", WeeklySalary: decimal.NewFromInt(500), Currency: "USD"},
		&entity.RoleSalary{RoleID: "r-2", RoleName: "Solution Tester", WeeklySalary: decimal.NewFromInt(350)},
	)
}

func TestCreateAutoPublications_UsaLasSemanasDelPlanning(t *testing.T) {
	f := newFixture(t, entity.StatusEnDefinicion)
	seedRoles(f)
	_, err := f.phases.Upsert(f.ctx, &entity.PlanningPhase{TimeboxID: f.tbID, Effort: "3 semanas"})
	require.NoError(t, err)

	pubs, err := f.auto.CreateAutoPublications(f.ctx, f.tbID)

	require.NoError(t, err)
	require.Len(t, pubs, 2)
	assert.Equal(t, 3, pubs[0].Weeks)
	assert.True(t, decimal.NewFromInt(1500).Equal(pubs[0].TotalFinancing))
	assert.Equal(t, "USD", pubs[1].Currency, "sin moneda se usa la configurada")
	assert.True(t, decimal.NewFromInt(1050).Equal(pubs[1].TotalFinancing))
	for _, p := range pubs {
		assert.False(t, p.Published)
	}
}

func TestCreateAutoPublications_SinPlanningEsUnaSemana(t *testing.T) {
	f := newFixture(t, entity.StatusEnDefinicion)
	seedRoles(f)

	roles, err := f.auto.ListRoles(f.ctx, f.tbID)

	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, 1, roles[0].Weeks)
	assert.True(t, decimal.NewFromInt(500).Equal(roles[0].TotalFinancing))
}

func TestPublishAutoPublication(t *testing.T) {
	f := newFixture(t, entity.StatusEnDefinicion)
	seedRoles(f)
	pubs, err := f.auto.CreateAutoPublications(f.ctx, f.tbID)
	require.NoError(t, err)

	published, err := f.auto.PublishAutoPublication(f.ctx, pubs[0].ID)

	require.NoError(t, err)
	assert.True(t, published.Published)
	assert.NotNil(t, published.PublicationDate)
	_, err = f.auto.PublishAutoPublication(f.ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := f.auto.ListAutoPublications(f.ctx, f.tbID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
