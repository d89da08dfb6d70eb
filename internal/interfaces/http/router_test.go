package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/application/finance"
	"github.com/jhoicas/timebox-api/internal/application/lifecycle"
	"github.com/jhoicas/timebox-api/internal/application/publication"
	"github.com/jhoicas/timebox-api/internal/application/usecase"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/timebox-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/timebox-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/timebox-api/pkg/jwt"
	"github.com/jhoicas/timebox-api/pkg/keylock"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// API completa sobre el store en memoria
// ──────────────────────────────────────────────────────────────────────────────

type api struct {
	t     *testing.T
	app   *fiber.App
	store *memory.Store
}

func newAPI(t *testing.T) *api {
	t.Helper()
	st := memory.NewStore()
	log := logger.Nop()
	locks := keylock.New()

	phaseStore := lifecycle.NewPhaseStore(st.Phases())
	engine := lifecycle.NewProgressionEngine(st.Timeboxes(), st.Phases(), log)
	emitter := finance.NewAdvanceEmitter(st.PaymentOrders(), st.Payments(), log)
	wf := publication.NewWorkflow(st.Timeboxes(), st.Offers(), st.Postulations(), phaseStore, engine, emitter, locks, log)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(app, apphttp.RouterDeps{
		TimeboxUC:   usecase.NewTimeboxUseCase(st.Timeboxes(), memory.NewTxRunner(st), locks, log),
		Roles:       usecase.NewRoleUseCase(st.RoleSalaries(), "USD", log),
		Phases:      lifecycle.NewPhaseService(st.Timeboxes(), phaseStore, engine, wf, locks, log),
		Workflow:    wf,
		AutoPublish: publication.NewAutoPublisher(st.Timeboxes(), st.AutoPublications(), st.RoleSalaries(), phaseStore, "USD", log),
		Orders:      finance.NewOrderService(st.PaymentOrders(), st.Payments(), infrapdf.NewReceiptRenderer("timebox-api"), "USD", log),
		JWTSecret:   testJWTSecret,
	})
	return &api{t: t, app: app, store: st}
}

func token(t *testing.T, userID, name, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, name, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func (a *api) do(method, path, auth string, body any) *http.Response {
	a.t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (a *api) createTimebox(auth string) dto.TimeboxResponse {
	a.t.Helper()
	resp := a.do(http.MethodPost, "/api/timeboxes", auth, dto.CreateTimeboxRequest{TypeID: "tipo-1", ProjectID: "proj-1"})
	require.Equal(a.t, http.StatusCreated, resp.StatusCode)
	return decode[dto.TimeboxResponse](a.t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_FlujoPlanningPublicacionYAsignacion(t *testing.T) {
	a := newAPI(t)
	op := token(t, "op-1", "Olga", pkgjwt.RoleOperator)
	dev := token(t, "dev-1", "Ana", pkgjwt.RoleDeveloper)

	tb := a.createTimebox(op)
	assert.Equal(t, "En Definicion", tb.Status)

	// Planning completado: se crea el kickoff y el timebox pasa a En Ejecucion.
	resp := a.do(http.MethodPut, "/api/timeboxes/"+tb.ID+"/fases/planning", op, map[string]any{
		"completada": true,
		"datos": map[string]any{
			"nombre": "Portal", "codigo": "TB-1", "esfuerzo": "2 semanas", "fechaInicio": "2026-03-02T15:04:05Z",
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decode[map[string]any](t, resp)
	assert.Equal(t, "En Ejecucion", saved["estadoTimebox"])
	assert.Equal(t, true, saved["kickoffCreado"])

	// Kickoff con financiamiento.
	resp = a.do(http.MethodPut, "/api/timeboxes/"+tb.ID+"/fases/kickoff", op, map[string]any{
		"datos": map[string]any{
			"financiamiento": map[string]any{"montoBase": 1000, "porcentajeAnticipado": 30, "moneda": "USD"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Solicitar y publicar la oferta: el timebox queda Disponible.
	resp = a.do(http.MethodPost, "/api/timeboxes/"+tb.ID+"/publicacion", op, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	offer := decode[dto.OfferResponse](t, resp)

	resp = a.do(http.MethodPut, "/api/ofertas/"+offer.ID+"/publicar", op, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pub := decode[dto.PublishResponse](t, resp)
	assert.Equal(t, "Disponible", pub.Status)
	assert.True(t, pub.Offer.Published)

	// El desarrollador postula; el nombre sale del token.
	resp = a.do(http.MethodPost, "/api/ofertas/"+offer.ID+"/postulaciones", dev, dto.ApplyRequest{Role: "Solution Developer"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	post := decode[dto.PostulationResponse](t, resp)
	assert.Equal(t, "Ana", post.ApplicantName)
	assert.Equal(t, "Pendiente", post.Status)

	// El operador aprueba: se asigna el rol y se emite el anticipo.
	resp = a.do(http.MethodPut, "/api/timeboxes/"+tb.ID+"/assign-role", op, dto.ApproveRequest{PostulationID: post.ID, RoleKey: "solutionDeveloper"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	approval := decode[dto.ApprovalResponse](t, resp)
	assert.True(t, approval.Approved)
	assert.True(t, approval.PaymentEmitted)
	require.NotNil(t, approval.PaymentOrderID)
	assert.Nil(t, approval.PaymentError)

	resp = a.do(http.MethodGet, "/api/timeboxes/"+tb.ID+"/fases", dev, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	phases := decode[map[string]map[string]any](t, resp)
	team := phases["kickoff"]["teamMovilization"].(map[string]any)
	assert.Equal(t, "Ana", team["solutionDeveloper"].(map[string]any)["nombre"])
	assert.Contains(t, team, "solutionTester")
	assert.Nil(t, team["solutionTester"], "los slots vacíos se serializan como null")

	// Mis pagos: la orden de anticipo con su pago.
	resp = a.do(http.MethodGet, "/api/finanzas/mis-pagos/Ana", dev, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	mine := decode[[]dto.OrderWithPaymentsResponse](t, resp)
	require.Len(t, mine, 1)
	assert.Equal(t, *approval.PaymentOrderID, mine[0].ID)
	assert.Equal(t, "300", mine[0].Amount.String())
	require.Len(t, mine[0].Payments, 1)
	assert.Equal(t, "Anticipo", mine[0].Payments[0].Method)

	// PDF de la orden.
	resp = a.do(http.MethodGet, "/api/finanzas/ordenes/"+*approval.PaymentOrderID+"/pdf", dev, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	resp.Body.Close()

	// Status final.
	resp = a.do(http.MethodGet, "/api/timeboxes/"+tb.ID+"/status", dev, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Disponible", decode[dto.TimeboxStatusResponse](t, resp).Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización y mapeo de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_SinTokenRetorna401(t *testing.T) {
	a := newAPI(t)

	resp := a.do(http.MethodGet, "/api/timeboxes/stats", "", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_DeveloperNoPuedeMutarElCicloDeVida(t *testing.T) {
	a := newAPI(t)
	dev := token(t, "dev-1", "Ana", pkgjwt.RoleDeveloper)

	resp := a.do(http.MethodPost, "/api/timeboxes", dev, dto.CreateTimeboxRequest{TypeID: "t", ProjectID: "p"})

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_DeveloperSoloVeSusPagos(t *testing.T) {
	a := newAPI(t)
	dev := token(t, "dev-1", "Ana", pkgjwt.RoleDeveloper)

	resp := a.do(http.MethodGet, "/api/finanzas/mis-pagos/Luis", dev, nil)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_MapeoDeErrores(t *testing.T) {
	a := newAPI(t)
	op := token(t, "op-1", "Olga", pkgjwt.RoleOperator)
	tb := a.createTimebox(op)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"timebox inexistente", http.MethodGet, "/api/timeboxes/no-existe", nil, http.StatusNotFound, "NOT_FOUND"},
		{"tipo de fase desconocido", http.MethodPut, "/api/timeboxes/" + tb.ID + "/fases/deploy", map[string]any{"completada": true}, http.StatusBadRequest, "VALIDATION"},
		{"estado inválido", http.MethodPatch, "/api/timeboxes/" + tb.ID + "/estado", dto.UpdateStatusRequest{Status: "Pausado"}, http.StatusBadRequest, "VALIDATION"},
		{"planning estricto incompleto", http.MethodPut, "/api/timeboxes/" + tb.ID + "/fases/planning", map[string]any{"completada": true, "validarCompleto": true}, http.StatusConflict, "INVALID_STATE"},
		{"orden inexistente", http.MethodPatch, "/api/finanzas/ordenes/no-existe/estado", dto.UpdateOrderStatusRequest{Status: "Pagada"}, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := a.do(tc.method, tc.path, op, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}
}

func TestRouter_RechazarDosVecesEsConflicto(t *testing.T) {
	a := newAPI(t)
	op := token(t, "op-1", "Olga", pkgjwt.RoleOperator)
	dev := token(t, "dev-1", "Ana", pkgjwt.RoleDeveloper)
	tb := a.createTimebox(op)
	resp := a.do(http.MethodPost, "/api/timeboxes/"+tb.ID+"/publicacion", op, nil)
	offer := decode[dto.OfferResponse](t, resp)
	resp = a.do(http.MethodPost, "/api/ofertas/"+offer.ID+"/postulaciones", dev, dto.ApplyRequest{Role: "Tester"})
	post := decode[dto.PostulationResponse](t, resp)

	resp = a.do(http.MethodPut, "/api/postulaciones/"+post.ID+"/rechazar", op, dto.RejectRequest{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Rechazada", decode[dto.PostulationResponse](t, resp).Status)

	resp = a.do(http.MethodPut, "/api/postulaciones/"+post.ID+"/rechazar", op, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRouter_BorrarTimebox(t *testing.T) {
	a := newAPI(t)
	op := token(t, "op-1", "Olga", pkgjwt.RoleOperator)
	tb := a.createTimebox(op)

	resp := a.do(http.MethodDelete, "/api/timeboxes/"+tb.ID, op, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = a.do(http.MethodGet, "/api/timeboxes/"+tb.ID, op, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_EditarYListarTimeboxes(t *testing.T) {
	a := newAPI(t)
	op := token(t, "op-1", "Olga", pkgjwt.RoleOperator)
	dev := token(t, "dev-1", "Ana", pkgjwt.RoleDeveloper)
	tb := a.createTimebox(op)

	resp := a.do(http.MethodPut, "/api/timeboxes/"+tb.ID, op, map[string]any{"monto": 2500, "businessAnalystId": "ba-7"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.TimeboxResponse](t, resp)
	assert.Equal(t, "2500", updated.Amount.String())
	assert.Equal(t, "tipo-1", updated.TypeID)

	resp = a.do(http.MethodPut, "/api/timeboxes/"+tb.ID, dev, map[string]any{"monto": 1})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = a.do(http.MethodGet, "/api/timeboxes", dev, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.TimeboxResponse](t, resp), 1)
}

func TestRouter_ColaDeAprobacion(t *testing.T) {
	a := newAPI(t)
	op := token(t, "op-1", "Olga", pkgjwt.RoleOperator)
	dev := token(t, "dev-1", "Ana", pkgjwt.RoleDeveloper)
	tb := a.createTimebox(op)
	a.createTimebox(op)
	resp := a.do(http.MethodPost, "/api/timeboxes/"+tb.ID+"/publicacion", op, nil)
	offer := decode[dto.OfferResponse](t, resp)
	for _, role := range []string{"Solution Developer", "Solution Tester"} {
		resp = a.do(http.MethodPost, "/api/ofertas/"+offer.ID+"/postulaciones", dev, dto.ApplyRequest{Role: role})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp = a.do(http.MethodGet, "/api/timeboxes/with-postulations", op, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	queue := decode[[]dto.TimeboxPostulationsResponse](t, resp)
	require.Len(t, queue, 1)
	assert.Equal(t, tb.ID, queue[0].ID)
	assert.Equal(t, 2, queue[0].Postulations)
}

func TestRouter_SueldosDeRoles(t *testing.T) {
	a := newAPI(t)
	admin := token(t, "adm-1", "Admin", pkgjwt.RoleAdmin)
	op := token(t, "op-1", "Olga", pkgjwt.RoleOperator)
	a.store.RoleSalaries().Seed(&entity.RoleSalary{RoleID: "dev", RoleName: "Solution Developer", WeeklySalary: decimal.NewFromInt(500)})

	resp := a.do(http.MethodPut, "/api/roles/dev/sueldo", op, map[string]any{"sueldoBaseSemanal": 650})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "solo admin cambia sueldos")
	resp.Body.Close()

	resp = a.do(http.MethodPut, "/api/roles/dev/sueldo", admin, map[string]any{"sueldoBaseSemanal": 650, "moneda": "CLP"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	role := decode[dto.RoleSalaryResponse](t, resp)
	assert.Equal(t, "650", role.WeeklySalary.String())
	assert.Equal(t, "CLP", role.Currency)

	resp = a.do(http.MethodGet, "/api/roles/stats", op, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[dto.RoleSalaryStatsResponse](t, resp)
	assert.Equal(t, 1, stats.TotalRoles)
	assert.Equal(t, "2814.5", stats.MonthlyTotal.String())

	resp = a.do(http.MethodPut, "/api/roles/dev/sueldo", admin, map[string]any{"sueldoBaseSemanal": 650, "moneda": "XX"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = a.do(http.MethodGet, "/api/roles/no-existe", op, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
