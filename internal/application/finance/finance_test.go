package finance_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/application/finance"
	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/infrastructure/memory"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

type fakeRenderer struct {
	order    *entity.PaymentOrder
	payments []*entity.Payment
	err      error
}

func (f *fakeRenderer) RenderOrderReceipt(order *entity.PaymentOrder, payments []*entity.Payment) ([]byte, error) {
	f.order, f.payments = order, payments
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4"), nil
}

func financing(base, pct int64) *entity.Financing {
	b, p := decimal.NewFromInt(base), decimal.NewFromInt(pct)
	return &entity.Financing{BaseAmount: &b, AdvancePercentage: &p, Currency: "COP"}
}

func TestEmitAdvance_CreaOrdenYPagoDeAnticipo(t *testing.T) {
	st := memory.NewStore()
	em := finance.NewAdvanceEmitter(st.PaymentOrders(), st.Payments(), logger.Nop())

	order, err := em.EmitAdvance(context.Background(), "tb-1", "solutionTester", "dev-7", financing(2500, 10))

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.True(t, decimal.RequireFromString("250").Equal(order.Amount))
	assert.Equal(t, "COP", order.Currency)
	assert.Equal(t, "Advance 10% - Timebox tb-1 - Role solutionTester", order.Concept)
	assert.Equal(t, 0, order.IssueDate.Hour())
	payments, err := st.Payments().ListByOrders(context.Background(), []string{order.ID})
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "TB-tb-1-solutionTester", payments[0].Reference)
	assert.Equal(t, "dev-7", payments[0].PayeeID)
}

func TestEmitAdvance_MonedaPorDefecto(t *testing.T) {
	st := memory.NewStore()
	em := finance.NewAdvanceEmitter(st.PaymentOrders(), st.Payments(), logger.Nop()).WithDefaultCurrency("USD")
	f := financing(1000, 30)
	f.Currency = ""

	order, err := em.EmitAdvance(context.Background(), "tb-1", "solutionDeveloper", "dev-1", f)

	require.NoError(t, err)
	assert.Equal(t, "USD", order.Currency)
	payments, err := st.Payments().ListByOrders(context.Background(), []string{order.ID})
	require.NoError(t, err)
	assert.Equal(t, "USD", payments[0].Currency)
}

func TestEmitAdvance_FinanciamientoIncompleto(t *testing.T) {
	st := memory.NewStore()
	em := finance.NewAdvanceEmitter(st.PaymentOrders(), st.Payments(), logger.Nop())
	b := decimal.NewFromInt(1000)

	for _, f := range []*entity.Financing{nil, {}, {BaseAmount: &b}} {
		order, err := em.EmitAdvance(context.Background(), "tb-1", "solutionTester", "dev-7", f)
		require.NoError(t, err)
		assert.Nil(t, order)
	}
	assert.Equal(t, 0, st.PaymentOrders().Count())
}

func newOrders(t *testing.T) (*memory.Store, *finance.OrderService, *fakeRenderer) {
	t.Helper()
	st := memory.NewStore()
	r := &fakeRenderer{}
	return st, finance.NewOrderService(st.PaymentOrders(), st.Payments(), r, "USD", logger.Nop()), r
}

func TestCreateOrder_Validaciones(t *testing.T) {
	_, svc, _ := newOrders(t)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{PayeeID: "dev-1", Concept: "x", Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.CreateOrder(ctx, dto.CreateOrderRequest{Concept: "x", Amount: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	order, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{PayeeID: "dev-1", Concept: "Bono", Amount: decimal.RequireFromString("10.555")})
	require.NoError(t, err)
	assert.Equal(t, "USD", order.Currency)
	assert.Equal(t, entity.OrderPendiente, order.Status)
	assert.Equal(t, "10.56", order.Amount.StringFixed(2))
}

func TestListOrders_FiltraPorEstadoYDesarrollador(t *testing.T) {
	_, svc, _ := newOrders(t)
	ctx := context.Background()
	a, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{PayeeID: "dev-1", Concept: "a", Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, dto.CreateOrderRequest{PayeeID: "dev-2", Concept: "b", Amount: decimal.NewFromInt(2)})
	require.NoError(t, err)
	_, err = svc.UpdateOrderStatus(ctx, a.ID, entity.OrderAprobada)
	require.NoError(t, err)

	approved, err := svc.ListOrders(ctx, entity.OrderAprobada, "")
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, a.ID, approved[0].ID)

	mine, err := svc.ListOrders(ctx, "", "dev-2")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "dev-2", mine[0].PayeeID)

	_, err = svc.ListOrders(ctx, "Cancelada", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateOrderStatus_Errores(t *testing.T) {
	_, svc, _ := newOrders(t)
	ctx := context.Background()

	_, err := svc.UpdateOrderStatus(ctx, "no-existe", entity.OrderPagada)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.UpdateOrderStatus(ctx, "no-existe", "otra")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegisterReceipt_CierraLaOrden(t *testing.T) {
	st, svc, _ := newOrders(t)
	ctx := context.Background()
	order, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{PayeeID: "dev-1", Concept: "a", Amount: decimal.NewFromInt(300)})
	require.NoError(t, err)

	payment, err := svc.RegisterReceipt(ctx, order.ID, dto.RegisterReceiptRequest{
		Reference: "TRX-99", FileID: "f-1", FileURL: "https://files/f-1.pdf", FileType: "application/pdf", FileSize: 2048,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodComprobante, payment.Method)
	require.NotNil(t, payment.Attachment)
	assert.Equal(t, "https://files/f-1.pdf", payment.Attachment.URL)
	stored, err := st.PaymentOrders().GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPagada, stored.Status)
}

func TestRegisterReceipt_RequiereReferenciaYArchivo(t *testing.T) {
	_, svc, _ := newOrders(t)
	ctx := context.Background()

	_, err := svc.RegisterReceipt(ctx, "o-1", dto.RegisterReceiptRequest{FileURL: "u"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.RegisterReceipt(ctx, "o-1", dto.RegisterReceiptRequest{Reference: "r"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.RegisterReceipt(ctx, "o-1", dto.RegisterReceiptRequest{Reference: "r", FileURL: "u"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMyPayments_AgrupaPagosPorOrden(t *testing.T) {
	st := memory.NewStore()
	em := finance.NewAdvanceEmitter(st.PaymentOrders(), st.Payments(), logger.Nop())
	svc := finance.NewOrderService(st.PaymentOrders(), st.Payments(), nil, "USD", logger.Nop())
	ctx := context.Background()
	_, err := em.EmitAdvance(ctx, "tb-1", "solutionDeveloper", "Ana", financing(1000, 30))
	require.NoError(t, err)
	_, err = em.EmitAdvance(ctx, "tb-2", "solutionTester", "Ana", financing(500, 50))
	require.NoError(t, err)
	_, err = em.EmitAdvance(ctx, "tb-2", "solutionDeveloper", "Luis", financing(500, 50))
	require.NoError(t, err)

	mine, err := svc.MyPayments(ctx, "Ana")

	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, v := range mine {
		assert.Equal(t, "Ana", v.Order.PayeeID)
		require.Len(t, v.Payments, 1)
		assert.Equal(t, v.Order.ID, v.Payments[0].OrderID)
	}
	_, err = svc.MyPayments(ctx, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrderReceiptPDF(t *testing.T) {
	_, svc, r := newOrders(t)
	ctx := context.Background()
	order, err := svc.CreateOrder(ctx, dto.CreateOrderRequest{PayeeID: "dev-1", Concept: "a", Amount: decimal.NewFromInt(300)})
	require.NoError(t, err)

	data, name, err := svc.OrderReceiptPDF(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
	assert.Equal(t, "orden-pago-"+order.ID+".pdf", name)
	assert.Equal(t, order.ID, r.order.ID)

	r.err = errors.New("fuente no disponible")
	_, _, err = svc.OrderReceiptPDF(ctx, order.ID)
	assert.Error(t, err)
}
