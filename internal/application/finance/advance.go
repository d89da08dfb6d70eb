// Package finance emite anticipos y administra órdenes de pago y comprobantes.
package finance

import (
	"context"
	"time"

	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/compensation"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

// AdvanceEmitter registra la orden de pago y el pago de tipo Anticipo al asignar un rol.
// No es idempotente: dos aprobaciones producen dos órdenes.
type AdvanceEmitter struct {
	orders   repository.PaymentOrderRepository
	payments repository.PaymentRepository
	currency string
	log      *logger.Logger
	now      func() time.Time
}

// NewAdvanceEmitter construye el emisor.
func NewAdvanceEmitter(orders repository.PaymentOrderRepository, payments repository.PaymentRepository, log *logger.Logger) *AdvanceEmitter {
	return &AdvanceEmitter{
		orders:   orders,
		payments: payments,
		log:      log.Component("advance"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithDefaultCurrency moneda para financiamientos que no la declaran.
func (e *AdvanceEmitter) WithDefaultCurrency(currency string) *AdvanceEmitter {
	e.currency = currency
	return e
}

// EmitAdvance devuelve nil, nil si el financiamiento no tiene monto base y porcentaje.
func (e *AdvanceEmitter) EmitAdvance(ctx context.Context, timeboxID, roleKey, payee string, financing *entity.Financing) (*entity.PaymentOrder, error) {
	if !financing.Complete() {
		e.log.Debug().Str("timebox_id", timeboxID).Msg("financiamiento incompleto, sin anticipo")
		return nil, nil
	}
	now := e.now()
	currency := financing.Currency
	if currency == "" {
		currency = e.currency
	}
	amount := compensation.AdvanceAmount(*financing.BaseAmount, *financing.AdvancePercentage)
	order := &entity.PaymentOrder{
		PayeeID:   payee,
		Amount:    amount,
		Currency:  currency,
		Concept:   compensation.AdvanceConcept(*financing.AdvancePercentage, timeboxID, roleKey),
		IssueDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Status:    entity.OrderPendiente,
	}
	if err := e.orders.Create(ctx, order); err != nil {
		return nil, domain.Persistence("crear orden de anticipo", err)
	}
	payment := &entity.Payment{
		OrderID:   order.ID,
		PayeeID:   payee,
		Amount:    amount,
		Currency:  currency,
		Method:    entity.PaymentMethodAnticipo,
		Reference: compensation.AdvanceReference(timeboxID, roleKey),
		PaidAt:    now,
	}
	if err := e.payments.Create(ctx, payment); err != nil {
		return order, domain.Persistence("registrar pago de anticipo", err)
	}
	e.log.Info().
		Str("timebox_id", timeboxID).
		Str("order_id", order.ID).
		Str("amount", amount.StringFixed(2)).
		Str("currency", order.Currency).
		Msg("anticipo emitido")
	return order, nil
}
