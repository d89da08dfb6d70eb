package repository

import (
	"context"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

// PaymentOrderFilter filtros opcionales del listado de órdenes.
type PaymentOrderFilter struct {
	Status  string
	PayeeID string
}

// PaymentOrderRepository persiste órdenes de pago. Solo el estado es mutable.
type PaymentOrderRepository interface {
	Create(ctx context.Context, o *entity.PaymentOrder) error
	GetByID(ctx context.Context, id string) (*entity.PaymentOrder, error)
	List(ctx context.Context, f PaymentOrderFilter) ([]*entity.PaymentOrder, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// PaymentRepository persiste pagos (append-only).
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	ListByOrders(ctx context.Context, orderIDs []string) ([]*entity.Payment, error)
}
