package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
)

var _ repository.PaymentOrderRepository = (*PaymentOrderRepo)(nil)

// PaymentOrderRepo órdenes de pago en memoria.
type PaymentOrderRepo struct{ s *Store }

// PaymentOrders devuelve el repositorio de órdenes.
func (s *Store) PaymentOrders() *PaymentOrderRepo { return &PaymentOrderRepo{s: s} }

func (r *PaymentOrderRepo) Create(ctx context.Context, o *entity.PaymentOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("payment_orders.create"); err != nil {
		return err
	}
	o.ID = newID(o.ID)
	now := r.s.now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
	cp := *o
	r.s.orders[o.ID] = &cp
	return nil
}

func (r *PaymentOrderRepo) GetByID(ctx context.Context, id string) (*entity.PaymentOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *PaymentOrderRepo) List(ctx context.Context, f repository.PaymentOrderFilter) ([]*entity.PaymentOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.PaymentOrder
	for _, id := range sortedKeys(r.s.orders) {
		o := r.s.orders[id]
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.PayeeID != "" && o.PayeeID != f.PayeeID {
			continue
		}
		cp := *o
		list = append(list, &cp)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *PaymentOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("payment_orders.update_status"); err != nil {
		return err
	}
	o, ok := r.s.orders[id]
	if !ok {
		return domain.NotFound("orden de pago %s no encontrada", id)
	}
	o.Status = status
	o.UpdatedAt = r.s.now()
	return nil
}

// Count número total de órdenes (para tests).
func (r *PaymentOrderRepo) Count() int {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.orders)
}

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo pagos en memoria (append-only).
type PaymentRepo struct{ s *Store }

// Payments devuelve el repositorio de pagos.
func (s *Store) Payments() *PaymentRepo { return &PaymentRepo{s: s} }

func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("payments.create"); err != nil {
		return err
	}
	p.ID = newID(p.ID)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.s.now()
	}
	cp := *p
	r.s.payments = append(r.s.payments, &cp)
	return nil
}

func (r *PaymentRepo) ListByOrders(ctx context.Context, orderIDs []string) ([]*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := make(map[string]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	var list []*entity.Payment
	for _, p := range r.s.payments {
		if wanted[p.OrderID] {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}
