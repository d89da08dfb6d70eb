package finance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

// OrderService administración de órdenes de pago.
type OrderService struct {
	orders          repository.PaymentOrderRepository
	payments        repository.PaymentRepository
	renderer        ReceiptRenderer
	defaultCurrency string
	log             *logger.Logger
	now             func() time.Time
}

// NewOrderService construye el servicio.
func NewOrderService(
	orders repository.PaymentOrderRepository,
	payments repository.PaymentRepository,
	renderer ReceiptRenderer,
	defaultCurrency string,
	log *logger.Logger,
) *OrderService {
	return &OrderService{
		orders:          orders,
		payments:        payments,
		renderer:        renderer,
		defaultCurrency: defaultCurrency,
		log:             log.Component("orders"),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// ListOrders lista órdenes filtrando por estado y/o desarrollador.
func (s *OrderService) ListOrders(ctx context.Context, status, payeeID string) ([]*entity.PaymentOrder, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, domain.Validation("estado de orden inválido: %q", status)
	}
	list, err := s.orders.List(ctx, repository.PaymentOrderFilter{Status: status, PayeeID: payeeID})
	if err != nil {
		return nil, domain.Persistence("listar órdenes", err)
	}
	return list, nil
}

// CreateOrder crea una orden Pendiente emitida hoy.
func (s *OrderService) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*entity.PaymentOrder, error) {
	if strings.TrimSpace(in.PayeeID) == "" || strings.TrimSpace(in.Concept) == "" {
		return nil, domain.Validation("developerId y concepto son requeridos")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.Validation("el monto debe ser mayor a cero")
	}
	currency := in.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}
	now := s.now()
	order := &entity.PaymentOrder{
		PayeeID:   strings.TrimSpace(in.PayeeID),
		Amount:    in.Amount.Round(2),
		Currency:  currency,
		Concept:   strings.TrimSpace(in.Concept),
		IssueDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Status:    entity.OrderPendiente,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, domain.Persistence("crear orden", err)
	}
	return order, nil
}

func (s *OrderService) getOrder(ctx context.Context, id string) (*entity.PaymentOrder, error) {
	if id == "" {
		return nil, domain.Validation("orden id requerido")
	}
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("obtener orden", err)
	}
	if order == nil {
		return nil, domain.NotFound("orden de pago %s no encontrada", id)
	}
	return order, nil
}

// UpdateOrderStatus cambia el estado de la orden.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id, status string) (*entity.PaymentOrder, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.Validation("estado de orden inválido: %q", status)
	}
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, domain.Persistence("actualizar orden", err)
	}
	order.Status = status
	return order, nil
}

// RegisterReceipt registra el comprobante (pago de tipo Comprobante) y cierra la orden como Pagada.
func (s *OrderService) RegisterReceipt(ctx context.Context, orderID string, in dto.RegisterReceiptRequest) (*entity.Payment, error) {
	if strings.TrimSpace(in.Reference) == "" {
		return nil, domain.Validation("la referencia es requerida")
	}
	if strings.TrimSpace(in.FileURL) == "" {
		return nil, domain.Validation("el archivo del comprobante es requerido")
	}
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	payment := &entity.Payment{
		OrderID:   order.ID,
		PayeeID:   order.PayeeID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Method:    entity.PaymentMethodComprobante,
		Reference: strings.TrimSpace(in.Reference),
		PaidAt:    s.now(),
		Attachment: &entity.AttachmentRef{
			ID:          in.FileID,
			URL:         in.FileURL,
			ContentType: in.FileType,
			Size:        in.FileSize,
		},
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, domain.Persistence("registrar comprobante", err)
	}
	if err := s.orders.UpdateStatus(ctx, order.ID, entity.OrderPagada); err != nil {
		return nil, domain.Persistence("cerrar orden", err)
	}
	s.log.Info().Str("order_id", order.ID).Str("reference", payment.Reference).Msg("comprobante registrado")
	return payment, nil
}

// MyPayments órdenes del desarrollador con sus pagos.
func (s *OrderService) MyPayments(ctx context.Context, payeeID string) ([]*entity.OrderWithPayments, error) {
	if payeeID == "" {
		return nil, domain.Validation("developerId requerido")
	}
	orders, err := s.orders.List(ctx, repository.PaymentOrderFilter{PayeeID: payeeID})
	if err != nil {
		return nil, domain.Persistence("listar órdenes", err)
	}
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	payments, err := s.payments.ListByOrders(ctx, ids)
	if err != nil {
		return nil, domain.Persistence("listar pagos", err)
	}
	byOrder := make(map[string][]*entity.Payment, len(orders))
	for _, p := range payments {
		byOrder[p.OrderID] = append(byOrder[p.OrderID], p)
	}
	out := make([]*entity.OrderWithPayments, 0, len(orders))
	for _, o := range orders {
		out = append(out, &entity.OrderWithPayments{Order: o, Payments: byOrder[o.ID]})
	}
	return out, nil
}

// OrderReceiptPDF genera el PDF de la orden. Devuelve el contenido y el nombre de archivo sugerido.
func (s *OrderService) OrderReceiptPDF(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	payments, err := s.payments.ListByOrders(ctx, []string{order.ID})
	if err != nil {
		return nil, "", domain.Persistence("listar pagos", err)
	}
	if s.renderer == nil {
		return nil, "", fmt.Errorf("generador de PDF no configurado")
	}
	data, err := s.renderer.RenderOrderReceipt(order, payments)
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf orden %s: %w", order.ID, err)
	}
	return data, fmt.Sprintf("orden-pago-%s.pdf", order.ID), nil
}
