package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

// CreateOrderRequest body para POST /api/finanzas/ordenes.
type CreateOrderRequest struct {
	PayeeID  string          `json:"developerId"`
	Amount   decimal.Decimal `json:"monto"`
	Currency string          `json:"moneda"`
	Concept  string          `json:"concepto"`
}

// UpdateOrderStatusRequest body para PATCH /api/finanzas/ordenes/:id/estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"estado"`
}

// RegisterReceiptRequest body para POST /api/finanzas/ordenes/:id/comprobante.
// El archivo ya fue subido al servicio de archivos; aquí solo llega su referencia.
type RegisterReceiptRequest struct {
	Reference string `json:"referencia"`
	FileID    string `json:"archivoId"`
	FileURL   string `json:"archivoUrl"`
	FileType  string `json:"archivoTipo"`
	FileSize  int64  `json:"archivoSize"`
}

// PaymentOrderResponse orden de pago.
type PaymentOrderResponse struct {
	ID        string          `json:"id"`
	PayeeID   string          `json:"developerId"`
	Amount    decimal.Decimal `json:"monto"`
	Currency  string          `json:"moneda"`
	Concept   string          `json:"concepto"`
	IssueDate string          `json:"fechaEmision"`
	Status    string          `json:"estado"`
}

// PaymentResponse pago.
type PaymentResponse struct {
	ID         string                `json:"id"`
	OrderID    string                `json:"ordenId"`
	PayeeID    string                `json:"developerId"`
	Amount     decimal.Decimal       `json:"monto"`
	Currency   string                `json:"moneda"`
	Method     string                `json:"metodo"`
	Reference  string                `json:"referencia"`
	PaidAt     time.Time             `json:"fechaPago"`
	Attachment *entity.AttachmentRef `json:"archivo,omitempty"`
}

// OrderWithPaymentsResponse orden con sus pagos.
type OrderWithPaymentsResponse struct {
	PaymentOrderResponse
	Payments []PaymentResponse `json:"pagos"`
}

func NewPaymentOrderResponse(o *entity.PaymentOrder) PaymentOrderResponse {
	return PaymentOrderResponse{
		ID: o.ID, PayeeID: o.PayeeID, Amount: o.Amount, Currency: o.Currency, Concept: o.Concept,
		IssueDate: o.IssueDate.Format(DateLayout), Status: o.Status,
	}
}

func NewPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID: p.ID, OrderID: p.OrderID, PayeeID: p.PayeeID, Amount: p.Amount, Currency: p.Currency,
		Method: p.Method, Reference: p.Reference, PaidAt: p.PaidAt, Attachment: p.Attachment,
	}
}

func NewOrderWithPaymentsResponse(v *entity.OrderWithPayments) OrderWithPaymentsResponse {
	out := OrderWithPaymentsResponse{PaymentOrderResponse: NewPaymentOrderResponse(v.Order), Payments: []PaymentResponse{}}
	for _, p := range v.Payments {
		out.Payments = append(out.Payments, NewPaymentResponse(p))
	}
	return out
}
