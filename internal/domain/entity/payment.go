package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de pago.
const (
	OrderPendiente = "Pendiente"
	OrderAprobada  = "Aprobada"
	OrderPagada    = "Pagada"
	OrderRechazada = "Rechazada"
)

// Métodos de pago.
const (
	PaymentMethodAnticipo    = "Anticipo"    // generado al asignar un rol; no cambia la orden
	PaymentMethodComprobante = "Comprobante" // comprobante subido; cierra la orden (Pagada)
)

// ValidOrderStatus informa si s es un estado de orden conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPendiente, OrderAprobada, OrderPagada, OrderRechazada:
		return true
	}
	return false
}

// PaymentOrder instrucción financiera pendiente de ejecución.
type PaymentOrder struct {
	ID        string
	PayeeID   string // developer_id o nombre del desarrollador
	Amount    decimal.Decimal
	Currency  string
	Concept   string
	IssueDate time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Payment registro de pago asociado a una orden (append-only).
type Payment struct {
	ID         string
	OrderID    string
	PayeeID    string
	Amount     decimal.Decimal
	Currency   string
	Method     string
	Reference  string
	PaidAt     time.Time
	Attachment *AttachmentRef
	CreatedAt  time.Time
}

// OrderWithPayments orden con sus pagos (vista "mis pagos").
type OrderWithPayments struct {
	Order    *PaymentOrder
	Payments []*Payment
}
