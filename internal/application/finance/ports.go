package finance

import "github.com/jhoicas/timebox-api/internal/domain/entity"

// ReceiptRenderer genera el PDF de una orden de pago con sus pagos.
type ReceiptRenderer interface {
	RenderOrderReceipt(order *entity.PaymentOrder, payments []*entity.Payment) ([]byte, error)
}
