package publication

import (
	"context"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

// AdvanceEmitter emite la orden de pago del anticipo al aprobar una postulación.
// Devuelve nil, nil cuando el financiamiento está incompleto (no hay nada que emitir).
type AdvanceEmitter interface {
	EmitAdvance(ctx context.Context, timeboxID, roleKey, payee string, financing *entity.Financing) (*entity.PaymentOrder, error)
}
