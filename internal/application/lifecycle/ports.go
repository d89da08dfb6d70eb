package lifecycle

import (
	"context"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

// OfferRequester abre y publica la oferta de un timebox cuando el guardado de una fase lo pide.
// Lo implementa el flujo de publicación.
type OfferRequester interface {
	RequestPublication(ctx context.Context, timeboxID string) (*entity.PublicationOffer, error)
	Publish(ctx context.Context, offerID string) (*entity.PublicationOffer, Transition, error)
}
