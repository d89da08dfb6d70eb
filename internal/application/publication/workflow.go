// Package publication implementa el flujo de oferta y postulación de un timebox:
// solicitar y publicar la oferta, postular, aprobar (asignando el rol en el kickoff
// y emitiendo el anticipo) y rechazar.
package publication

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/timebox-api/internal/application/lifecycle"
	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
	"github.com/jhoicas/timebox-api/internal/domain/timebox"
	"github.com/jhoicas/timebox-api/pkg/keylock"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

var _ lifecycle.OfferRequester = (*Workflow)(nil)

// Workflow casos de uso de publicación y postulación.
type Workflow struct {
	timeboxes    repository.TimeboxRepository
	offers       repository.PublicationRepository
	postulations repository.PostulationRepository
	store        *lifecycle.PhaseStore
	engine       *lifecycle.ProgressionEngine
	emitter      AdvanceEmitter
	locks        *keylock.KeyedMutex
	log          *logger.Logger
	now          func() time.Time
}

// NewWorkflow construye el flujo.
func NewWorkflow(
	timeboxes repository.TimeboxRepository,
	offers repository.PublicationRepository,
	postulations repository.PostulationRepository,
	store *lifecycle.PhaseStore,
	engine *lifecycle.ProgressionEngine,
	emitter AdvanceEmitter,
	locks *keylock.KeyedMutex,
	log *logger.Logger,
) *Workflow {
	return &Workflow{
		timeboxes:    timeboxes,
		offers:       offers,
		postulations: postulations,
		store:        store,
		engine:       engine,
		emitter:      emitter,
		locks:        locks,
		log:          log.Component("publication"),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// ApprovalResult resultado de aprobar. PaymentError no revierte la aprobación.
// OrderCreated con PaymentEmitted=false indica una orden de anticipo sin su pago.
type ApprovalResult struct {
	Approved       bool
	PaymentEmitted bool
	OrderCreated   bool
	PaymentOrderID string
	PaymentError   error
}

func (w *Workflow) getTimebox(ctx context.Context, id string) (*entity.Timebox, error) {
	if id == "" {
		return nil, domain.Validation("timebox id requerido")
	}
	tb, err := w.timeboxes.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("obtener timebox", err)
	}
	if tb == nil {
		return nil, domain.NotFound("timebox %s no encontrado", id)
	}
	return tb, nil
}

func (w *Workflow) getOffer(ctx context.Context, id string) (*entity.PublicationOffer, error) {
	if id == "" {
		return nil, domain.Validation("oferta id requerido")
	}
	offer, err := w.offers.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("obtener oferta", err)
	}
	if offer == nil {
		return nil, domain.NotFound("oferta %s no encontrada", id)
	}
	return offer, nil
}

// RequestPublication crea la oferta del timebox (o la reutiliza) marcándola como solicitada.
func (w *Workflow) RequestPublication(ctx context.Context, timeboxID string) (*entity.PublicationOffer, error) {
	if _, err := w.getTimebox(ctx, timeboxID); err != nil {
		return nil, err
	}
	offer, err := w.offers.GetByTimebox(ctx, timeboxID)
	if err != nil {
		return nil, domain.Persistence("obtener oferta", err)
	}
	if offer == nil {
		offer = &entity.PublicationOffer{TimeboxID: timeboxID}
	}
	offer.Requested = true
	if err := w.offers.Upsert(ctx, offer); err != nil {
		return nil, domain.Persistence("guardar oferta", err)
	}
	w.log.Info().Str("timebox_id", timeboxID).Str("offer_id", offer.ID).Msg("publicación solicitada")
	return offer, nil
}

// Publish publica la oferta y deja el timebox Disponible.
func (w *Workflow) Publish(ctx context.Context, offerID string) (*entity.PublicationOffer, lifecycle.Transition, error) {
	offer, err := w.getOffer(ctx, offerID)
	if err != nil {
		return nil, lifecycle.Transition{}, err
	}
	unlock := w.locks.Lock(offer.TimeboxID)
	defer unlock()

	tb, err := w.getTimebox(ctx, offer.TimeboxID)
	if err != nil {
		return nil, lifecycle.Transition{}, err
	}
	offer.Published = true
	now := w.now()
	offer.PublicationDate = &now
	if err := w.offers.Upsert(ctx, offer); err != nil {
		return nil, lifecycle.Transition{}, domain.Persistence("publicar oferta", err)
	}
	tr, err := w.engine.OfferPublished(ctx, tb)
	if err != nil {
		return nil, tr, err
	}
	return offer, tr, nil
}

// ListOffers ofertas del timebox.
func (w *Workflow) ListOffers(ctx context.Context, timeboxID string) ([]*entity.PublicationOffer, error) {
	if _, err := w.getTimebox(ctx, timeboxID); err != nil {
		return nil, err
	}
	list, err := w.offers.ListByTimebox(ctx, timeboxID)
	if err != nil {
		return nil, domain.Persistence("listar ofertas", err)
	}
	return list, nil
}

// Apply registra una postulación Pendiente. Se permiten postulaciones repetidas.
func (w *Workflow) Apply(ctx context.Context, offerID, role, applicantName string) (*entity.Postulation, error) {
	role, applicantName = strings.TrimSpace(role), strings.TrimSpace(applicantName)
	if role == "" || applicantName == "" {
		return nil, domain.Validation("rol y nombre del postulante son requeridos")
	}
	if _, err := w.getOffer(ctx, offerID); err != nil {
		return nil, err
	}
	p := &entity.Postulation{
		OfferID:         offerID,
		Role:            role,
		ApplicantName:   applicantName,
		ApplicationDate: w.now(),
		Status:          entity.PostulationPendiente,
	}
	if err := w.postulations.Create(ctx, p); err != nil {
		return nil, domain.Persistence("crear postulación", err)
	}
	return p, nil
}

// ListPostulations postulaciones de la oferta, incluidas las repetidas.
func (w *Workflow) ListPostulations(ctx context.Context, offerID string) ([]*entity.Postulation, error) {
	if _, err := w.getOffer(ctx, offerID); err != nil {
		return nil, err
	}
	list, err := w.postulations.ListByOffer(ctx, offerID)
	if err != nil {
		return nil, domain.Persistence("listar postulaciones", err)
	}
	return list, nil
}

// Approve aprueba la postulación, escribe al postulante en el slot roleKey del kickoff
// y emite el anticipo. Si la emisión falla la aprobación se mantiene y el error viaja en el resultado.
// No cambia el estado del timebox.
func (w *Workflow) Approve(ctx context.Context, timeboxID, postulationID, roleKey, applicantName string) (*ApprovalResult, error) {
	if timeboxID == "" || postulationID == "" {
		return nil, domain.Validation("timebox y postulación son requeridos")
	}
	unlock := w.locks.Lock(timeboxID)
	defer unlock()

	post, err := w.postulations.GetByID(ctx, postulationID)
	if err != nil {
		return nil, domain.Persistence("obtener postulación", err)
	}
	if post == nil {
		return nil, domain.NotFound("postulación %s no encontrada", postulationID)
	}
	offer, err := w.offers.GetByID(ctx, post.OfferID)
	if err != nil {
		return nil, domain.Persistence("obtener oferta", err)
	}
	if offer == nil || offer.TimeboxID != timeboxID {
		return nil, domain.NotFound("postulación %s no pertenece al timebox %s", postulationID, timeboxID)
	}
	if post.Status != entity.PostulationPendiente {
		return nil, domain.InvalidState("la postulación está %s", post.Status)
	}
	role, ok := timebox.ParseTeamRole(roleKey)
	if !ok {
		return nil, domain.Validation("rol desconocido: %q", roleKey)
	}
	name := strings.TrimSpace(applicantName)
	if name == "" {
		name = post.ApplicantName
	}
	siblings, err := w.postulations.ListByOffer(ctx, offer.ID)
	if err != nil {
		return nil, domain.Persistence("listar postulaciones", err)
	}
	for _, other := range siblings {
		if other.ID != post.ID && other.Status == entity.PostulationAprobada && sameRole(other.Role, post.Role) {
			return nil, domain.InvalidState("el rol %s ya tiene una postulación aprobada (%s)", post.Role, other.ID)
		}
	}

	now := w.now()
	post.Status = entity.PostulationAprobada
	post.Assigned = true
	post.AssignmentDate = &now
	if err := w.postulations.Update(ctx, post); err != nil {
		return nil, domain.Persistence("aprobar postulación", err)
	}

	// Lectura-modificación-escritura del mapa completo: los demás slots se conservan.
	phases, err := w.store.Load(ctx, timeboxID)
	if err != nil {
		return nil, err
	}
	kickoff := phases.Kickoff
	if kickoff == nil {
		kickoff = &entity.KickoffPhase{TimeboxID: timeboxID}
	}
	kickoff.Team.Assign(role, entity.PersonRef{Name: name})
	if _, err := w.store.Upsert(ctx, kickoff); err != nil {
		return nil, err
	}

	res := &ApprovalResult{Approved: true}
	order, err := w.emitter.EmitAdvance(ctx, timeboxID, string(role), name, kickoff.Financing)
	if order != nil {
		res.OrderCreated = true
		res.PaymentOrderID = order.ID
	}
	if err != nil {
		res.PaymentError = err
		w.log.Error().Err(err).
			Str("timebox_id", timeboxID).
			Str("postulation_id", postulationID).
			Str("role", string(role)).
			Bool("order_created", res.OrderCreated).
			Msg("no se pudo emitir el anticipo; la aprobación se mantiene")
	} else {
		res.PaymentEmitted = order != nil
	}
	w.log.Info().
		Str("timebox_id", timeboxID).
		Str("postulation_id", postulationID).
		Str("role", string(role)).
		Bool("payment_emitted", res.PaymentEmitted).
		Msg("postulación aprobada")
	return res, nil
}

// sameRole compara roles de postulación por slot del equipo, o por etiqueta sin tildes.
func sameRole(a, b string) bool {
	ra, okA := timebox.ParseTeamRole(a)
	rb, okB := timebox.ParseTeamRole(b)
	if okA && okB {
		return ra == rb
	}
	return timebox.Fold(a) == timebox.Fold(b)
}

// Reject rechaza una postulación Pendiente. El rechazo es terminal.
func (w *Workflow) Reject(ctx context.Context, postulationID string, reason *string) (*entity.Postulation, error) {
	if postulationID == "" {
		return nil, domain.Validation("postulación id requerido")
	}
	post, err := w.postulations.GetByID(ctx, postulationID)
	if err != nil {
		return nil, domain.Persistence("obtener postulación", err)
	}
	if post == nil {
		return nil, domain.NotFound("postulación %s no encontrada", postulationID)
	}
	if post.Status != entity.PostulationPendiente {
		return nil, domain.InvalidState("la postulación está %s", post.Status)
	}
	now := w.now()
	post.Status = entity.PostulationRechazada
	post.RejectionReason = reason
	post.RejectionDate = &now
	if err := w.postulations.Update(ctx, post); err != nil {
		return nil, domain.Persistence("rechazar postulación", err)
	}
	return post, nil
}
