package lifecycle

import (
	"context"

	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
	"github.com/jhoicas/timebox-api/internal/domain/timebox"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

// Transition resultado de evaluar una regla de progresión.
type Transition struct {
	From           entity.TimeboxStatus
	To             entity.TimeboxStatus
	Changed        bool
	KickoffCreated bool
}

// ProgressionEngine aplica las reglas automáticas de estado:
// planning completado pasa el timebox a En Ejecucion (y asegura el kickoff);
// oferta publicada lo deja Disponible.
type ProgressionEngine struct {
	timeboxes repository.TimeboxRepository
	phases    repository.PhaseRepository
	log       *logger.Logger
}

// NewProgressionEngine construye el motor.
func NewProgressionEngine(timeboxes repository.TimeboxRepository, phases repository.PhaseRepository, log *logger.Logger) *ProgressionEngine {
	return &ProgressionEngine{timeboxes: timeboxes, phases: phases, log: log.Component("progression")}
}

// OnPhaseSaved evalúa la regla del planning. Otras fases no mueven el estado.
// tb se actualiza en memoria con el estado resultante.
func (e *ProgressionEngine) OnPhaseSaved(ctx context.Context, tb *entity.Timebox, ph entity.Phase) (Transition, error) {
	noop := Transition{From: tb.Status, To: tb.Status}
	if ph.Type() != entity.PhasePlanning || !ph.IsCompleted() {
		return noop, nil
	}
	return e.PlanningCompleted(ctx, tb)
}

// PlanningCompleted crea el kickoff si falta y mueve el estado a En Ejecucion. Idempotente.
func (e *ProgressionEngine) PlanningCompleted(ctx context.Context, tb *entity.Timebox) (Transition, error) {
	tr := Transition{From: tb.Status, To: tb.Status}

	created, err := e.phases.CreateKickoffIfAbsent(ctx, tb.ID)
	if err != nil {
		return tr, domain.Persistence("crear kickoff", err)
	}
	tr.KickoffCreated = created

	next, changed := timebox.OnPlanningCompleted(tb.Status)
	if changed {
		if err := e.timeboxes.UpdateStatus(ctx, tb.ID, next); err != nil {
			return tr, domain.Persistence("actualizar estado", err)
		}
		tb.Status = next
		tr.To, tr.Changed = next, true
	}
	e.log.Info().
		Str("timebox_id", tb.ID).
		Str("from", string(tr.From)).
		Str("to", string(tr.To)).
		Bool("kickoff_created", created).
		Msg("planning completado")
	return tr, nil
}

// OfferPublished fuerza el estado Disponible.
func (e *ProgressionEngine) OfferPublished(ctx context.Context, tb *entity.Timebox) (Transition, error) {
	tr := Transition{From: tb.Status, To: tb.Status}
	next, changed := timebox.OnOfferPublished(tb.Status)
	if !changed {
		return tr, nil
	}
	if err := e.timeboxes.UpdateStatus(ctx, tb.ID, next); err != nil {
		return tr, domain.Persistence("actualizar estado", err)
	}
	tb.Status = next
	tr.To, tr.Changed = next, true
	e.log.Info().
		Str("timebox_id", tb.ID).
		Str("from", string(tr.From)).
		Str("to", string(tr.To)).
		Msg("oferta publicada")
	return tr, nil
}
