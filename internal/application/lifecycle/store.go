package lifecycle

import (
	"context"
	"fmt"

	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/compensation"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
)

// PhaseStore guarda y carga las fases de un timebox: una por tipo.
// En la carga resuelve los duplicados heredados eligiendo la fila más completa.
type PhaseStore struct {
	phases repository.PhaseRepository
}

// NewPhaseStore construye el store sobre el repositorio de fases.
func NewPhaseStore(phases repository.PhaseRepository) *PhaseStore {
	return &PhaseStore{phases: phases}
}

// Load devuelve las cinco fases del timebox; las que no existen quedan en nil.
func (s *PhaseStore) Load(ctx context.Context, timeboxID string) (*entity.Phases, error) {
	if timeboxID == "" {
		return nil, domain.Validation("timebox id requerido")
	}
	rows, err := s.phases.LoadRows(ctx, timeboxID)
	if err != nil {
		return nil, domain.Persistence("cargar fases", err)
	}
	return selectPhases(rows), nil
}

// Upsert guarda la fase sobre la fila existente del mismo tipo (o crea una).
// Guardar dos veces el mismo payload deja una sola fila con el último contenido.
func (s *PhaseStore) Upsert(ctx context.Context, ph entity.Phase) (entity.Phase, error) {
	if ph == nil {
		return nil, domain.Validation("fase requerida")
	}
	if ph.TimeboxRef() == "" {
		return nil, domain.Validation("timebox id requerido")
	}
	current, err := s.Load(ctx, ph.TimeboxRef())
	if err != nil {
		return nil, err
	}

	switch p := ph.(type) {
	case *entity.PlanningPhase:
		if p.ID == "" && current.Planning != nil {
			p.ID, p.CreatedAt = current.Planning.ID, current.Planning.CreatedAt
		}
		err = s.phases.UpsertPlanning(ctx, p)
	case *entity.KickoffPhase:
		if p.ID == "" && current.Kickoff != nil {
			p.ID, p.CreatedAt = current.Kickoff.ID, current.Kickoff.CreatedAt
		}
		p.Compensation = compensation.Breakdown(p.Financing)
		err = s.phases.UpsertKickoff(ctx, p)
	case *entity.RefinementPhase:
		if p.ID == "" && current.Refinement != nil {
			p.ID, p.CreatedAt = current.Refinement.ID, current.Refinement.CreatedAt
		}
		err = s.phases.UpsertRefinement(ctx, p)
	case *entity.QAPhase:
		if p.ID == "" && current.QA != nil {
			p.ID, p.CreatedAt = current.QA.ID, current.QA.CreatedAt
		}
		err = s.phases.UpsertQA(ctx, p)
	case *entity.ClosePhase:
		if p.ID == "" && current.Close != nil {
			p.ID, p.CreatedAt = current.Close.ID, current.Close.CreatedAt
		}
		err = s.phases.UpsertClose(ctx, p)
	default:
		return nil, domain.Validation("tipo de fase desconocido: %T", ph)
	}
	if err != nil {
		return nil, domain.Persistence(fmt.Sprintf("guardar fase %s", ph.Type()), err)
	}
	return ph, nil
}
