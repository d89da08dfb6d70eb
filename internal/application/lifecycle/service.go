package lifecycle

import (
	"context"
	"strings"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
	"github.com/jhoicas/timebox-api/internal/domain/timebox"
	"github.com/jhoicas/timebox-api/pkg/keylock"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

// PhaseService casos de uso de fases: guardar (con progresión automática) y cargar.
type PhaseService struct {
	timeboxes repository.TimeboxRepository
	store     *PhaseStore
	engine    *ProgressionEngine
	offers    OfferRequester
	locks     *keylock.KeyedMutex
	log       *logger.Logger
}

// NewPhaseService construye el servicio. offers puede ser nil si no se expone publicación.
func NewPhaseService(
	timeboxes repository.TimeboxRepository,
	store *PhaseStore,
	engine *ProgressionEngine,
	offers OfferRequester,
	locks *keylock.KeyedMutex,
	log *logger.Logger,
) *PhaseService {
	return &PhaseService{
		timeboxes: timeboxes,
		store:     store,
		engine:    engine,
		offers:    offers,
		locks:     locks,
		log:       log.Component("phases"),
	}
}

// SavePhase guarda la fase, re-evalúa la progresión y, si se pidió, abre o publica la oferta.
func (s *PhaseService) SavePhase(ctx context.Context, req dto.SavePhaseRequest) (*dto.SavePhaseResponse, error) {
	if req.TimeboxID == "" {
		return nil, domain.Validation("timebox id requerido")
	}
	if !req.Type.Valid() {
		return nil, domain.Validation("tipo de fase desconocido: %q", req.Type)
	}
	ph, err := buildPhase(req)
	if err != nil {
		return nil, err
	}
	if p, ok := ph.(*entity.PlanningPhase); ok && req.Strict && p.Completed {
		if err := ValidatePlanning(p); err != nil {
			return nil, err
		}
	}

	unlock := s.locks.Lock(req.TimeboxID)
	tb, err := s.timeboxes.GetByID(ctx, req.TimeboxID)
	if err != nil {
		unlock()
		return nil, domain.Persistence("obtener timebox", err)
	}
	if tb == nil {
		unlock()
		return nil, domain.NotFound("timebox %s no encontrado", req.TimeboxID)
	}
	saved, err := s.store.Upsert(ctx, ph)
	if err != nil {
		unlock()
		return nil, err
	}
	tr, err := s.engine.OnPhaseSaved(ctx, tb, saved)
	unlock()
	if err != nil {
		return nil, err
	}

	resp := &dto.SavePhaseResponse{
		Type:           string(saved.Type()),
		Phase:          dto.NewPhaseResponse(saved),
		Status:         string(tb.Status),
		StatusChanged:  tr.Changed,
		KickoffCreated: tr.KickoffCreated,
	}

	if pub := req.Publication; pub != nil && (pub.Request || pub.Publish) && s.offers != nil {
		offer, err := s.offers.RequestPublication(ctx, tb.ID)
		if err != nil {
			return nil, err
		}
		if pub.Publish {
			var ptr Transition
			offer, ptr, err = s.offers.Publish(ctx, offer.ID)
			if err != nil {
				return nil, err
			}
			resp.Status = string(ptr.To)
			resp.StatusChanged = resp.StatusChanged || ptr.Changed
		}
		o := dto.NewOfferResponse(offer)
		resp.Offer = &o
	}

	s.log.Debug().
		Str("timebox_id", tb.ID).
		Str("phase", resp.Type).
		Bool("completed", saved.IsCompleted()).
		Msg("fase guardada")
	return resp, nil
}

// LoadPhases devuelve las fases del timebox.
func (s *PhaseService) LoadPhases(ctx context.Context, timeboxID string) (*dto.PhasesResponse, error) {
	if timeboxID == "" {
		return nil, domain.Validation("timebox id requerido")
	}
	tb, err := s.timeboxes.GetByID(ctx, timeboxID)
	if err != nil {
		return nil, domain.Persistence("obtener timebox", err)
	}
	if tb == nil {
		return nil, domain.NotFound("timebox %s no encontrado", timeboxID)
	}
	phases, err := s.store.Load(ctx, timeboxID)
	if err != nil {
		return nil, err
	}
	out := dto.NewPhasesResponse(phases)
	return &out, nil
}

// ValidatePlanning exige los campos obligatorios del planning.
func ValidatePlanning(p *entity.PlanningPhase) error {
	if missing := timebox.MissingPlanningFields(p); len(missing) > 0 {
		return domain.InvalidState("planning incompleto, faltan: %s", strings.Join(missing, ", "))
	}
	return nil
}

func buildPhase(req dto.SavePhaseRequest) (entity.Phase, error) {
	missing := domain.Validation("faltan los datos de la fase %s", req.Type)
	switch req.Type {
	case entity.PhasePlanning:
		in := req.Planning
		if in == nil {
			return nil, missing
		}
		return &entity.PlanningPhase{
			TimeboxID:    req.TimeboxID,
			Name:         strings.TrimSpace(in.Name),
			Code:         strings.TrimSpace(in.Code),
			Description:  in.Description,
			PhaseDate:    ParseDate(in.PhaseDate),
			Axis:         strings.TrimSpace(in.Axis),
			Application:  strings.TrimSpace(in.Application),
			Scope:        strings.TrimSpace(in.Scope),
			Effort:       strings.TrimSpace(in.Effort),
			StartDate:    ParseDate(in.StartDate),
			TeamLeaderID: emptyToNil(in.TeamLeaderID),
			Skills:       in.Skills,
			Checklist:    in.Checklist,
			Attachments:  in.Attachments,
			Completed:    req.Completed,
		}, nil
	case entity.PhaseKickoff:
		in := req.Kickoff
		if in == nil {
			return nil, missing
		}
		k := &entity.KickoffPhase{
			TimeboxID:  req.TimeboxID,
			PhaseDate:  ParseDate(in.PhaseDate),
			Agreements: in.Agreements,
			Financing:  in.Financing,
			Completed:  req.Completed,
		}
		if in.Team != nil {
			k.Team = *in.Team
		}
		return k, nil
	case entity.PhaseRefinement:
		in := req.Refinement
		if in == nil {
			return nil, missing
		}
		return &entity.RefinementPhase{
			TimeboxID:    req.TimeboxID,
			ReviewDate:   ParseDate(in.ReviewDate),
			Status:       in.Status,
			Checklist:    in.Checklist,
			Observations: in.Observations,
			Completed:    req.Completed,
		}, nil
	case entity.PhaseQA:
		in := req.QA
		if in == nil {
			return nil, missing
		}
		return &entity.QAPhase{
			TimeboxID:    req.TimeboxID,
			ReviewDate:   ParseDate(in.ReviewDate),
			Status:       in.Status,
			Checklist:    in.Checklist,
			Observations: in.Observations,
			Completed:    req.Completed,
		}, nil
	case entity.PhaseClose:
		in := req.Close
		if in == nil {
			return nil, missing
		}
		return &entity.ClosePhase{
			TimeboxID:    req.TimeboxID,
			CloseDate:    ParseDate(in.CloseDate),
			Status:       in.Status,
			Checklist:    in.Checklist,
			Lessons:      in.Lessons,
			Observations: in.Observations,
			Completed:    req.Completed,
		}, nil
	}
	return nil, domain.Validation("tipo de fase desconocido: %q", req.Type)
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
