package memory

import (
	"context"
	"time"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
)

var _ repository.PhaseRepository = (*PhaseRepo)(nil)

// PhaseRepo fases en memoria. Admite varias filas por timebox para simular bases heredadas (ver AppendRows).
type PhaseRepo struct{ s *Store }

// Phases devuelve el repositorio de fases.
func (s *Store) Phases() *PhaseRepo { return &PhaseRepo{s: s} }

type metaFunc[T any] func(*T) (id *string, createdAt, updatedAt *time.Time)

// upsert sustituye la fila con el mismo id; sin id reutiliza la primera fila del timebox (como ON CONFLICT).
func upsert[T any](rows []*T, p *T, meta metaFunc[T], now time.Time) []*T {
	id, created, updated := meta(p)
	if *id == "" && len(rows) > 0 {
		first, _, _ := meta(rows[0])
		*id = *first
	}
	*id = newID(*id)
	*updated = now
	for i, row := range rows {
		rid, rcreated, _ := meta(row)
		if *rid == *id {
			if created.IsZero() {
				*created = *rcreated
			}
			cp := *p
			rows[i] = &cp
			return rows
		}
	}
	if created.IsZero() {
		*created = now
	}
	cp := *p
	return append(rows, &cp)
}

func copyRows[T any](rows []*T) []*T {
	out := make([]*T, 0, len(rows))
	for _, row := range rows {
		cp := *row
		out = append(out, &cp)
	}
	return out
}

func planningMeta(p *entity.PlanningPhase) (*string, *time.Time, *time.Time) {
	return &p.ID, &p.CreatedAt, &p.UpdatedAt
}
func kickoffMeta(p *entity.KickoffPhase) (*string, *time.Time, *time.Time) {
	return &p.ID, &p.CreatedAt, &p.UpdatedAt
}
func refinementMeta(p *entity.RefinementPhase) (*string, *time.Time, *time.Time) {
	return &p.ID, &p.CreatedAt, &p.UpdatedAt
}
func qaMeta(p *entity.QAPhase) (*string, *time.Time, *time.Time) {
	return &p.ID, &p.CreatedAt, &p.UpdatedAt
}
func closeMeta(p *entity.ClosePhase) (*string, *time.Time, *time.Time) {
	return &p.ID, &p.CreatedAt, &p.UpdatedAt
}

func (r *PhaseRepo) UpsertPlanning(ctx context.Context, p *entity.PlanningPhase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("phases.upsert"); err != nil {
		return err
	}
	r.s.planning[p.TimeboxID] = upsert(r.s.planning[p.TimeboxID], p, planningMeta, r.s.now())
	return nil
}

func (r *PhaseRepo) UpsertKickoff(ctx context.Context, p *entity.KickoffPhase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("phases.upsert"); err != nil {
		return err
	}
	r.s.kickoff[p.TimeboxID] = upsert(r.s.kickoff[p.TimeboxID], p, kickoffMeta, r.s.now())
	return nil
}

func (r *PhaseRepo) UpsertRefinement(ctx context.Context, p *entity.RefinementPhase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("phases.upsert"); err != nil {
		return err
	}
	r.s.refinement[p.TimeboxID] = upsert(r.s.refinement[p.TimeboxID], p, refinementMeta, r.s.now())
	return nil
}

func (r *PhaseRepo) UpsertQA(ctx context.Context, p *entity.QAPhase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("phases.upsert"); err != nil {
		return err
	}
	r.s.qa[p.TimeboxID] = upsert(r.s.qa[p.TimeboxID], p, qaMeta, r.s.now())
	return nil
}

func (r *PhaseRepo) UpsertClose(ctx context.Context, p *entity.ClosePhase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("phases.upsert"); err != nil {
		return err
	}
	r.s.close[p.TimeboxID] = upsert(r.s.close[p.TimeboxID], p, closeMeta, r.s.now())
	return nil
}

func (r *PhaseRepo) CreateKickoffIfAbsent(ctx context.Context, timeboxID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("phases.create_kickoff"); err != nil {
		return false, err
	}
	if len(r.s.kickoff[timeboxID]) > 0 {
		return false, nil
	}
	now := r.s.now()
	r.s.kickoff[timeboxID] = []*entity.KickoffPhase{{
		ID:         newID(""),
		TimeboxID:  timeboxID,
		Agreements: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}}
	return true, nil
}

func (r *PhaseRepo) LoadRows(ctx context.Context, timeboxID string) (*entity.PhaseRows, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("phases.load"); err != nil {
		return nil, err
	}
	return &entity.PhaseRows{
		Planning:   copyRows(r.s.planning[timeboxID]),
		Kickoff:    copyRows(r.s.kickoff[timeboxID]),
		Refinement: copyRows(r.s.refinement[timeboxID]),
		QA:         copyRows(r.s.qa[timeboxID]),
		Close:      copyRows(r.s.close[timeboxID]),
	}, nil
}

func (r *PhaseRepo) DeleteByTimebox(ctx context.Context, timeboxID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("phases.delete"); err != nil {
		return err
	}
	delete(r.s.planning, timeboxID)
	delete(r.s.kickoff, timeboxID)
	delete(r.s.refinement, timeboxID)
	delete(r.s.qa, timeboxID)
	delete(r.s.close, timeboxID)
	return nil
}

// AppendRows agrega filas sin pasar por el upsert, para reproducir duplicados heredados.
func (r *PhaseRepo) AppendRows(rows entity.PhaseRows) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range rows.Planning {
		r.s.planning[p.TimeboxID] = append(r.s.planning[p.TimeboxID], p)
	}
	for _, p := range rows.Kickoff {
		r.s.kickoff[p.TimeboxID] = append(r.s.kickoff[p.TimeboxID], p)
	}
	for _, p := range rows.Refinement {
		r.s.refinement[p.TimeboxID] = append(r.s.refinement[p.TimeboxID], p)
	}
	for _, p := range rows.QA {
		r.s.qa[p.TimeboxID] = append(r.s.qa[p.TimeboxID], p)
	}
	for _, p := range rows.Close {
		r.s.close[p.TimeboxID] = append(r.s.close[p.TimeboxID], p)
	}
}

// RowCount número de filas guardadas del tipo indicado (para tests).
func (r *PhaseRepo) RowCount(timeboxID string, t entity.PhaseType) int {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	switch t {
	case entity.PhasePlanning:
		return len(r.s.planning[timeboxID])
	case entity.PhaseKickoff:
		return len(r.s.kickoff[timeboxID])
	case entity.PhaseRefinement:
		return len(r.s.refinement[timeboxID])
	case entity.PhaseQA:
		return len(r.s.qa[timeboxID])
	case entity.PhaseClose:
		return len(r.s.close[timeboxID])
	}
	return 0
}
