package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
)

var _ repository.TimeboxRepository = (*TimeboxRepo)(nil)

// TimeboxRepo timeboxes en memoria.
type TimeboxRepo struct{ s *Store }

// Timeboxes devuelve el repositorio de timeboxes.
func (s *Store) Timeboxes() *TimeboxRepo { return &TimeboxRepo{s: s} }

func (r *TimeboxRepo) Create(ctx context.Context, tb *entity.Timebox) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("timeboxes.create"); err != nil {
		return err
	}
	tb.ID = newID(tb.ID)
	if _, ok := r.s.timeboxes[tb.ID]; ok {
		return domain.Validation("timebox %s ya existe", tb.ID)
	}
	now := r.s.now()
	if tb.CreatedAt.IsZero() {
		tb.CreatedAt = now
	}
	tb.UpdatedAt = now
	cp := *tb
	r.s.timeboxes[tb.ID] = &cp
	return nil
}

func (r *TimeboxRepo) GetByID(ctx context.Context, id string) (*entity.Timebox, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("timeboxes.get"); err != nil {
		return nil, err
	}
	tb, ok := r.s.timeboxes[id]
	if !ok {
		return nil, nil
	}
	cp := *tb
	return &cp, nil
}

func (r *TimeboxRepo) List(ctx context.Context) ([]*entity.Timebox, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("timeboxes.list"); err != nil {
		return nil, err
	}
	list := make([]*entity.Timebox, 0, len(r.s.timeboxes))
	for _, id := range sortedKeys(r.s.timeboxes) {
		cp := *r.s.timeboxes[id]
		list = append(list, &cp)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *TimeboxRepo) ListWithPostulations(ctx context.Context) ([]*entity.TimeboxPostulations, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[string]int{}
	for _, p := range r.s.postulations {
		if offer, ok := r.s.offers[p.OfferID]; ok {
			counts[offer.TimeboxID]++
		}
	}
	var list []*entity.TimeboxPostulations
	for _, id := range sortedKeys(r.s.timeboxes) {
		if n := counts[id]; n > 0 {
			cp := *r.s.timeboxes[id]
			list = append(list, &entity.TimeboxPostulations{Timebox: &cp, Postulations: n})
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Postulations > list[j].Postulations })
	return list, nil
}

func (r *TimeboxRepo) Update(ctx context.Context, tb *entity.Timebox) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("timeboxes.update"); err != nil {
		return err
	}
	cur, ok := r.s.timeboxes[tb.ID]
	if !ok {
		return domain.NotFound("timebox %s no encontrado", tb.ID)
	}
	cur.TypeID = tb.TypeID
	cur.ProjectID = tb.ProjectID
	cur.BusinessAnalystID = tb.BusinessAnalystID
	cur.Amount = tb.Amount
	cur.UpdatedAt = r.s.now()
	tb.UpdatedAt = cur.UpdatedAt
	return nil
}

func (r *TimeboxRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.Timebox, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Timebox
	for _, id := range sortedKeys(r.s.timeboxes) {
		if tb := r.s.timeboxes[id]; tb.ProjectID == projectID {
			cp := *tb
			list = append(list, &cp)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *TimeboxRepo) UpdateStatus(ctx context.Context, id string, status entity.TimeboxStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("timeboxes.update_status"); err != nil {
		return err
	}
	tb, ok := r.s.timeboxes[id]
	if !ok {
		return domain.NotFound("timebox %s no encontrado", id)
	}
	tb.Status = status
	tb.UpdatedAt = r.s.now()
	return nil
}

func (r *TimeboxRepo) Stats(ctx context.Context) (*entity.TimeboxStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var st entity.TimeboxStats
	for _, tb := range r.s.timeboxes {
		st.Total++
		switch tb.Status {
		case entity.StatusEnDefinicion:
			st.EnDefinicion++
		case entity.StatusDisponible:
			st.Disponible++
		case entity.StatusEnEjecucion:
			st.EnEjecucion++
		case entity.StatusFinalizado:
			st.Finalizado++
		}
	}
	return &st, nil
}

func (r *TimeboxRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("timeboxes.delete"); err != nil {
		return err
	}
	if _, ok := r.s.timeboxes[id]; !ok {
		return domain.NotFound("timebox %s no encontrado", id)
	}
	delete(r.s.timeboxes, id)
	return nil
}
