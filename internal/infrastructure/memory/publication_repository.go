package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
)

var _ repository.PublicationRepository = (*PublicationRepo)(nil)

// PublicationRepo ofertas en memoria (una por timebox).
type PublicationRepo struct{ s *Store }

// Offers devuelve el repositorio de ofertas.
func (s *Store) Offers() *PublicationRepo { return &PublicationRepo{s: s} }

func (r *PublicationRepo) Upsert(ctx context.Context, o *entity.PublicationOffer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("offers.upsert"); err != nil {
		return err
	}
	now := r.s.now()
	for _, existing := range r.s.offers {
		if existing.TimeboxID == o.TimeboxID {
			o.ID, o.CreatedAt = existing.ID, existing.CreatedAt
		}
	}
	o.ID = newID(o.ID)
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
	cp := *o
	r.s.offers[o.ID] = &cp
	return nil
}

func (r *PublicationRepo) GetByID(ctx context.Context, id string) (*entity.PublicationOffer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("offers.get"); err != nil {
		return nil, err
	}
	o, ok := r.s.offers[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *PublicationRepo) GetByTimebox(ctx context.Context, timeboxID string) (*entity.PublicationOffer, error) {
	list, err := r.ListByTimebox(ctx, timeboxID)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (r *PublicationRepo) ListByTimebox(ctx context.Context, timeboxID string) ([]*entity.PublicationOffer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("offers.list"); err != nil {
		return nil, err
	}
	var list []*entity.PublicationOffer
	for _, id := range sortedKeys(r.s.offers) {
		if o := r.s.offers[id]; o.TimeboxID == timeboxID {
			cp := *o
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *PublicationRepo) DeleteByTimebox(ctx context.Context, timeboxID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("offers.delete"); err != nil {
		return err
	}
	for id, o := range r.s.offers {
		if o.TimeboxID == timeboxID {
			delete(r.s.offers, id)
		}
	}
	return nil
}

var _ repository.PostulationRepository = (*PostulationRepo)(nil)

// PostulationRepo postulaciones en memoria.
type PostulationRepo struct{ s *Store }

// Postulations devuelve el repositorio de postulaciones.
func (s *Store) Postulations() *PostulationRepo { return &PostulationRepo{s: s} }

func (r *PostulationRepo) Create(ctx context.Context, p *entity.Postulation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("postulations.create"); err != nil {
		return err
	}
	p.ID = newID(p.ID)
	if p.ApplicationDate.IsZero() {
		p.ApplicationDate = r.s.now()
	}
	cp := *p
	r.s.postulations[p.ID] = &cp
	return nil
}

func (r *PostulationRepo) GetByID(ctx context.Context, id string) (*entity.Postulation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("postulations.get"); err != nil {
		return nil, err
	}
	p, ok := r.s.postulations[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *PostulationRepo) ListByOffer(ctx context.Context, offerID string) ([]*entity.Postulation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Postulation
	for _, p := range r.s.postulations {
		if p.OfferID == offerID {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].ApplicationDate.Equal(list[j].ApplicationDate) {
			return list[i].ID < list[j].ID
		}
		return list[i].ApplicationDate.Before(list[j].ApplicationDate)
	})
	return list, nil
}

func (r *PostulationRepo) Update(ctx context.Context, p *entity.Postulation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("postulations.update"); err != nil {
		return err
	}
	if _, ok := r.s.postulations[p.ID]; !ok {
		return domain.NotFound("postulación %s no encontrada", p.ID)
	}
	cp := *p
	r.s.postulations[p.ID] = &cp
	return nil
}

func (r *PostulationRepo) DeleteByTimebox(ctx context.Context, timeboxID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("postulations.delete"); err != nil {
		return err
	}
	for id, p := range r.s.postulations {
		if o, ok := r.s.offers[p.OfferID]; ok && o.TimeboxID == timeboxID {
			delete(r.s.postulations, id)
		}
	}
	return nil
}

var _ repository.AutoPublicationRepository = (*AutoPublicationRepo)(nil)

// AutoPublicationRepo publicaciones automáticas en memoria.
type AutoPublicationRepo struct{ s *Store }

// AutoPublications devuelve el repositorio de publicaciones automáticas.
func (s *Store) AutoPublications() *AutoPublicationRepo { return &AutoPublicationRepo{s: s} }

func (r *AutoPublicationRepo) Create(ctx context.Context, p *entity.AutoPublication) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("auto_publications.create"); err != nil {
		return err
	}
	p.ID = newID(p.ID)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.s.now()
	}
	cp := *p
	r.s.autoPubs[p.ID] = &cp
	return nil
}

func (r *AutoPublicationRepo) MarkPublished(ctx context.Context, id string) (*entity.AutoPublication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.autoPubs[id]
	if !ok {
		return nil, nil
	}
	p.Published = true
	if p.PublicationDate == nil {
		now := r.s.now()
		p.PublicationDate = &now
	}
	cp := *p
	return &cp, nil
}

func (r *AutoPublicationRepo) ListByTimebox(ctx context.Context, timeboxID string) ([]*entity.AutoPublication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.AutoPublication
	for _, id := range sortedKeys(r.s.autoPubs) {
		if p := r.s.autoPubs[id]; p.TimeboxID == timeboxID {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Role < list[j].Role })
	return list, nil
}

func (r *AutoPublicationRepo) DeleteByTimebox(ctx context.Context, timeboxID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.autoPubs {
		if p.TimeboxID == timeboxID {
			delete(r.s.autoPubs, id)
		}
	}
	return nil
}

var _ repository.RoleSalaryRepository = (*RoleSalaryRepo)(nil)

// RoleSalaryRepo sueldos por rol en memoria.
type RoleSalaryRepo struct{ s *Store }

// RoleSalaries devuelve el repositorio de sueldos por rol.
func (s *Store) RoleSalaries() *RoleSalaryRepo { return &RoleSalaryRepo{s: s} }

// Seed reemplaza el catálogo de sueldos. Los roles sembrados quedan activos.
func (r *RoleSalaryRepo) Seed(roles ...*entity.RoleSalary) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.roles = make([]*entity.RoleSalary, 0, len(roles))
	for _, role := range roles {
		cp := *role
		cp.Active = true
		r.s.roles = append(r.s.roles, &cp)
	}
}

func (r *RoleSalaryRepo) ListActive(ctx context.Context) ([]*entity.RoleSalary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.RoleSalary, 0, len(r.s.roles))
	for _, role := range r.s.roles {
		if role.Active {
			cp := *role
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *RoleSalaryRepo) List(ctx context.Context) ([]*entity.RoleSalary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.RoleSalary, 0, len(r.s.roles))
	for _, role := range r.s.roles {
		cp := *role
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RoleName < out[j].RoleName })
	return out, nil
}

func (r *RoleSalaryRepo) GetByID(ctx context.Context, roleID string) (*entity.RoleSalary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, role := range r.s.roles {
		if role.RoleID == roleID {
			cp := *role
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *RoleSalaryRepo) UpdateSalary(ctx context.Context, s *entity.RoleSalary) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("role_salaries.update"); err != nil {
		return err
	}
	for _, role := range r.s.roles {
		if role.RoleID == s.RoleID {
			role.WeeklySalary = s.WeeklySalary
			role.Currency = s.Currency
			role.StartDate = s.StartDate
			return nil
		}
	}
	return domain.NotFound("rol %s no encontrado", s.RoleID)
}
