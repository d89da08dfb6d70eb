package publication

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/application/lifecycle"
	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
	"github.com/jhoicas/timebox-api/internal/domain/timebox"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

// AutoPublisher genera una publicación por rol activo: sueldo semanal × semanas del planning.
type AutoPublisher struct {
	timeboxes       repository.TimeboxRepository
	autos           repository.AutoPublicationRepository
	roles           repository.RoleSalaryRepository
	store           *lifecycle.PhaseStore
	defaultCurrency string
	log             *logger.Logger
}

// NewAutoPublisher construye el caso de uso. defaultCurrency se usa cuando el rol no tiene moneda.
func NewAutoPublisher(
	timeboxes repository.TimeboxRepository,
	autos repository.AutoPublicationRepository,
	roles repository.RoleSalaryRepository,
	store *lifecycle.PhaseStore,
	defaultCurrency string,
	log *logger.Logger,
) *AutoPublisher {
	return &AutoPublisher{
		timeboxes:       timeboxes,
		autos:           autos,
		roles:           roles,
		store:           store,
		defaultCurrency: defaultCurrency,
		log:             log.Component("auto_publication"),
	}
}

// weeks semanas del timebox según el esfuerzo del planning (1 si no hay planning).
func (a *AutoPublisher) weeks(ctx context.Context, timeboxID string) (int, error) {
	tb, err := a.timeboxes.GetByID(ctx, timeboxID)
	if err != nil {
		return 0, domain.Persistence("obtener timebox", err)
	}
	if tb == nil {
		return 0, domain.NotFound("timebox %s no encontrado", timeboxID)
	}
	phases, err := a.store.Load(ctx, timeboxID)
	if err != nil {
		return 0, err
	}
	effort := ""
	if phases.Planning != nil {
		effort = phases.Planning.Effort
	}
	return timebox.ParseEffortWeeks(effort), nil
}

func (a *AutoPublisher) currency(c string) string {
	if c == "" {
		return a.defaultCurrency
	}
	return c
}

// ListRoles roles activos con el financiamiento que tendrían en este timebox.
func (a *AutoPublisher) ListRoles(ctx context.Context, timeboxID string) ([]dto.RoleResponse, error) {
	weeks, err := a.weeks(ctx, timeboxID)
	if err != nil {
		return nil, err
	}
	roles, err := a.roles.ListActive(ctx)
	if err != nil {
		return nil, domain.Persistence("listar roles", err)
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleResponse{
			RoleID:         r.RoleID,
			Name:           r.RoleName,
			WeeklySalary:   r.WeeklySalary,
			Currency:       a.currency(r.Currency),
			Weeks:          weeks,
			TotalFinancing: r.WeeklySalary.Mul(decimal.NewFromInt(int64(weeks))),
		})
	}
	return out, nil
}

// CreateAutoPublications crea una publicación no publicada por cada rol activo.
func (a *AutoPublisher) CreateAutoPublications(ctx context.Context, timeboxID string) ([]*entity.AutoPublication, error) {
	roles, err := a.ListRoles(ctx, timeboxID)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.AutoPublication, 0, len(roles))
	for _, r := range roles {
		p := &entity.AutoPublication{
			TimeboxID:      timeboxID,
			Role:           r.Name,
			WeeklySalary:   r.WeeklySalary,
			Currency:       r.Currency,
			Weeks:          r.Weeks,
			TotalFinancing: r.TotalFinancing,
		}
		if err := a.autos.Create(ctx, p); err != nil {
			return nil, domain.Persistence("crear publicación automática", err)
		}
		out = append(out, p)
	}
	a.log.Info().Str("timebox_id", timeboxID).Int("count", len(out)).Msg("publicaciones automáticas creadas")
	return out, nil
}

// ListAutoPublications publicaciones automáticas del timebox.
func (a *AutoPublisher) ListAutoPublications(ctx context.Context, timeboxID string) ([]*entity.AutoPublication, error) {
	list, err := a.autos.ListByTimebox(ctx, timeboxID)
	if err != nil {
		return nil, domain.Persistence("listar publicaciones automáticas", err)
	}
	return list, nil
}

// PublishAutoPublication marca la publicación como publicada.
func (a *AutoPublisher) PublishAutoPublication(ctx context.Context, id string) (*entity.AutoPublication, error) {
	if id == "" {
		return nil, domain.Validation("publicación id requerido")
	}
	p, err := a.autos.MarkPublished(ctx, id)
	if err != nil {
		return nil, domain.Persistence("publicar publicación automática", err)
	}
	if p == nil {
		return nil, domain.NotFound("publicación %s no encontrada", id)
	}
	return p, nil
}
