package repository

import (
	"context"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

// PublicationRepository persiste ofertas (una por timebox).
type PublicationRepository interface {
	// Upsert inserta o actualiza la oferta del timebox (ON CONFLICT timebox_id).
	Upsert(ctx context.Context, offer *entity.PublicationOffer) error
	GetByID(ctx context.Context, id string) (*entity.PublicationOffer, error)
	GetByTimebox(ctx context.Context, timeboxID string) (*entity.PublicationOffer, error)
	ListByTimebox(ctx context.Context, timeboxID string) ([]*entity.PublicationOffer, error)
	DeleteByTimebox(ctx context.Context, timeboxID string) error
}

// PostulationRepository persiste postulaciones. No hay borrado individual.
type PostulationRepository interface {
	Create(ctx context.Context, p *entity.Postulation) error
	GetByID(ctx context.Context, id string) (*entity.Postulation, error)
	ListByOffer(ctx context.Context, offerID string) ([]*entity.Postulation, error)
	Update(ctx context.Context, p *entity.Postulation) error
	DeleteByTimebox(ctx context.Context, timeboxID string) error
}

// AutoPublicationRepository persiste publicaciones automáticas por rol.
type AutoPublicationRepository interface {
	Create(ctx context.Context, p *entity.AutoPublication) error
	MarkPublished(ctx context.Context, id string) (*entity.AutoPublication, error)
	ListByTimebox(ctx context.Context, timeboxID string) ([]*entity.AutoPublication, error)
	DeleteByTimebox(ctx context.Context, timeboxID string) error
}

// RoleSalaryRepository lee los sueldos semanales activos por rol.
type RoleSalaryRepository interface {
	ListActive(ctx context.Context) ([]*entity.RoleSalary, error)
	List(ctx context.Context) ([]*entity.RoleSalary, error)
	GetByID(ctx context.Context, roleID string) (*entity.RoleSalary, error)
	// UpdateSalary reemplaza el sueldo vigente del rol.
	UpdateSalary(ctx context.Context, s *entity.RoleSalary) error
}
