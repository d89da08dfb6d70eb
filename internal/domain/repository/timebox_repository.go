package repository

import (
	"context"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

// TimeboxRepository define el puerto de persistencia para Timebox (DIP).
type TimeboxRepository interface {
	Create(ctx context.Context, tb *entity.Timebox) error
	GetByID(ctx context.Context, id string) (*entity.Timebox, error)
	List(ctx context.Context) ([]*entity.Timebox, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.Timebox, error)
	// ListWithPostulations timeboxes con al menos una postulación, de más a menos postulaciones.
	ListWithPostulations(ctx context.Context) ([]*entity.TimeboxPostulations, error)
	// Update reescribe tipo, proyecto, business analyst y monto.
	Update(ctx context.Context, tb *entity.Timebox) error
	UpdateStatus(ctx context.Context, id string, status entity.TimeboxStatus) error
	Stats(ctx context.Context) (*entity.TimeboxStats, error)
	// Delete borra solo la fila del timebox; la cascada la orquesta el caso de uso dentro de una tx.
	Delete(ctx context.Context, id string) error
}
