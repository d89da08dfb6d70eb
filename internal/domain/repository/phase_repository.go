package repository

import (
	"context"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

// PhaseRepository persiste las cinco variantes de fase.
// Cada Upsert está indexado por timebox_id: guardar dos veces actualiza la misma fila.
type PhaseRepository interface {
	UpsertPlanning(ctx context.Context, p *entity.PlanningPhase) error
	UpsertKickoff(ctx context.Context, p *entity.KickoffPhase) error
	UpsertRefinement(ctx context.Context, p *entity.RefinementPhase) error
	UpsertQA(ctx context.Context, p *entity.QAPhase) error
	UpsertClose(ctx context.Context, p *entity.ClosePhase) error

	// CreateKickoffIfAbsent crea un kickoff vacío si no existe. created=false si ya existía.
	CreateKickoffIfAbsent(ctx context.Context, timeboxID string) (created bool, err error)

	// LoadRows devuelve todas las filas de fases del timebox, incluidas duplicadas heredadas.
	LoadRows(ctx context.Context, timeboxID string) (*entity.PhaseRows, error)

	DeleteByTimebox(ctx context.Context, timeboxID string) error
}
