package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/timebox-api/internal/application/usecase"
	"github.com/jhoicas/timebox-api/internal/domain"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCascade inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunCascade(ctx context.Context, fn func(repos usecase.CascadeRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Persistence("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := usecase.CascadeRepos{
		Timeboxes:        NewTimeboxRepository(tx),
		Phases:           NewPhaseRepository(tx),
		Offers:           NewPublicationRepository(tx),
		Postulations:     NewPostulationRepository(tx),
		AutoPublications: NewAutoPublicationRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Persistence("commit transaction", fmt.Errorf("cascade: %w", err))
	}
	return nil
}
