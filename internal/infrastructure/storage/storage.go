// Package storage arma el juego de repositorios según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/timebox-api/internal/application/usecase"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
	"github.com/jhoicas/timebox-api/internal/infrastructure/memory"
	"github.com/jhoicas/timebox-api/internal/infrastructure/postgres"
	"github.com/jhoicas/timebox-api/internal/infrastructure/postgres/migrations"
	"github.com/jhoicas/timebox-api/pkg/config"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

// Repositories puertos de persistencia usados por los casos de uso.
type Repositories struct {
	Timeboxes        repository.TimeboxRepository
	Phases           repository.PhaseRepository
	Offers           repository.PublicationRepository
	Postulations     repository.PostulationRepository
	AutoPublications repository.AutoPublicationRepository
	RoleSalaries     repository.RoleSalaryRepository
	PaymentOrders    repository.PaymentOrderRepository
	Payments         repository.PaymentRepository
	Tx               usecase.TxRunner

	// Pool es nil con el driver en memoria.
	Pool *pgxpool.Pool
}

// FromMemory repositorios sobre un store en memoria.
func FromMemory(st *memory.Store) *Repositories {
	return &Repositories{
		Timeboxes:        st.Timeboxes(),
		Phases:           st.Phases(),
		Offers:           st.Offers(),
		Postulations:     st.Postulations(),
		AutoPublications: st.AutoPublications(),
		RoleSalaries:     st.RoleSalaries(),
		PaymentOrders:    st.PaymentOrders(),
		Payments:         st.Payments(),
		Tx:               memory.NewTxRunner(st),
	}
}

// FromPool repositorios PostgreSQL sobre el pool.
func FromPool(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Timeboxes:        postgres.NewTimeboxRepository(pool),
		Phases:           postgres.NewPhaseRepository(pool),
		Offers:           postgres.NewPublicationRepository(pool),
		Postulations:     postgres.NewPostulationRepository(pool),
		AutoPublications: postgres.NewAutoPublicationRepository(pool),
		RoleSalaries:     postgres.NewRoleSalaryRepository(pool),
		PaymentOrders:    postgres.NewPaymentOrderRepository(pool),
		Payments:         postgres.NewPaymentRepository(pool),
		Tx:               postgres.NewTxRunner(pool),
		Pool:             pool,
	}
}

// Open abre el almacenamiento configurado. La función devuelta libera el pool (no-op en memoria).
// Con PostgreSQL y AutoMigrate aplica las migraciones pendientes antes de devolver.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repositories, func(), error) {
	slog := log.Component("storage")
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		slog.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return FromMemory(memory.NewStore()), func() {}, nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name, log)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.Storage.AutoMigrate {
			applied, err := migrations.Migrate(ctx, pool)
			if err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("migraciones: %w", err)
			}
			for _, m := range applied {
				slog.Info().Int("version", m.Version).Str("name", m.Name).Msg("migración aplicada")
			}
		}
		return FromPool(pool), pool.Close, nil
	}
	return nil, nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Storage.Driver)
}
