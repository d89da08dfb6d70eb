package usecase

import (
	"context"

	"github.com/jhoicas/timebox-api/internal/domain/repository"
)

// CascadeRepos repositorios atados a la transacción del borrado en cascada.
type CascadeRepos struct {
	Timeboxes        repository.TimeboxRepository
	Phases           repository.PhaseRepository
	Offers           repository.PublicationRepository
	Postulations     repository.PostulationRepository
	AutoPublications repository.AutoPublicationRepository
}

// TxRunner ejecuta fn dentro de una transacción de BD. Si fn devuelve error se hace Rollback.
type TxRunner interface {
	RunCascade(ctx context.Context, fn func(repos CascadeRepos) error) error
}
