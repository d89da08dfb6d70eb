package memory

import (
	"context"

	"github.com/jhoicas/timebox-api/internal/application/usecase"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta el borrado en cascada contra el store. No hay rollback: si fn falla a mitad
// los borrados previos quedan aplicados.
type TxRunner struct{ s *Store }

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

func (r *TxRunner) RunCascade(ctx context.Context, fn func(repos usecase.CascadeRepos) error) error {
	return fn(usecase.CascadeRepos{
		Timeboxes:        r.s.Timeboxes(),
		Phases:           r.s.Phases(),
		Offers:           r.s.Offers(),
		Postulations:     r.s.Postulations(),
		AutoPublications: r.s.AutoPublications(),
	})
}
