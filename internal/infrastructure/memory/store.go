// Package memory implementa los puertos de persistencia en memoria.
// Se usa en tests y con STORAGE_DRIVER=memory para levantar la API sin PostgreSQL.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu sync.Mutex

	timeboxes    map[string]*entity.Timebox
	planning     map[string][]*entity.PlanningPhase
	kickoff      map[string][]*entity.KickoffPhase
	refinement   map[string][]*entity.RefinementPhase
	qa           map[string][]*entity.QAPhase
	close        map[string][]*entity.ClosePhase
	offers       map[string]*entity.PublicationOffer
	postulations map[string]*entity.Postulation
	autoPubs     map[string]*entity.AutoPublication
	roles        []*entity.RoleSalary
	orders       map[string]*entity.PaymentOrder
	payments     []*entity.Payment

	failures map[string]error
	now      func() time.Time
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		timeboxes:    map[string]*entity.Timebox{},
		planning:     map[string][]*entity.PlanningPhase{},
		kickoff:      map[string][]*entity.KickoffPhase{},
		refinement:   map[string][]*entity.RefinementPhase{},
		qa:           map[string][]*entity.QAPhase{},
		close:        map[string][]*entity.ClosePhase{},
		offers:       map[string]*entity.PublicationOffer{},
		postulations: map[string]*entity.Postulation{},
		autoPubs:     map[string]*entity.AutoPublication{},
		orders:       map[string]*entity.PaymentOrder{},
		failures:     map[string]error{},
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Fail hace que la operación op (ej. "payment_orders.create") devuelva err hasta que se limpie con Fail(op, nil).
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// failure debe llamarse con s.mu tomado.
func (s *Store) failure(op string) error {
	if err, ok := s.failures[op]; ok {
		return domain.Persistence(op, err)
	}
	return nil
}

func newID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
