package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
	"github.com/jhoicas/timebox-api/internal/domain/timebox"
	"github.com/jhoicas/timebox-api/pkg/keylock"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

// TimeboxUseCase alta, consulta, override de estado y borrado en cascada de timeboxes.
type TimeboxUseCase struct {
	repo  repository.TimeboxRepository
	tx    TxRunner
	locks *keylock.KeyedMutex
	log   *logger.Logger
}

// NewTimeboxUseCase construye el caso de uso.
func NewTimeboxUseCase(repo repository.TimeboxRepository, tx TxRunner, locks *keylock.KeyedMutex, log *logger.Logger) *TimeboxUseCase {
	return &TimeboxUseCase{repo: repo, tx: tx, locks: locks, log: log.Component("timeboxes")}
}

// Create crea un timebox. Sin estado explícito arranca En Definicion.
func (uc *TimeboxUseCase) Create(ctx context.Context, in dto.CreateTimeboxRequest) (*dto.TimeboxResponse, error) {
	if strings.TrimSpace(in.TypeID) == "" || strings.TrimSpace(in.ProjectID) == "" {
		return nil, domain.Validation("tipoTimeboxId y projectId son requeridos")
	}
	status := entity.StatusEnDefinicion
	if in.Status != "" {
		parsed, ok := timebox.ParseStatus(in.Status)
		if !ok {
			return nil, domain.Validation("estado inválido: %q", in.Status)
		}
		status = parsed
	}
	if in.Amount != nil && in.Amount.IsNegative() {
		return nil, domain.Validation("el monto no puede ser negativo")
	}
	tb := &entity.Timebox{
		TypeID:            strings.TrimSpace(in.TypeID),
		ProjectID:         strings.TrimSpace(in.ProjectID),
		BusinessAnalystID: in.BusinessAnalystID,
		Amount:            in.Amount,
		Status:            status,
	}
	if err := uc.repo.Create(ctx, tb); err != nil {
		return nil, domain.Persistence("crear timebox", err)
	}
	out := dto.NewTimeboxResponse(tb)
	return &out, nil
}

func (uc *TimeboxUseCase) get(ctx context.Context, id string) (*entity.Timebox, error) {
	if id == "" {
		return nil, domain.Validation("timebox id requerido")
	}
	tb, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("obtener timebox", err)
	}
	if tb == nil {
		return nil, domain.NotFound("timebox %s no encontrado", id)
	}
	return tb, nil
}

// GetByID obtiene un timebox.
func (uc *TimeboxUseCase) GetByID(ctx context.Context, id string) (*dto.TimeboxResponse, error) {
	tb, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewTimeboxResponse(tb)
	return &out, nil
}

// GetStatus devuelve solo el estado actual.
func (uc *TimeboxUseCase) GetStatus(ctx context.Context, id string) (*dto.TimeboxStatusResponse, error) {
	tb, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.TimeboxStatusResponse{ID: tb.ID, Status: string(tb.Status)}, nil
}

// UpdateStatus override del operador: acepta cualquier estado válido, con o sin tildes.
func (uc *TimeboxUseCase) UpdateStatus(ctx context.Context, id, label string) (*dto.TimeboxStatusResponse, error) {
	status, ok := timebox.ParseStatus(label)
	if !ok {
		return nil, domain.Validation("estado inválido: %q", label)
	}
	unlock := uc.locks.Lock(id)
	defer unlock()

	tb, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, domain.Persistence("actualizar estado", err)
	}
	uc.log.Warn().
		Str("timebox_id", id).
		Str("from", string(tb.Status)).
		Str("to", string(status)).
		Bool("automatic", timebox.IsAutomaticTransition(tb.Status, status)).
		Msg("estado cambiado por operador")
	return &dto.TimeboxStatusResponse{ID: id, Status: string(status)}, nil
}

// Update edición parcial: tipo, proyecto, business analyst, monto y, como override, estado.
func (uc *TimeboxUseCase) Update(ctx context.Context, id string, in dto.UpdateTimeboxRequest) (*dto.TimeboxResponse, error) {
	var status entity.TimeboxStatus
	if in.Status != nil {
		parsed, ok := timebox.ParseStatus(*in.Status)
		if !ok {
			return nil, domain.Validation("estado inválido: %q", *in.Status)
		}
		status = parsed
	}
	if in.TypeID != nil && strings.TrimSpace(*in.TypeID) == "" {
		return nil, domain.Validation("tipoTimeboxId no puede estar vacío")
	}
	if in.ProjectID != nil && strings.TrimSpace(*in.ProjectID) == "" {
		return nil, domain.Validation("projectId no puede estar vacío")
	}
	if in.Amount != nil && in.Amount.IsNegative() {
		return nil, domain.Validation("el monto no puede ser negativo")
	}

	unlock := uc.locks.Lock(id)
	defer unlock()

	tb, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.TypeID != nil {
		tb.TypeID = strings.TrimSpace(*in.TypeID)
	}
	if in.ProjectID != nil {
		tb.ProjectID = strings.TrimSpace(*in.ProjectID)
	}
	if in.BusinessAnalystID != nil {
		tb.BusinessAnalystID = nil
		if ba := strings.TrimSpace(*in.BusinessAnalystID); ba != "" {
			tb.BusinessAnalystID = &ba
		}
	}
	if in.Amount != nil {
		amount := *in.Amount
		tb.Amount = &amount
	}
	if err := uc.repo.Update(ctx, tb); err != nil {
		return nil, domain.Persistence("actualizar timebox", err)
	}
	if status != "" && status != tb.Status {
		if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
			return nil, domain.Persistence("actualizar estado", err)
		}
		uc.log.Warn().
			Str("timebox_id", id).
			Str("from", string(tb.Status)).
			Str("to", string(status)).
			Msg("estado cambiado por operador")
		tb.Status = status
	}
	out := dto.NewTimeboxResponse(tb)
	return &out, nil
}

// List todos los timeboxes, los más recientes primero.
func (uc *TimeboxUseCase) List(ctx context.Context) ([]dto.TimeboxResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.Persistence("listar timeboxes", err)
	}
	out := make([]dto.TimeboxResponse, 0, len(list))
	for _, tb := range list {
		out = append(out, dto.NewTimeboxResponse(tb))
	}
	return out, nil
}

// WithPostulations timeboxes que tienen postulaciones, de más a menos.
func (uc *TimeboxUseCase) WithPostulations(ctx context.Context) ([]dto.TimeboxPostulationsResponse, error) {
	list, err := uc.repo.ListWithPostulations(ctx)
	if err != nil {
		return nil, domain.Persistence("listar timeboxes con postulaciones", err)
	}
	out := make([]dto.TimeboxPostulationsResponse, 0, len(list))
	for _, item := range list {
		out = append(out, dto.TimeboxPostulationsResponse{
			TimeboxResponse: dto.NewTimeboxResponse(item.Timebox),
			Postulations:    item.Postulations,
		})
	}
	return out, nil
}

// ListByProject timeboxes de un proyecto.
func (uc *TimeboxUseCase) ListByProject(ctx context.Context, projectID string) ([]dto.TimeboxResponse, error) {
	if projectID == "" {
		return nil, domain.Validation("projectId requerido")
	}
	list, err := uc.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, domain.Persistence("listar timeboxes", err)
	}
	out := make([]dto.TimeboxResponse, 0, len(list))
	for _, tb := range list {
		out = append(out, dto.NewTimeboxResponse(tb))
	}
	return out, nil
}

// Stats conteos por estado.
func (uc *TimeboxUseCase) Stats(ctx context.Context) (*dto.TimeboxStatsResponse, error) {
	st, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, domain.Persistence("estadísticas", err)
	}
	out := dto.NewTimeboxStatsResponse(st)
	return &out, nil
}

// Delete borra el timebox con sus fases, ofertas, postulaciones y publicaciones automáticas
// en una sola transacción. Las órdenes de pago se conservan.
func (uc *TimeboxUseCase) Delete(ctx context.Context, id string) error {
	unlock := uc.locks.Lock(id)
	defer unlock()

	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	err := uc.tx.RunCascade(ctx, func(r CascadeRepos) error {
		// Postulaciones antes que ofertas: se resuelven por oferta_id.
		if err := r.Postulations.DeleteByTimebox(ctx, id); err != nil {
			return err
		}
		if err := r.Offers.DeleteByTimebox(ctx, id); err != nil {
			return err
		}
		if err := r.AutoPublications.DeleteByTimebox(ctx, id); err != nil {
			return err
		}
		if err := r.Phases.DeleteByTimebox(ctx, id); err != nil {
			return err
		}
		return r.Timeboxes.Delete(ctx, id)
	})
	if err != nil {
		return domain.Persistence("borrar timebox", err)
	}
	uc.log.Info().Str("timebox_id", id).Msg("timebox eliminado")
	return nil
}
