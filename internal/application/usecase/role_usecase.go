package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
	"github.com/jhoicas/timebox-api/pkg/logger"
)

// weeksPerMonth factor semanal → mensual de las estadísticas de sueldos.
var weeksPerMonth = decimal.RequireFromString("4.33")

// RoleUseCase catálogo de roles con su sueldo base semanal.
type RoleUseCase struct {
	repo            repository.RoleSalaryRepository
	defaultCurrency string
	log             *logger.Logger
	now             func() time.Time
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleSalaryRepository, defaultCurrency string, log *logger.Logger) *RoleUseCase {
	return &RoleUseCase{
		repo:            repo,
		defaultCurrency: defaultCurrency,
		log:             log.Component("roles"),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// List roles del catálogo, activos e inactivos. Sin moneda se informa la moneda por defecto.
func (uc *RoleUseCase) List(ctx context.Context) ([]dto.RoleSalaryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.Persistence("listar roles", err)
	}
	out := make([]dto.RoleSalaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, uc.response(s))
	}
	return out, nil
}

// GetByID rol con su sueldo vigente.
func (uc *RoleUseCase) GetByID(ctx context.Context, roleID string) (*dto.RoleSalaryResponse, error) {
	s, err := uc.get(ctx, roleID)
	if err != nil {
		return nil, err
	}
	out := uc.response(s)
	return &out, nil
}

// UpdateSalary reemplaza el sueldo semanal del rol; rige desde hoy.
// El nuevo valor alimenta las publicaciones automáticas que se creen después.
func (uc *RoleUseCase) UpdateSalary(ctx context.Context, roleID string, in dto.UpdateRoleSalaryRequest) (*dto.RoleSalaryResponse, error) {
	if in.WeeklySalary == nil {
		return nil, domain.Validation("sueldoBaseSemanal es requerido")
	}
	if in.WeeklySalary.IsNegative() {
		return nil, domain.Validation("el sueldo debe ser mayor o igual a 0")
	}
	code := strings.ToUpper(strings.TrimSpace(in.Currency))
	if code == "" {
		code = uc.defaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, domain.Validation("moneda inválida: %q", in.Currency)
	}

	s, err := uc.get(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if !s.Active {
		return nil, domain.InvalidState("el rol %s está inactivo", roleID)
	}
	previous := s.WeeklySalary
	today := uc.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	s.WeeklySalary = in.WeeklySalary.Round(2)
	s.Currency = unit.String()
	s.StartDate = &today
	if err := uc.repo.UpdateSalary(ctx, s); err != nil {
		return nil, domain.Persistence("actualizar sueldo", err)
	}
	uc.log.Info().
		Str("role_id", roleID).
		Str("from", previous.StringFixed(2)).
		Str("to", s.WeeklySalary.StringFixed(2)).
		Str("currency", s.Currency).
		Msg("sueldo de rol actualizado")
	out := uc.response(s)
	return &out, nil
}

// Stats totales semanal y mensual de los roles activos.
func (uc *RoleUseCase) Stats(ctx context.Context) (*dto.RoleSalaryStatsResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, domain.Persistence("estadísticas de sueldos", err)
	}
	st := entity.RoleSalaryStats{WeeklyTotal: decimal.Zero}
	for _, s := range list {
		st.TotalRoles++
		if s.WeeklySalary.IsPositive() {
			st.RolesWithSalary++
		}
		st.WeeklyTotal = st.WeeklyTotal.Add(s.WeeklySalary)
	}
	st.MonthlyTotal = st.WeeklyTotal.Mul(weeksPerMonth).Round(2)
	return &dto.RoleSalaryStatsResponse{
		TotalRoles:      st.TotalRoles,
		RolesWithSalary: st.RolesWithSalary,
		WeeklyTotal:     st.WeeklyTotal,
		MonthlyTotal:    st.MonthlyTotal,
	}, nil
}

func (uc *RoleUseCase) get(ctx context.Context, roleID string) (*entity.RoleSalary, error) {
	if roleID == "" {
		return nil, domain.Validation("rol id requerido")
	}
	s, err := uc.repo.GetByID(ctx, roleID)
	if err != nil {
		return nil, domain.Persistence("obtener rol", err)
	}
	if s == nil {
		return nil, domain.NotFound("rol %s no encontrado", roleID)
	}
	return s, nil
}

func (uc *RoleUseCase) response(s *entity.RoleSalary) dto.RoleSalaryResponse {
	out := dto.NewRoleSalaryResponse(s)
	if out.Currency == "" {
		out.Currency = uc.defaultCurrency
	}
	return out
}
