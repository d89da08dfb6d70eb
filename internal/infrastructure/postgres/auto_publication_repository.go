package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
)

var _ repository.AutoPublicationRepository = (*AutoPublicationRepo)(nil)

// AutoPublicationRepo publicaciones automáticas por rol.
type AutoPublicationRepo struct {
	q Querier
}

// NewAutoPublicationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAutoPublicationRepository(q Querier) *AutoPublicationRepo {
	return &AutoPublicationRepo{q: q}
}

const autoPublicationColumns = `id, timebox_id, rol, sueldo_semanal, moneda, semanas, financiamiento_total, publicada, fecha_publicacion, created_at`

func (r *AutoPublicationRepo) Create(ctx context.Context, p *entity.AutoPublication) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO publicaciones_automaticas (`+autoPublicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.TimeboxID, p.Role, p.WeeklySalary, p.Currency, p.Weeks, p.TotalFinancing,
		p.Published, p.PublicationDate, p.CreatedAt,
	)
	if err != nil {
		return domain.Persistence("insert auto publication", err)
	}
	return nil
}

// MarkPublished marca la publicación y devuelve la fila actualizada (nil, nil si no existe).
func (r *AutoPublicationRepo) MarkPublished(ctx context.Context, id string) (*entity.AutoPublication, error) {
	p, err := scanAutoPublication(r.q.QueryRow(ctx, `
		UPDATE publicaciones_automaticas
		SET publicada = true, fecha_publicacion = COALESCE(fecha_publicacion, $2)
		WHERE id = $1
		RETURNING `+autoPublicationColumns, id, time.Now().UTC()))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.Persistence("publish auto publication", err)
	}
	return p, nil
}

func (r *AutoPublicationRepo) ListByTimebox(ctx context.Context, timeboxID string) ([]*entity.AutoPublication, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+autoPublicationColumns+` FROM publicaciones_automaticas WHERE timebox_id = $1 ORDER BY created_at, rol`, timeboxID)
	if err != nil {
		return nil, domain.Persistence("list auto publications", err)
	}
	defer rows.Close()

	var list []*entity.AutoPublication
	for rows.Next() {
		p, err := scanAutoPublication(rows)
		if err != nil {
			return nil, domain.Persistence("scan auto publication", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list auto publications", err)
	}
	return list, nil
}

func (r *AutoPublicationRepo) DeleteByTimebox(ctx context.Context, timeboxID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM publicaciones_automaticas WHERE timebox_id = $1`, timeboxID); err != nil {
		return domain.Persistence("delete auto publications", err)
	}
	return nil
}

func scanAutoPublication(row rowScanner) (*entity.AutoPublication, error) {
	var p entity.AutoPublication
	if err := row.Scan(&p.ID, &p.TimeboxID, &p.Role, &p.WeeklySalary, &p.Currency, &p.Weeks, &p.TotalFinancing,
		&p.Published, &p.PublicationDate, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

var _ repository.RoleSalaryRepository = (*RoleSalaryRepo)(nil)

// RoleSalaryRepo lectura de role_sueldos.
type RoleSalaryRepo struct {
	q Querier
}

// NewRoleSalaryRepository construye el adaptador.
func NewRoleSalaryRepository(q Querier) *RoleSalaryRepo {
	return &RoleSalaryRepo{q: q}
}

const roleSalaryColumns = `role_id, rol_nombre, sueldo_base_semanal, COALESCE(moneda, ''), activo, fecha_inicio`

func (r *RoleSalaryRepo) ListActive(ctx context.Context) ([]*entity.RoleSalary, error) {
	return r.list(ctx, `SELECT `+roleSalaryColumns+` FROM role_sueldos WHERE activo = true ORDER BY rol_nombre`)
}

// List todos los roles, activos o no.
func (r *RoleSalaryRepo) List(ctx context.Context) ([]*entity.RoleSalary, error) {
	return r.list(ctx, `SELECT `+roleSalaryColumns+` FROM role_sueldos ORDER BY rol_nombre`)
}

func (r *RoleSalaryRepo) list(ctx context.Context, query string) ([]*entity.RoleSalary, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, domain.Persistence("list role salaries", err)
	}
	defer rows.Close()

	var list []*entity.RoleSalary
	for rows.Next() {
		s, err := scanRoleSalary(rows)
		if err != nil {
			return nil, domain.Persistence("scan role salary", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list role salaries", err)
	}
	return list, nil
}

// GetByID devuelve nil, nil si el rol no existe.
func (r *RoleSalaryRepo) GetByID(ctx context.Context, roleID string) (*entity.RoleSalary, error) {
	s, err := scanRoleSalary(r.q.QueryRow(ctx, `SELECT `+roleSalaryColumns+` FROM role_sueldos WHERE role_id = $1`, roleID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.Persistence("get role salary", err)
	}
	return s, nil
}

func (r *RoleSalaryRepo) UpdateSalary(ctx context.Context, s *entity.RoleSalary) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE role_sueldos
		SET sueldo_base_semanal = $2, moneda = $3, fecha_inicio = COALESCE($4, CURRENT_DATE)
		WHERE role_id = $1`,
		s.RoleID, s.WeeklySalary, nullIfEmpty(s.Currency), s.StartDate,
	)
	if err != nil {
		return domain.Persistence("update role salary", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("rol %s no encontrado", s.RoleID)
	}
	return nil
}

func scanRoleSalary(row rowScanner) (*entity.RoleSalary, error) {
	var s entity.RoleSalary
	if err := row.Scan(&s.RoleID, &s.RoleName, &s.WeeklySalary, &s.Currency, &s.Active, &s.StartDate); err != nil {
		return nil, err
	}
	return &s, nil
}
