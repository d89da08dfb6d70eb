package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
	"github.com/jhoicas/timebox-api/internal/domain/timebox"
)

var _ repository.TimeboxRepository = (*TimeboxRepo)(nil)

// TimeboxRepo implementación de TimeboxRepository (usable con pool o tx).
type TimeboxRepo struct {
	q Querier
}

// NewTimeboxRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTimeboxRepository(q Querier) *TimeboxRepo {
	return &TimeboxRepo{q: q}
}

const timeboxColumns = `id, tipo_timebox_id, project_id, business_analyst_id, monto, estado, created_at, updated_at`

func (r *TimeboxRepo) Create(ctx context.Context, tb *entity.Timebox) error {
	if tb.ID == "" {
		tb.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if tb.CreatedAt.IsZero() {
		tb.CreatedAt = now
	}
	tb.UpdatedAt = now
	query := `
		INSERT INTO timeboxes (` + timeboxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		tb.ID, tb.TypeID, tb.ProjectID, tb.BusinessAnalystID, tb.Amount, string(tb.Status),
		tb.CreatedAt, tb.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Validation("timebox %s ya existe", tb.ID)
		}
		return domain.Persistence("insert timebox", err)
	}
	return nil
}

// GetByID obtiene un timebox por ID. Devuelve nil, nil si no existe.
func (r *TimeboxRepo) GetByID(ctx context.Context, id string) (*entity.Timebox, error) {
	query := `SELECT ` + timeboxColumns + ` FROM timeboxes WHERE id = $1`
	tb, err := scanTimebox(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.Persistence("get timebox", err)
	}
	return tb, nil
}

func (r *TimeboxRepo) List(ctx context.Context) ([]*entity.Timebox, error) {
	return r.list(ctx, `SELECT `+timeboxColumns+` FROM timeboxes ORDER BY created_at DESC, id`)
}

func (r *TimeboxRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.Timebox, error) {
	return r.list(ctx, `SELECT `+timeboxColumns+` FROM timeboxes WHERE project_id = $1 ORDER BY created_at DESC, id`, projectID)
}

func (r *TimeboxRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Timebox, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.Persistence("list timeboxes", err)
	}
	defer rows.Close()

	var list []*entity.Timebox
	for rows.Next() {
		tb, err := scanTimebox(rows)
		if err != nil {
			return nil, domain.Persistence("scan timebox", err)
		}
		list = append(list, tb)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list timeboxes", err)
	}
	return list, nil
}

// ListWithPostulations cola de trabajo del aprobador: timeboxes con postulaciones en sus ofertas.
func (r *TimeboxRepo) ListWithPostulations(ctx context.Context) ([]*entity.TimeboxPostulations, error) {
	query := `
		SELECT t.id, t.tipo_timebox_id, t.project_id, t.business_analyst_id, t.monto, t.estado,
		       t.created_at, t.updated_at, COUNT(po.id) AS num_postulaciones
		FROM timeboxes t
		JOIN publicacion_ofertas o ON o.timebox_id = t.id
		JOIN postulaciones po ON po.oferta_id = o.id
		GROUP BY t.id
		ORDER BY num_postulaciones DESC, t.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, domain.Persistence("list timeboxes with postulations", err)
	}
	defer rows.Close()

	var list []*entity.TimeboxPostulations
	for rows.Next() {
		var (
			tb     entity.Timebox
			status string
			count  int
		)
		if err := rows.Scan(&tb.ID, &tb.TypeID, &tb.ProjectID, &tb.BusinessAnalystID, &tb.Amount, &status,
			&tb.CreatedAt, &tb.UpdatedAt, &count); err != nil {
			return nil, domain.Persistence("scan timebox", err)
		}
		tb.Status = normalizeStatus(status)
		list = append(list, &entity.TimeboxPostulations{Timebox: &tb, Postulations: count})
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list timeboxes with postulations", err)
	}
	return list, nil
}

func (r *TimeboxRepo) Update(ctx context.Context, tb *entity.Timebox) error {
	tb.UpdatedAt = time.Now().UTC()
	tag, err := r.q.Exec(ctx, `
		UPDATE timeboxes
		SET tipo_timebox_id = $2, project_id = $3, business_analyst_id = $4, monto = $5, updated_at = $6
		WHERE id = $1`,
		tb.ID, tb.TypeID, tb.ProjectID, tb.BusinessAnalystID, tb.Amount, tb.UpdatedAt,
	)
	if err != nil {
		return domain.Persistence("update timebox", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("timebox %s no encontrado", tb.ID)
	}
	return nil
}

func (r *TimeboxRepo) UpdateStatus(ctx context.Context, id string, status entity.TimeboxStatus) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE timeboxes SET estado = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), time.Now().UTC(),
	)
	if err != nil {
		return domain.Persistence("update timebox status", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("timebox %s no encontrado", id)
	}
	return nil
}

// Stats cuenta timeboxes por estado. Las etiquetas con tilde heredadas se agrupan con las sin tilde.
func (r *TimeboxRepo) Stats(ctx context.Context) (*entity.TimeboxStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE estado IN ('En Definicion', 'En Definición')),
			COUNT(*) FILTER (WHERE estado = 'Disponible'),
			COUNT(*) FILTER (WHERE estado IN ('En Ejecucion', 'En Ejecución')),
			COUNT(*) FILTER (WHERE estado = 'Finalizado')
		FROM timeboxes`
	var s entity.TimeboxStats
	if err := r.q.QueryRow(ctx, query).Scan(&s.Total, &s.EnDefinicion, &s.Disponible, &s.EnEjecucion, &s.Finalizado); err != nil {
		return nil, domain.Persistence("timebox stats", err)
	}
	return &s, nil
}

func (r *TimeboxRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM timeboxes WHERE id = $1`, id)
	if err != nil {
		return domain.Persistence("delete timebox", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("timebox %s no encontrado", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTimebox(row rowScanner) (*entity.Timebox, error) {
	var (
		tb     entity.Timebox
		status string
	)
	if err := row.Scan(&tb.ID, &tb.TypeID, &tb.ProjectID, &tb.BusinessAnalystID, &tb.Amount, &status, &tb.CreatedAt, &tb.UpdatedAt); err != nil {
		return nil, err
	}
	tb.Status = normalizeStatus(status)
	return &tb, nil
}

// normalizeStatus mapea las etiquetas con tilde guardadas por versiones anteriores.
func normalizeStatus(s string) entity.TimeboxStatus {
	if st, ok := timebox.ParseStatus(s); ok {
		return st
	}
	return entity.TimeboxStatus(s)
}
