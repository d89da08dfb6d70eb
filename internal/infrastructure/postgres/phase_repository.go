package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
)

var _ repository.PhaseRepository = (*PhaseRepo)(nil)

// PhaseRepo persiste las fases en una tabla por tipo, cada una con UNIQUE(timebox_id).
// Las estructuras anidadas (skills, checklist, equipo, financiamiento) van en columnas JSONB.
type PhaseRepo struct {
	q Querier
}

// NewPhaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPhaseRepository(q Querier) *PhaseRepo {
	return &PhaseRepo{q: q}
}

func stamp(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.New().String()
	}
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

// UpsertPlanning inserta o actualiza (ON CONFLICT timebox_id) la fase de planning.
// RETURNING devuelve el id existente cuando la fila ya estaba.
func (r *PhaseRepo) UpsertPlanning(ctx context.Context, p *entity.PlanningPhase) error {
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	skills, err := toJSON(p.Skills)
	if err != nil {
		return domain.Persistence("upsert planning", err)
	}
	checklist, err := toJSON(p.Checklist)
	if err != nil {
		return domain.Persistence("upsert planning", err)
	}
	attachments, err := toJSON(p.Attachments)
	if err != nil {
		return domain.Persistence("upsert planning", err)
	}
	query := `
		INSERT INTO planning_phases (id, timebox_id, nombre, codigo, descripcion, fecha_fase, eje, aplicativo, alcance, esfuerzo,
			fecha_inicio, team_leader_id, skills, checklist, adjuntos, completada, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (timebox_id) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			codigo = EXCLUDED.codigo,
			descripcion = EXCLUDED.descripcion,
			fecha_fase = EXCLUDED.fecha_fase,
			eje = EXCLUDED.eje,
			aplicativo = EXCLUDED.aplicativo,
			alcance = EXCLUDED.alcance,
			esfuerzo = EXCLUDED.esfuerzo,
			fecha_inicio = EXCLUDED.fecha_inicio,
			team_leader_id = EXCLUDED.team_leader_id,
			skills = EXCLUDED.skills,
			checklist = EXCLUDED.checklist,
			adjuntos = EXCLUDED.adjuntos,
			completada = EXCLUDED.completada,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err = r.q.QueryRow(ctx, query,
		p.ID, p.TimeboxID, nullIfEmpty(p.Name), nullIfEmpty(p.Code), nullIfEmpty(p.Description), p.PhaseDate,
		nullIfEmpty(p.Axis), nullIfEmpty(p.Application), nullIfEmpty(p.Scope), nullIfEmpty(p.Effort),
		p.StartDate, p.TeamLeaderID, skills, checklist, attachments, p.Completed, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return domain.Persistence("upsert planning", err)
	}
	return nil
}

func (r *PhaseRepo) UpsertKickoff(ctx context.Context, p *entity.KickoffPhase) error {
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	team, err := toJSON(p.Team)
	if err != nil {
		return domain.Persistence("upsert kickoff", err)
	}
	agreements, err := toJSON(p.Agreements)
	if err != nil {
		return domain.Persistence("upsert kickoff", err)
	}
	var financing, compensation []byte
	if p.Financing != nil {
		if financing, err = toJSON(p.Financing); err != nil {
			return domain.Persistence("upsert kickoff", err)
		}
	}
	if p.Compensation != nil {
		if compensation, err = toJSON(p.Compensation); err != nil {
			return domain.Persistence("upsert kickoff", err)
		}
	}
	query := `
		INSERT INTO kickoff_phases (id, timebox_id, fecha_fase, team_movilization, acuerdos, financiamiento, compensacion,
			completada, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (timebox_id) DO UPDATE SET
			fecha_fase = EXCLUDED.fecha_fase,
			team_movilization = EXCLUDED.team_movilization,
			acuerdos = EXCLUDED.acuerdos,
			financiamiento = EXCLUDED.financiamiento,
			compensacion = EXCLUDED.compensacion,
			completada = EXCLUDED.completada,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err = r.q.QueryRow(ctx, query,
		p.ID, p.TimeboxID, p.PhaseDate, team, agreements, financing, compensation,
		p.Completed, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return domain.Persistence("upsert kickoff", err)
	}
	return nil
}

func (r *PhaseRepo) UpsertRefinement(ctx context.Context, p *entity.RefinementPhase) error {
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return r.upsertReview(ctx, "refinement_phases", &p.ID, p.TimeboxID, p.ReviewDate, p.Status, p.Checklist,
		p.Observations, p.Completed, &p.CreatedAt, p.UpdatedAt)
}

func (r *PhaseRepo) UpsertQA(ctx context.Context, p *entity.QAPhase) error {
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return r.upsertReview(ctx, "qa_phases", &p.ID, p.TimeboxID, p.ReviewDate, p.Status, p.Checklist,
		p.Observations, p.Completed, &p.CreatedAt, p.UpdatedAt)
}

// upsertReview refinement y qa comparten columnas.
func (r *PhaseRepo) upsertReview(ctx context.Context, table string, id *string, timeboxID string, reviewDate *time.Time,
	status string, checklist []entity.ChecklistItem, observations string, completed bool, createdAt *time.Time, updatedAt time.Time,
) error {
	list, err := toJSON(checklist)
	if err != nil {
		return domain.Persistence("upsert "+table, err)
	}
	query := `
		INSERT INTO ` + table + ` (id, timebox_id, fecha_revision, estado, checklist, observaciones, completada, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (timebox_id) DO UPDATE SET
			fecha_revision = EXCLUDED.fecha_revision,
			estado = EXCLUDED.estado,
			checklist = EXCLUDED.checklist,
			observaciones = EXCLUDED.observaciones,
			completada = EXCLUDED.completada,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err = r.q.QueryRow(ctx, query,
		*id, timeboxID, reviewDate, nullIfEmpty(status), list, nullIfEmpty(observations), completed, *createdAt, updatedAt,
	).Scan(id, createdAt)
	if err != nil {
		return domain.Persistence("upsert "+table, err)
	}
	return nil
}

func (r *PhaseRepo) UpsertClose(ctx context.Context, p *entity.ClosePhase) error {
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	checklist, err := toJSON(p.Checklist)
	if err != nil {
		return domain.Persistence("upsert close", err)
	}
	lessons, err := toJSON(p.Lessons)
	if err != nil {
		return domain.Persistence("upsert close", err)
	}
	query := `
		INSERT INTO close_phases (id, timebox_id, fecha_cierre, estado, checklist, lecciones, observaciones, completada, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (timebox_id) DO UPDATE SET
			fecha_cierre = EXCLUDED.fecha_cierre,
			estado = EXCLUDED.estado,
			checklist = EXCLUDED.checklist,
			lecciones = EXCLUDED.lecciones,
			observaciones = EXCLUDED.observaciones,
			completada = EXCLUDED.completada,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err = r.q.QueryRow(ctx, query,
		p.ID, p.TimeboxID, p.CloseDate, nullIfEmpty(p.Status), checklist, lessons, nullIfEmpty(p.Observations),
		p.Completed, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return domain.Persistence("upsert close", err)
	}
	return nil
}

// CreateKickoffIfAbsent inserta un kickoff vacío (equipo con los cinco slots en null).
func (r *PhaseRepo) CreateKickoffIfAbsent(ctx context.Context, timeboxID string) (bool, error) {
	team, err := toJSON(entity.TeamMobilization{})
	if err != nil {
		return false, domain.Persistence("create kickoff", err)
	}
	now := time.Now().UTC()
	tag, err := r.q.Exec(ctx, `
		INSERT INTO kickoff_phases (id, timebox_id, team_movilization, acuerdos, completada, created_at, updated_at)
		VALUES ($1, $2, $3, '[]'::jsonb, false, $4, $4)
		ON CONFLICT (timebox_id) DO NOTHING`,
		uuid.New().String(), timeboxID, team, now,
	)
	if err != nil {
		return false, domain.Persistence("create kickoff", err)
	}
	return tag.RowsAffected() > 0, nil
}

// LoadRows devuelve todas las filas de cada tabla de fases para el timebox.
func (r *PhaseRepo) LoadRows(ctx context.Context, timeboxID string) (*entity.PhaseRows, error) {
	rows := &entity.PhaseRows{}
	var err error
	if rows.Planning, err = r.loadPlanning(ctx, timeboxID); err != nil {
		return nil, err
	}
	if rows.Kickoff, err = r.loadKickoff(ctx, timeboxID); err != nil {
		return nil, err
	}
	if rows.Refinement, err = loadReview(ctx, r.q, "refinement_phases", timeboxID, func(id, tb string, d *time.Time, st string, cl []entity.ChecklistItem, obs string, done bool, c, u time.Time) *entity.RefinementPhase {
		return &entity.RefinementPhase{ID: id, TimeboxID: tb, ReviewDate: d, Status: st, Checklist: cl, Observations: obs, Completed: done, CreatedAt: c, UpdatedAt: u}
	}); err != nil {
		return nil, err
	}
	if rows.QA, err = loadReview(ctx, r.q, "qa_phases", timeboxID, func(id, tb string, d *time.Time, st string, cl []entity.ChecklistItem, obs string, done bool, c, u time.Time) *entity.QAPhase {
		return &entity.QAPhase{ID: id, TimeboxID: tb, ReviewDate: d, Status: st, Checklist: cl, Observations: obs, Completed: done, CreatedAt: c, UpdatedAt: u}
	}); err != nil {
		return nil, err
	}
	if rows.Close, err = r.loadClose(ctx, timeboxID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PhaseRepo) loadPlanning(ctx context.Context, timeboxID string) ([]*entity.PlanningPhase, error) {
	query := `
		SELECT id, timebox_id, nombre, codigo, descripcion, fecha_fase, eje, aplicativo, alcance, esfuerzo,
			fecha_inicio, team_leader_id, skills, checklist, adjuntos, completada, created_at, updated_at
		FROM planning_phases WHERE timebox_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, timeboxID)
	if err != nil {
		return nil, domain.Persistence("load planning", err)
	}
	defer rows.Close()

	var list []*entity.PlanningPhase
	for rows.Next() {
		var (
			p                                       entity.PlanningPhase
			name, code, desc, axis, app, scope, eff *string
			skills, checklist, attachments          []byte
		)
		if err := rows.Scan(&p.ID, &p.TimeboxID, &name, &code, &desc, &p.PhaseDate, &axis, &app, &scope, &eff,
			&p.StartDate, &p.TeamLeaderID, &skills, &checklist, &attachments, &p.Completed, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, domain.Persistence("scan planning", err)
		}
		p.Name, p.Code, p.Description = emptyIfNull(name), emptyIfNull(code), emptyIfNull(desc)
		p.Axis, p.Application, p.Scope, p.Effort = emptyIfNull(axis), emptyIfNull(app), emptyIfNull(scope), emptyIfNull(eff)
		if err := fromJSON(skills, &p.Skills); err != nil {
			return nil, domain.Persistence("decode planning skills", err)
		}
		if err := fromJSON(checklist, &p.Checklist); err != nil {
			return nil, domain.Persistence("decode planning checklist", err)
		}
		if err := fromJSON(attachments, &p.Attachments); err != nil {
			return nil, domain.Persistence("decode planning attachments", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("load planning", err)
	}
	return list, nil
}

func (r *PhaseRepo) loadKickoff(ctx context.Context, timeboxID string) ([]*entity.KickoffPhase, error) {
	query := `
		SELECT id, timebox_id, fecha_fase, team_movilization, acuerdos, financiamiento, compensacion, completada, created_at, updated_at
		FROM kickoff_phases WHERE timebox_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, timeboxID)
	if err != nil {
		return nil, domain.Persistence("load kickoff", err)
	}
	defer rows.Close()

	var list []*entity.KickoffPhase
	for rows.Next() {
		var (
			p                                         entity.KickoffPhase
			team, agreements, financing, compensation []byte
		)
		if err := rows.Scan(&p.ID, &p.TimeboxID, &p.PhaseDate, &team, &agreements, &financing, &compensation,
			&p.Completed, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, domain.Persistence("scan kickoff", err)
		}
		if err := fromJSON(team, &p.Team); err != nil {
			return nil, domain.Persistence("decode kickoff team", err)
		}
		if err := fromJSON(agreements, &p.Agreements); err != nil {
			return nil, domain.Persistence("decode kickoff agreements", err)
		}
		if len(financing) > 0 && string(financing) != "null" {
			p.Financing = &entity.Financing{}
			if err := fromJSON(financing, p.Financing); err != nil {
				return nil, domain.Persistence("decode kickoff financing", err)
			}
		}
		if len(compensation) > 0 && string(compensation) != "null" {
			p.Compensation = &entity.CompensationBreakdown{}
			if err := fromJSON(compensation, p.Compensation); err != nil {
				return nil, domain.Persistence("decode kickoff compensation", err)
			}
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("load kickoff", err)
	}
	return list, nil
}

func loadReview[T any](ctx context.Context, q Querier, table, timeboxID string,
	build func(id, timeboxID string, reviewDate *time.Time, status string, checklist []entity.ChecklistItem, observations string, completed bool, createdAt, updatedAt time.Time) *T,
) ([]*T, error) {
	query := `
		SELECT id, timebox_id, fecha_revision, estado, checklist, observaciones, completada, created_at, updated_at
		FROM ` + table + ` WHERE timebox_id = $1 ORDER BY id`
	rows, err := q.Query(ctx, query, timeboxID)
	if err != nil {
		return nil, domain.Persistence("load "+table, err)
	}
	defer rows.Close()

	var list []*T
	for rows.Next() {
		var (
			id, tb               string
			reviewDate           *time.Time
			status, observations *string
			raw                  []byte
			completed            bool
			createdAt, updatedAt time.Time
			checklist            []entity.ChecklistItem
		)
		if err := rows.Scan(&id, &tb, &reviewDate, &status, &raw, &observations, &completed, &createdAt, &updatedAt); err != nil {
			return nil, domain.Persistence("scan "+table, err)
		}
		if err := fromJSON(raw, &checklist); err != nil {
			return nil, domain.Persistence("decode "+table+" checklist", err)
		}
		list = append(list, build(id, tb, reviewDate, emptyIfNull(status), checklist, emptyIfNull(observations), completed, createdAt, updatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("load "+table, err)
	}
	return list, nil
}

func (r *PhaseRepo) loadClose(ctx context.Context, timeboxID string) ([]*entity.ClosePhase, error) {
	query := `
		SELECT id, timebox_id, fecha_cierre, estado, checklist, lecciones, observaciones, completada, created_at, updated_at
		FROM close_phases WHERE timebox_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, timeboxID)
	if err != nil {
		return nil, domain.Persistence("load close", err)
	}
	defer rows.Close()

	var list []*entity.ClosePhase
	for rows.Next() {
		var (
			p                    entity.ClosePhase
			status, observations *string
			checklist, lessons   []byte
		)
		if err := rows.Scan(&p.ID, &p.TimeboxID, &p.CloseDate, &status, &checklist, &lessons, &observations,
			&p.Completed, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, domain.Persistence("scan close", err)
		}
		p.Status, p.Observations = emptyIfNull(status), emptyIfNull(observations)
		if err := fromJSON(checklist, &p.Checklist); err != nil {
			return nil, domain.Persistence("decode close checklist", err)
		}
		if err := fromJSON(lessons, &p.Lessons); err != nil {
			return nil, domain.Persistence("decode close lessons", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("load close", err)
	}
	return list, nil
}

// DeleteByTimebox borra las filas de las cinco tablas de fases.
func (r *PhaseRepo) DeleteByTimebox(ctx context.Context, timeboxID string) error {
	for _, table := range []string{"planning_phases", "kickoff_phases", "refinement_phases", "qa_phases", "close_phases"} {
		if _, err := r.q.Exec(ctx, `DELETE FROM `+table+` WHERE timebox_id = $1`, timeboxID); err != nil {
			return domain.Persistence("delete "+table, err)
		}
	}
	return nil
}
