package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
)

var _ repository.PublicationRepository = (*PublicationRepo)(nil)

// PublicationRepo ofertas de publicación (UNIQUE timebox_id).
type PublicationRepo struct {
	q Querier
}

// NewPublicationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPublicationRepository(q Querier) *PublicationRepo {
	return &PublicationRepo{q: q}
}

const offerColumns = `id, timebox_id, solicitada, publicada, fecha_publicacion, created_at, updated_at`

func (r *PublicationRepo) Upsert(ctx context.Context, o *entity.PublicationOffer) error {
	stamp(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	query := `
		INSERT INTO publicacion_ofertas (` + offerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (timebox_id) DO UPDATE SET
			solicitada = EXCLUDED.solicitada,
			publicada = EXCLUDED.publicada,
			fecha_publicacion = EXCLUDED.fecha_publicacion,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		o.ID, o.TimeboxID, o.Requested, o.Published, o.PublicationDate, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return domain.Persistence("upsert offer", err)
	}
	return nil
}

func (r *PublicationRepo) GetByID(ctx context.Context, id string) (*entity.PublicationOffer, error) {
	o, err := scanOffer(r.q.QueryRow(ctx, `SELECT `+offerColumns+` FROM publicacion_ofertas WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.Persistence("get offer", err)
	}
	return o, nil
}

func (r *PublicationRepo) GetByTimebox(ctx context.Context, timeboxID string) (*entity.PublicationOffer, error) {
	o, err := scanOffer(r.q.QueryRow(ctx, `SELECT `+offerColumns+` FROM publicacion_ofertas WHERE timebox_id = $1`, timeboxID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.Persistence("get offer by timebox", err)
	}
	return o, nil
}

func (r *PublicationRepo) ListByTimebox(ctx context.Context, timeboxID string) ([]*entity.PublicationOffer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+offerColumns+` FROM publicacion_ofertas WHERE timebox_id = $1 ORDER BY created_at`, timeboxID)
	if err != nil {
		return nil, domain.Persistence("list offers", err)
	}
	defer rows.Close()

	var list []*entity.PublicationOffer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, domain.Persistence("scan offer", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list offers", err)
	}
	return list, nil
}

func (r *PublicationRepo) DeleteByTimebox(ctx context.Context, timeboxID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM publicacion_ofertas WHERE timebox_id = $1`, timeboxID); err != nil {
		return domain.Persistence("delete offers", err)
	}
	return nil
}

func scanOffer(row rowScanner) (*entity.PublicationOffer, error) {
	var o entity.PublicationOffer
	if err := row.Scan(&o.ID, &o.TimeboxID, &o.Requested, &o.Published, &o.PublicationDate, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

var _ repository.PostulationRepository = (*PostulationRepo)(nil)

// PostulationRepo postulaciones a ofertas.
type PostulationRepo struct {
	q Querier
}

// NewPostulationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPostulationRepository(q Querier) *PostulationRepo {
	return &PostulationRepo{q: q}
}

const postulationColumns = `id, oferta_id, rol, nombre_postulante, fecha_postulacion, estado, asignado, fecha_asignacion, motivo_rechazo, fecha_rechazo`

func (r *PostulationRepo) Create(ctx context.Context, p *entity.Postulation) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.ApplicationDate.IsZero() {
		p.ApplicationDate = time.Now().UTC()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO postulaciones (`+postulationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.OfferID, p.Role, p.ApplicantName, p.ApplicationDate, p.Status, p.Assigned,
		p.AssignmentDate, p.RejectionReason, p.RejectionDate,
	)
	if err != nil {
		return domain.Persistence("insert postulation", err)
	}
	return nil
}

func (r *PostulationRepo) GetByID(ctx context.Context, id string) (*entity.Postulation, error) {
	p, err := scanPostulation(r.q.QueryRow(ctx, `SELECT `+postulationColumns+` FROM postulaciones WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.Persistence("get postulation", err)
	}
	return p, nil
}

func (r *PostulationRepo) ListByOffer(ctx context.Context, offerID string) ([]*entity.Postulation, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+postulationColumns+` FROM postulaciones WHERE oferta_id = $1 ORDER BY fecha_postulacion, id`, offerID)
	if err != nil {
		return nil, domain.Persistence("list postulations", err)
	}
	defer rows.Close()

	var list []*entity.Postulation
	for rows.Next() {
		p, err := scanPostulation(rows)
		if err != nil {
			return nil, domain.Persistence("scan postulation", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list postulations", err)
	}
	return list, nil
}

// Update persiste los campos mutables (estado, asignación, rechazo).
func (r *PostulationRepo) Update(ctx context.Context, p *entity.Postulation) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE postulaciones
		SET estado = $2, asignado = $3, fecha_asignacion = $4, motivo_rechazo = $5, fecha_rechazo = $6
		WHERE id = $1`,
		p.ID, p.Status, p.Assigned, p.AssignmentDate, p.RejectionReason, p.RejectionDate,
	)
	if err != nil {
		return domain.Persistence("update postulation", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("postulación %s no encontrada", p.ID)
	}
	return nil
}

func (r *PostulationRepo) DeleteByTimebox(ctx context.Context, timeboxID string) error {
	_, err := r.q.Exec(ctx, `
		DELETE FROM postulaciones
		WHERE oferta_id IN (SELECT id FROM publicacion_ofertas WHERE timebox_id = $1)`, timeboxID)
	if err != nil {
		return domain.Persistence("delete postulations", err)
	}
	return nil
}

func scanPostulation(row rowScanner) (*entity.Postulation, error) {
	var p entity.Postulation
	if err := row.Scan(&p.ID, &p.OfferID, &p.Role, &p.ApplicantName, &p.ApplicationDate, &p.Status, &p.Assigned,
		&p.AssignmentDate, &p.RejectionReason, &p.RejectionDate); err != nil {
		return nil, err
	}
	return &p, nil
}
