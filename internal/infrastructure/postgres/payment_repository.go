package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/repository"
)

var _ repository.PaymentOrderRepository = (*PaymentOrderRepo)(nil)

// PaymentOrderRepo órdenes de pago. Solo estado y updated_at cambian tras el insert.
type PaymentOrderRepo struct {
	q Querier
}

// NewPaymentOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentOrderRepository(q Querier) *PaymentOrderRepo {
	return &PaymentOrderRepo{q: q}
}

const orderColumns = `id, developer_id, monto, moneda, concepto, fecha_emision, estado, created_at, updated_at`

func (r *PaymentOrderRepo) Create(ctx context.Context, o *entity.PaymentOrder) error {
	stamp(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	_, err := r.q.Exec(ctx, `
		INSERT INTO ordenes_pago (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		o.ID, o.PayeeID, o.Amount, o.Currency, o.Concept, o.IssueDate, o.Status, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return domain.Persistence("insert payment order", err)
	}
	return nil
}

func (r *PaymentOrderRepo) GetByID(ctx context.Context, id string) (*entity.PaymentOrder, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM ordenes_pago WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, domain.Persistence("get payment order", err)
	}
	return o, nil
}

// List filtra por estado y/o beneficiario; los filtros vacíos se ignoran.
func (r *PaymentOrderRepo) List(ctx context.Context, f repository.PaymentOrderFilter) ([]*entity.PaymentOrder, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+orderColumns+` FROM ordenes_pago
		WHERE ($1::text IS NULL OR estado = $1)
		  AND ($2::text IS NULL OR developer_id = $2)
		ORDER BY fecha_emision DESC, created_at DESC`,
		nullIfEmpty(f.Status), nullIfEmpty(f.PayeeID),
	)
	if err != nil {
		return nil, domain.Persistence("list payment orders", err)
	}
	defer rows.Close()

	var list []*entity.PaymentOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, domain.Persistence("scan payment order", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list payment orders", err)
	}
	return list, nil
}

func (r *PaymentOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE ordenes_pago SET estado = $2, updated_at = $3 WHERE id = $1`, id, status, time.Now().UTC())
	if err != nil {
		return domain.Persistence("update payment order status", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("orden de pago %s no encontrada", id)
	}
	return nil
}

func scanOrder(row rowScanner) (*entity.PaymentOrder, error) {
	var o entity.PaymentOrder
	if err := row.Scan(&o.ID, &o.PayeeID, &o.Amount, &o.Currency, &o.Concept, &o.IssueDate, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo pagos (append-only).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	var (
		fileURL, fileType *string
		fileSize          *int64
	)
	if p.Attachment != nil {
		fileURL, fileType = nullIfEmpty(p.Attachment.URL), nullIfEmpty(p.Attachment.ContentType)
		size := p.Attachment.Size
		fileSize = &size
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO pagos (id, orden_id, developer_id, monto, moneda, metodo, referencia, fecha_pago,
			archivo_url, archivo_tipo, archivo_size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.OrderID, p.PayeeID, p.Amount, p.Currency, p.Method, p.Reference, p.PaidAt,
		fileURL, fileType, fileSize, p.CreatedAt,
	)
	if err != nil {
		return domain.Persistence("insert payment", err)
	}
	return nil
}

func (r *PaymentRepo) ListByOrders(ctx context.Context, orderIDs []string) ([]*entity.Payment, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, orden_id, developer_id, monto, moneda, metodo, referencia, fecha_pago,
			archivo_url, archivo_tipo, archivo_size, created_at
		FROM pagos WHERE orden_id = ANY($1)
		ORDER BY fecha_pago, created_at`, orderIDs)
	if err != nil {
		return nil, domain.Persistence("list payments", err)
	}
	defer rows.Close()

	var list []*entity.Payment
	for rows.Next() {
		var (
			p                 entity.Payment
			fileURL, fileType *string
			fileSize          *int64
		)
		if err := rows.Scan(&p.ID, &p.OrderID, &p.PayeeID, &p.Amount, &p.Currency, &p.Method, &p.Reference, &p.PaidAt,
			&fileURL, &fileType, &fileSize, &p.CreatedAt); err != nil {
			return nil, domain.Persistence("scan payment", err)
		}
		if fileURL != nil {
			p.Attachment = &entity.AttachmentRef{URL: *fileURL, ContentType: emptyIfNull(fileType)}
			if fileSize != nil {
				p.Attachment.Size = *fileSize
			}
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list payments", err)
	}
	return list, nil
}
