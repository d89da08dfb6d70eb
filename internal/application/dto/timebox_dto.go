package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

// CreateTimeboxRequest body para POST /api/timeboxes.
type CreateTimeboxRequest struct {
	TypeID            string           `json:"tipoTimeboxId"`
	ProjectID         string           `json:"projectId"`
	BusinessAnalystID *string          `json:"businessAnalystId,omitempty"`
	Amount            *decimal.Decimal `json:"monto,omitempty"`
	Status            string           `json:"estado,omitempty"` // vacío = En Definicion
}

// UpdateTimeboxRequest body para PUT /api/timeboxes/:id. Solo se aplican los campos presentes.
type UpdateTimeboxRequest struct {
	TypeID            *string          `json:"tipoTimeboxId,omitempty"`
	ProjectID         *string          `json:"projectId,omitempty"`
	BusinessAnalystID *string          `json:"businessAnalystId,omitempty"`
	Amount            *decimal.Decimal `json:"monto,omitempty"`
	Status            *string          `json:"estado,omitempty"`
}

// UpdateStatusRequest body para PATCH /api/timeboxes/:id/estado (override del operador).
type UpdateStatusRequest struct {
	Status string `json:"estado"`
}

// TimeboxResponse representación de un timebox.
type TimeboxResponse struct {
	ID                string           `json:"id"`
	TypeID            string           `json:"tipoTimeboxId"`
	ProjectID         string           `json:"projectId"`
	BusinessAnalystID *string          `json:"businessAnalystId"`
	Amount            *decimal.Decimal `json:"monto"`
	Status            string           `json:"estado"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// TimeboxStatusResponse respuesta de get-timebox-status.
type TimeboxStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"estado"`
}

// TimeboxStatsResponse conteos por estado.
type TimeboxStatsResponse struct {
	Total        int `json:"total"`
	EnDefinicion int `json:"enDefinicion"`
	Disponible   int `json:"disponible"`
	EnEjecucion  int `json:"enEjecucion"`
	Finalizado   int `json:"finalizado"`
}

// TimeboxPostulationsResponse timebox de la cola del aprobador.
type TimeboxPostulationsResponse struct {
	TimeboxResponse
	Postulations int `json:"numPostulaciones"`
}

// NewTimeboxResponse mapea la entidad.
func NewTimeboxResponse(tb *entity.Timebox) TimeboxResponse {
	return TimeboxResponse{
		ID:                tb.ID,
		TypeID:            tb.TypeID,
		ProjectID:         tb.ProjectID,
		BusinessAnalystID: tb.BusinessAnalystID,
		Amount:            tb.Amount,
		Status:            string(tb.Status),
		CreatedAt:         tb.CreatedAt,
		UpdatedAt:         tb.UpdatedAt,
	}
}

// NewTimeboxStatsResponse mapea los conteos.
func NewTimeboxStatsResponse(s *entity.TimeboxStats) TimeboxStatsResponse {
	return TimeboxStatsResponse{
		Total:        s.Total,
		EnDefinicion: s.EnDefinicion,
		Disponible:   s.Disponible,
		EnEjecucion:  s.EnEjecucion,
		Finalizado:   s.Finalizado,
	}
}
