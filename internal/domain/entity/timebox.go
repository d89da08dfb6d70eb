package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeboxStatus estado global del timebox.
type TimeboxStatus string

// Estados del timebox. Los valores coinciden con la columna timeboxes.estado.
const (
	StatusEnDefinicion TimeboxStatus = "En Definicion"
	StatusDisponible   TimeboxStatus = "Disponible"
	StatusEnEjecucion  TimeboxStatus = "En Ejecucion"
	StatusFinalizado   TimeboxStatus = "Finalizado"
)

// Timebox unidad de trabajo financiada de duración fija.
type Timebox struct {
	ID                string
	TypeID            string // tipo_timebox_id
	ProjectID         string
	BusinessAnalystID *string // opcional
	Amount            *decimal.Decimal
	Status            TimeboxStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TimeboxStats conteo de timeboxes por estado.
type TimeboxStats struct {
	Total        int
	EnDefinicion int
	Disponible   int
	EnEjecucion  int
	Finalizado   int
}

// TimeboxPostulations timebox con el número de postulaciones recibidas en sus ofertas.
type TimeboxPostulations struct {
	Timebox      *Timebox
	Postulations int
}
