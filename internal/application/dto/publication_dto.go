package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

// OfferResponse oferta de publicación.
type OfferResponse struct {
	ID              string     `json:"id"`
	TimeboxID       string     `json:"timeboxId"`
	Requested       bool       `json:"solicitada"`
	Published       bool       `json:"publicada"`
	PublicationDate *time.Time `json:"fechaPublicacion"`
}

// PublishResponse oferta publicada y estado resultante del timebox.
type PublishResponse struct {
	Offer         OfferResponse `json:"oferta"`
	Status        string        `json:"estadoTimebox"`
	StatusChanged bool          `json:"estadoCambiado"`
}

// ApplyRequest body para POST /api/ofertas/:id/postulaciones.
type ApplyRequest struct {
	Role          string `json:"rol"`
	ApplicantName string `json:"nombre"`
}

// PostulationResponse postulación.
type PostulationResponse struct {
	ID              string     `json:"id"`
	OfferID         string     `json:"ofertaId"`
	Role            string     `json:"rol"`
	ApplicantName   string     `json:"nombre"`
	ApplicationDate time.Time  `json:"fechaPostulacion"`
	Status          string     `json:"estado"`
	Assigned        bool       `json:"asignado"`
	AssignmentDate  *time.Time `json:"fechaAsignacion"`
	RejectionReason *string    `json:"motivoRechazo"`
	RejectionDate   *time.Time `json:"fechaRechazo"`
}

// ApproveRequest body para PUT /api/timeboxes/:id/assign-role.
type ApproveRequest struct {
	PostulationID string `json:"postulacionId"`
	RoleKey       string `json:"rol"`
	ApplicantName string `json:"nombre"`
}

// ApprovalResponse resultado de aprobar; la falla de emisión viaja como texto sin revertir la aprobación.
type ApprovalResponse struct {
	Approved       bool    `json:"aprobada"`
	PaymentEmitted bool    `json:"pagoEmitido"`
	OrderCreated   bool    `json:"ordenCreada"`
	PaymentOrderID *string `json:"ordenPagoId"`
	PaymentError   *string `json:"errorPago"`
}

// RejectRequest body para PUT /api/postulaciones/:id/rechazar.
type RejectRequest struct {
	Reason *string `json:"motivo"`
}

// AutoPublicationResponse publicación automática por rol.
type AutoPublicationResponse struct {
	ID              string          `json:"id"`
	TimeboxID       string          `json:"timeboxId"`
	Role            string          `json:"rol"`
	WeeklySalary    decimal.Decimal `json:"sueldoSemanal"`
	Currency        string          `json:"moneda"`
	Weeks           int             `json:"semanas"`
	TotalFinancing  decimal.Decimal `json:"financiamientoTotal"`
	Published       bool            `json:"publicada"`
	PublicationDate *time.Time      `json:"fechaPublicacion"`
}

// RoleResponse rol disponible con su sueldo semanal y el total para el timebox.
type RoleResponse struct {
	RoleID         string          `json:"roleId"`
	Name           string          `json:"nombre"`
	WeeklySalary   decimal.Decimal `json:"sueldoSemanal"`
	Currency       string          `json:"moneda"`
	Weeks          int             `json:"semanas"`
	TotalFinancing decimal.Decimal `json:"financiamientoTotal"`
}

// RoleSalaryResponse rol del catálogo con su sueldo vigente.
type RoleSalaryResponse struct {
	RoleID       string          `json:"id"`
	Name         string          `json:"nombre"`
	WeeklySalary decimal.Decimal `json:"sueldoBaseSemanal"`
	Currency     string          `json:"moneda"`
	StartDate    *string         `json:"fechaInicio"`
	Active       bool            `json:"activo"`
}

// UpdateRoleSalaryRequest body para PUT /api/roles/:id/sueldo.
type UpdateRoleSalaryRequest struct {
	WeeklySalary *decimal.Decimal `json:"sueldoBaseSemanal"`
	Currency     string           `json:"moneda,omitempty"`
}

// RoleSalaryStatsResponse totales del catálogo de sueldos activos.
type RoleSalaryStatsResponse struct {
	TotalRoles      int             `json:"totalRoles"`
	RolesWithSalary int             `json:"rolesConSueldo"`
	WeeklyTotal     decimal.Decimal `json:"totalSemanal"`
	MonthlyTotal    decimal.Decimal `json:"totalMensual"`
}

// NewRoleSalaryResponse mapea la entidad.
func NewRoleSalaryResponse(s *entity.RoleSalary) RoleSalaryResponse {
	return RoleSalaryResponse{
		RoleID:       s.RoleID,
		Name:         s.RoleName,
		WeeklySalary: s.WeeklySalary,
		Currency:     s.Currency,
		StartDate:    formatDate(s.StartDate),
		Active:       s.Active,
	}
}

func NewOfferResponse(o *entity.PublicationOffer) OfferResponse {
	return OfferResponse{ID: o.ID, TimeboxID: o.TimeboxID, Requested: o.Requested, Published: o.Published, PublicationDate: o.PublicationDate}
}

func NewPostulationResponse(p *entity.Postulation) PostulationResponse {
	return PostulationResponse{
		ID: p.ID, OfferID: p.OfferID, Role: p.Role, ApplicantName: p.ApplicantName, ApplicationDate: p.ApplicationDate,
		Status: p.Status, Assigned: p.Assigned, AssignmentDate: p.AssignmentDate,
		RejectionReason: p.RejectionReason, RejectionDate: p.RejectionDate,
	}
}

func NewAutoPublicationResponse(p *entity.AutoPublication) AutoPublicationResponse {
	return AutoPublicationResponse{
		ID: p.ID, TimeboxID: p.TimeboxID, Role: p.Role, WeeklySalary: p.WeeklySalary, Currency: p.Currency,
		Weeks: p.Weeks, TotalFinancing: p.TotalFinancing, Published: p.Published, PublicationDate: p.PublicationDate,
	}
}
