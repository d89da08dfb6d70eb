package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una postulación.
const (
	PostulationPendiente = "Pendiente"
	PostulationAprobada  = "Aprobada"
	PostulationRechazada = "Rechazada"
)

// PublicationOffer oferta de un timebox (una por timebox).
type PublicationOffer struct {
	ID              string
	TimeboxID       string
	Requested       bool
	Published       bool
	PublicationDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Postulation solicitud de un desarrollador para un rol de la oferta.
// Nunca se borra (salvo en el borrado en cascada del timebox).
type Postulation struct {
	ID              string
	OfferID         string
	Role            string
	ApplicantName   string
	ApplicationDate time.Time
	Status          string
	Assigned        bool
	AssignmentDate  *time.Time
	RejectionReason *string
	RejectionDate   *time.Time
}

// RoleSalary sueldo base semanal vigente de un rol.
type RoleSalary struct {
	RoleID       string
	RoleName     string
	WeeklySalary decimal.Decimal
	Currency     string
	Active       bool
	StartDate    *time.Time // desde cuándo rige el sueldo
}

// RoleSalaryStats totales de sueldos de los roles activos.
type RoleSalaryStats struct {
	TotalRoles      int
	RolesWithSalary int
	WeeklyTotal     decimal.Decimal
	MonthlyTotal    decimal.Decimal
}

// AutoPublication publicación generada automáticamente para un rol a partir de su sueldo semanal.
type AutoPublication struct {
	ID              string
	TimeboxID       string
	Role            string
	WeeklySalary    decimal.Decimal
	Currency        string
	Weeks           int
	TotalFinancing  decimal.Decimal
	Published       bool
	PublicationDate *time.Time
	CreatedAt       time.Time
}
