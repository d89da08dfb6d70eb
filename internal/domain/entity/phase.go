package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PhaseType identifica cada variante de fase.
type PhaseType string

const (
	PhasePlanning   PhaseType = "planning"
	PhaseKickoff    PhaseType = "kickoff"
	PhaseRefinement PhaseType = "refinement"
	PhaseQA         PhaseType = "qa"
	PhaseClose      PhaseType = "close"
)

// PhaseTypes en orden de ejecución.
var PhaseTypes = []PhaseType{PhasePlanning, PhaseKickoff, PhaseRefinement, PhaseQA, PhaseClose}

// Valid informa si el tipo de fase es conocido.
func (t PhaseType) Valid() bool {
	for _, pt := range PhaseTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// Skill habilidad requerida en el planning (se guarda como JSON).
type Skill struct {
	Type string `json:"tipo"`
	Name string `json:"nombre"`
}

// ChecklistItem elemento de checklist de una fase (se guarda como JSON).
type ChecklistItem struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// AttachmentRef referencia opaca a un archivo gestionado por el servicio de archivos.
type AttachmentRef struct {
	ID          string `json:"id,omitempty"`
	URL         string `json:"url"`
	ContentType string `json:"tipo,omitempty"`
	Size        int64  `json:"size,omitempty"`
}

// PlanningPhase primera fase: definición del alcance y del equipo líder.
type PlanningPhase struct {
	ID           string
	TimeboxID    string
	Name         string
	Code         string
	Description  string
	PhaseDate    *time.Time
	Axis         string // eje
	Application  string // aplicativo
	Scope        string // alcance
	Effort       string // esfuerzo, ej. "4 semanas"
	StartDate    *time.Time
	TeamLeaderID *string
	Skills       []Skill
	Checklist    []ChecklistItem
	Attachments  []AttachmentRef
	Completed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PersonRef referencia a una persona en un slot del equipo.
type PersonRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"nombre"`
}

// TeamRole clave de un slot de la movilización del equipo.
type TeamRole string

const (
	RoleBusinessAmbassador TeamRole = "businessAmbassador"
	RoleSolutionDeveloper  TeamRole = "solutionDeveloper"
	RoleSolutionTester     TeamRole = "solutionTester"
	RoleBusinessAdvisor    TeamRole = "businessAdvisor"
	RoleTechnicalAdvisor   TeamRole = "technicalAdvisor"
)

// TeamRoles los cinco slots, en orden estable.
var TeamRoles = []TeamRole{
	RoleBusinessAmbassador,
	RoleSolutionDeveloper,
	RoleSolutionTester,
	RoleBusinessAdvisor,
	RoleTechnicalAdvisor,
}

// TeamMobilization mapa de cinco slots; los slots vacíos se serializan como null.
type TeamMobilization struct {
	BusinessAmbassador *PersonRef `json:"businessAmbassador"`
	SolutionDeveloper  *PersonRef `json:"solutionDeveloper"`
	SolutionTester     *PersonRef `json:"solutionTester"`
	BusinessAdvisor    *PersonRef `json:"businessAdvisor"`
	TechnicalAdvisor   *PersonRef `json:"technicalAdvisor"`
}

func (t *TeamMobilization) slot(role TeamRole) **PersonRef {
	switch role {
	case RoleBusinessAmbassador:
		return &t.BusinessAmbassador
	case RoleSolutionDeveloper:
		return &t.SolutionDeveloper
	case RoleSolutionTester:
		return &t.SolutionTester
	case RoleBusinessAdvisor:
		return &t.BusinessAdvisor
	case RoleTechnicalAdvisor:
		return &t.TechnicalAdvisor
	}
	return nil
}

// Get devuelve la persona del slot (nil si está vacío). ok=false si el rol no existe.
func (t TeamMobilization) Get(role TeamRole) (*PersonRef, bool) {
	p := t.slot(role)
	if p == nil {
		return nil, false
	}
	return *p, true
}

// Assign escribe la persona en el slot indicado sin tocar los demás.
func (t *TeamMobilization) Assign(role TeamRole, person PersonRef) bool {
	p := t.slot(role)
	if p == nil {
		return false
	}
	*p = &person
	return true
}

// Financing descriptor de financiamiento del kickoff.
// Los campos numéricos son opcionales: si falta alguno no se emite anticipo.
type Financing struct {
	BaseAmount        *decimal.Decimal `json:"montoBase"`
	AdvancePercentage *decimal.Decimal `json:"porcentajeAnticipado"`
	Currency          string           `json:"moneda"`
}

// Complete informa si el descriptor tiene ambos valores numéricos.
func (f *Financing) Complete() bool {
	return f != nil && f.BaseAmount != nil && f.AdvancePercentage != nil
}

// CompensationBreakdown desglose derivado del financiamiento.
type CompensationBreakdown struct {
	AdvanceAmount   decimal.Decimal `json:"montoAnticipo"`
	RemainingAmount decimal.Decimal `json:"montoRestante"`
	Currency        string          `json:"moneda"`
}

// KickoffPhase fase de arranque: equipo, acuerdos y financiamiento.
type KickoffPhase struct {
	ID           string
	TimeboxID    string
	PhaseDate    *time.Time
	Team         TeamMobilization
	Agreements   []string
	Financing    *Financing
	Compensation *CompensationBreakdown
	Completed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefinementPhase fase de refinamiento.
type RefinementPhase struct {
	ID           string
	TimeboxID    string
	ReviewDate   *time.Time
	Status       string
	Checklist    []ChecklistItem
	Observations string
	Completed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// QAPhase fase de aseguramiento de calidad.
type QAPhase struct {
	ID           string
	TimeboxID    string
	ReviewDate   *time.Time
	Status       string
	Checklist    []ChecklistItem
	Observations string
	Completed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ClosePhase fase de cierre.
type ClosePhase struct {
	ID           string
	TimeboxID    string
	CloseDate    *time.Time
	Status       string
	Checklist    []ChecklistItem
	Lessons      []string
	Observations string
	Completed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Phases una fase por tipo (nil = no existe).
type Phases struct {
	Planning   *PlanningPhase
	Kickoff    *KickoffPhase
	Refinement *RefinementPhase
	QA         *QAPhase
	Close      *ClosePhase
}

// PhaseRows filas crudas tal como están en la base; puede haber duplicados heredados.
type PhaseRows struct {
	Planning   []*PlanningPhase
	Kickoff    []*KickoffPhase
	Refinement []*RefinementPhase
	QA         []*QAPhase
	Close      []*ClosePhase
}

// Phase comportamiento común de las cinco variantes.
type Phase interface {
	Type() PhaseType
	TimeboxRef() string
	IsCompleted() bool
}

var (
	_ Phase = (*PlanningPhase)(nil)
	_ Phase = (*KickoffPhase)(nil)
	_ Phase = (*RefinementPhase)(nil)
	_ Phase = (*QAPhase)(nil)
	_ Phase = (*ClosePhase)(nil)
)

func (p *PlanningPhase) Type() PhaseType      { return PhasePlanning }
func (p *PlanningPhase) TimeboxRef() string   { return p.TimeboxID }
func (p *PlanningPhase) IsCompleted() bool    { return p.Completed }
func (p *KickoffPhase) Type() PhaseType       { return PhaseKickoff }
func (p *KickoffPhase) TimeboxRef() string    { return p.TimeboxID }
func (p *KickoffPhase) IsCompleted() bool     { return p.Completed }
func (p *RefinementPhase) Type() PhaseType    { return PhaseRefinement }
func (p *RefinementPhase) TimeboxRef() string { return p.TimeboxID }
func (p *RefinementPhase) IsCompleted() bool  { return p.Completed }
func (p *QAPhase) Type() PhaseType            { return PhaseQA }
func (p *QAPhase) TimeboxRef() string         { return p.TimeboxID }
func (p *QAPhase) IsCompleted() bool          { return p.Completed }
func (p *ClosePhase) Type() PhaseType         { return PhaseClose }
func (p *ClosePhase) TimeboxRef() string      { return p.TimeboxID }
func (p *ClosePhase) IsCompleted() bool       { return p.Completed }
