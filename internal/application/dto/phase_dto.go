package dto

import (
	"encoding/json"

	"github.com/jhoicas/timebox-api/internal/domain"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

// PlanningInput datos de la fase de planning. Las fechas llegan como texto y se normalizan al día.
type PlanningInput struct {
	Name         string                 `json:"nombre"`
	Code         string                 `json:"codigo"`
	Description  string                 `json:"descripcion"`
	PhaseDate    string                 `json:"fechaFase"`
	Axis         string                 `json:"eje"`
	Application  string                 `json:"aplicativo"`
	Scope        string                 `json:"alcance"`
	Effort       string                 `json:"esfuerzo"`
	StartDate    string                 `json:"fechaInicio"`
	TeamLeaderID *string                `json:"teamLeaderId"`
	Skills       []entity.Skill         `json:"skills"`
	Checklist    []entity.ChecklistItem `json:"checklist"`
	Attachments  []entity.AttachmentRef `json:"adjuntos"`
}

// KickoffInput datos del kickoff. Team reemplaza los cinco slots completos.
type KickoffInput struct {
	PhaseDate  string                   `json:"fechaFase"`
	Team       *entity.TeamMobilization `json:"teamMovilization"`
	Agreements []string                 `json:"acuerdos"`
	Financing  *entity.Financing        `json:"financiamiento"`
}

// ReviewInput datos de refinement y qa.
type ReviewInput struct {
	ReviewDate   string                 `json:"fechaRevision"`
	Status       string                 `json:"estado"`
	Checklist    []entity.ChecklistItem `json:"checklist"`
	Observations string                 `json:"observaciones"`
}

// CloseInput datos del cierre.
type CloseInput struct {
	CloseDate    string                 `json:"fechaCierre"`
	Status       string                 `json:"estado"`
	Checklist    []entity.ChecklistItem `json:"checklist"`
	Lessons      []string               `json:"lecciones"`
	Observations string                 `json:"observaciones"`
}

// PublicationInput solicitud de publicación que acompaña al guardado de una fase.
type PublicationInput struct {
	Request bool `json:"solicitar"`
	Publish bool `json:"publicar"`
}

// SavePhaseBody body para PUT /api/timeboxes/:id/fases/:tipo.
type SavePhaseBody struct {
	Completed   bool              `json:"completada"`
	Strict      bool              `json:"validarCompleto"`
	Data        json.RawMessage   `json:"datos"`
	Publication *PublicationInput `json:"publicacion,omitempty"`
}

// SavePhaseRequest entrada del caso de uso; solo el puntero del tipo indicado está presente.
type SavePhaseRequest struct {
	TimeboxID   string
	Type        entity.PhaseType
	Completed   bool
	Strict      bool
	Planning    *PlanningInput
	Kickoff     *KickoffInput
	Refinement  *ReviewInput
	QA          *ReviewInput
	Close       *CloseInput
	Publication *PublicationInput
}

// ToRequest decodifica Data según el tipo de fase.
func (b SavePhaseBody) ToRequest(timeboxID, phaseType string) (SavePhaseRequest, error) {
	req := SavePhaseRequest{
		TimeboxID:   timeboxID,
		Type:        entity.PhaseType(phaseType),
		Completed:   b.Completed,
		Strict:      b.Strict,
		Publication: b.Publication,
	}
	if !req.Type.Valid() {
		return req, domain.Validation("tipo de fase desconocido: %q", phaseType)
	}
	var target any
	switch req.Type {
	case entity.PhasePlanning:
		req.Planning = &PlanningInput{}
		target = req.Planning
	case entity.PhaseKickoff:
		req.Kickoff = &KickoffInput{}
		target = req.Kickoff
	case entity.PhaseRefinement:
		req.Refinement = &ReviewInput{}
		target = req.Refinement
	case entity.PhaseQA:
		req.QA = &ReviewInput{}
		target = req.QA
	case entity.PhaseClose:
		req.Close = &CloseInput{}
		target = req.Close
	}
	if len(b.Data) > 0 && string(b.Data) != "null" {
		if err := json.Unmarshal(b.Data, target); err != nil {
			return req, domain.Validation("datos de fase inválidos: %v", err)
		}
	}
	return req, nil
}

// PlanningResponse fase de planning guardada.
type PlanningResponse struct {
	ID           string                 `json:"id"`
	TimeboxID    string                 `json:"timeboxId"`
	Name         string                 `json:"nombre"`
	Code         string                 `json:"codigo"`
	Description  string                 `json:"descripcion"`
	PhaseDate    *string                `json:"fechaFase"`
	Axis         string                 `json:"eje"`
	Application  string                 `json:"aplicativo"`
	Scope        string                 `json:"alcance"`
	Effort       string                 `json:"esfuerzo"`
	StartDate    *string                `json:"fechaInicio"`
	TeamLeaderID *string                `json:"teamLeaderId"`
	Skills       []entity.Skill         `json:"skills"`
	Checklist    []entity.ChecklistItem `json:"checklist"`
	Attachments  []entity.AttachmentRef `json:"adjuntos"`
	Completed    bool                   `json:"completada"`
}

// KickoffResponse kickoff guardado, con el desglose de compensación derivado.
type KickoffResponse struct {
	ID           string                        `json:"id"`
	TimeboxID    string                        `json:"timeboxId"`
	PhaseDate    *string                       `json:"fechaFase"`
	Team         entity.TeamMobilization       `json:"teamMovilization"`
	Agreements   []string                      `json:"acuerdos"`
	Financing    *entity.Financing             `json:"financiamiento"`
	Compensation *entity.CompensationBreakdown `json:"compensacion"`
	Completed    bool                          `json:"completada"`
}

// ReviewResponse refinement o qa.
type ReviewResponse struct {
	ID           string                 `json:"id"`
	TimeboxID    string                 `json:"timeboxId"`
	ReviewDate   *string                `json:"fechaRevision"`
	Status       string                 `json:"estado"`
	Checklist    []entity.ChecklistItem `json:"checklist"`
	Observations string                 `json:"observaciones"`
	Completed    bool                   `json:"completada"`
}

// CloseResponse cierre.
type CloseResponse struct {
	ID           string                 `json:"id"`
	TimeboxID    string                 `json:"timeboxId"`
	CloseDate    *string                `json:"fechaCierre"`
	Status       string                 `json:"estado"`
	Checklist    []entity.ChecklistItem `json:"checklist"`
	Lessons      []string               `json:"lecciones"`
	Observations string                 `json:"observaciones"`
	Completed    bool                   `json:"completada"`
}

// PhasesResponse las cinco fases; las ausentes son null.
type PhasesResponse struct {
	Planning   *PlanningResponse `json:"planning"`
	Kickoff    *KickoffResponse  `json:"kickoff"`
	Refinement *ReviewResponse   `json:"refinement"`
	QA         *ReviewResponse   `json:"qa"`
	Close      *CloseResponse    `json:"close"`
}

// SavePhaseResponse resultado de guardar una fase.
type SavePhaseResponse struct {
	Type           string         `json:"tipo"`
	Phase          any            `json:"fase"`
	Status         string         `json:"estadoTimebox"`
	StatusChanged  bool           `json:"estadoCambiado"`
	KickoffCreated bool           `json:"kickoffCreado"`
	Offer          *OfferResponse `json:"oferta,omitempty"`
}

// NewPhasesResponse mapea las fases seleccionadas.
func NewPhasesResponse(p *entity.Phases) PhasesResponse {
	var out PhasesResponse
	if p == nil {
		return out
	}
	if p.Planning != nil {
		out.Planning = NewPlanningResponse(p.Planning)
	}
	if p.Kickoff != nil {
		out.Kickoff = NewKickoffResponse(p.Kickoff)
	}
	if p.Refinement != nil {
		r := p.Refinement
		out.Refinement = &ReviewResponse{ID: r.ID, TimeboxID: r.TimeboxID, ReviewDate: formatDate(r.ReviewDate), Status: r.Status,
			Checklist: r.Checklist, Observations: r.Observations, Completed: r.Completed}
	}
	if p.QA != nil {
		q := p.QA
		out.QA = &ReviewResponse{ID: q.ID, TimeboxID: q.TimeboxID, ReviewDate: formatDate(q.ReviewDate), Status: q.Status,
			Checklist: q.Checklist, Observations: q.Observations, Completed: q.Completed}
	}
	if p.Close != nil {
		out.Close = NewCloseResponse(p.Close)
	}
	return out
}

// NewPhaseResponse mapea una fase cualquiera a su DTO.
func NewPhaseResponse(ph entity.Phase) any {
	switch v := ph.(type) {
	case *entity.PlanningPhase:
		return NewPlanningResponse(v)
	case *entity.KickoffPhase:
		return NewKickoffResponse(v)
	case *entity.RefinementPhase:
		return NewPhasesResponse(&entity.Phases{Refinement: v}).Refinement
	case *entity.QAPhase:
		return NewPhasesResponse(&entity.Phases{QA: v}).QA
	case *entity.ClosePhase:
		return NewCloseResponse(v)
	}
	return nil
}

func NewPlanningResponse(p *entity.PlanningPhase) *PlanningResponse {
	return &PlanningResponse{
		ID: p.ID, TimeboxID: p.TimeboxID, Name: p.Name, Code: p.Code, Description: p.Description,
		PhaseDate: formatDate(p.PhaseDate), Axis: p.Axis, Application: p.Application, Scope: p.Scope,
		Effort: p.Effort, StartDate: formatDate(p.StartDate), TeamLeaderID: p.TeamLeaderID,
		Skills: p.Skills, Checklist: p.Checklist, Attachments: p.Attachments, Completed: p.Completed,
	}
}

func NewKickoffResponse(k *entity.KickoffPhase) *KickoffResponse {
	return &KickoffResponse{
		ID: k.ID, TimeboxID: k.TimeboxID, PhaseDate: formatDate(k.PhaseDate), Team: k.Team,
		Agreements: k.Agreements, Financing: k.Financing, Compensation: k.Compensation, Completed: k.Completed,
	}
}

func NewCloseResponse(c *entity.ClosePhase) *CloseResponse {
	return &CloseResponse{
		ID: c.ID, TimeboxID: c.TimeboxID, CloseDate: formatDate(c.CloseDate), Status: c.Status,
		Checklist: c.Checklist, Lessons: c.Lessons, Observations: c.Observations, Completed: c.Completed,
	}
}
