package timebox

import "github.com/jhoicas/timebox-api/internal/domain/entity"

// MissingPlanningFields lista los campos obligatorios vacíos del planning.
func MissingPlanningFields(p *entity.PlanningPhase) []string {
	if p == nil {
		return []string{"planning"}
	}
	var missing []string
	check := func(name, v string) {
		if v == "" {
			missing = append(missing, name)
		}
	}
	check("nombre", p.Name)
	check("codigo", p.Code)
	check("eje", p.Axis)
	check("aplicativo", p.Application)
	check("alcance", p.Scope)
	check("esfuerzo", p.Effort)
	if p.StartDate == nil {
		missing = append(missing, "fechaInicio")
	}
	if p.TeamLeaderID == nil || *p.TeamLeaderID == "" {
		missing = append(missing, "teamLeader")
	}
	return missing
}

// IsPlanningComplete predicado puro de completitud del planning.
// El motor confía en el flag Completed del caller; este predicado permite validarlo.
func IsPlanningComplete(p *entity.PlanningPhase) bool {
	return len(MissingPlanningFields(p)) == 0
}
