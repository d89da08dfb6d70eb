package lifecycle

import (
	"github.com/jhoicas/timebox-api/internal/domain/entity"
	"github.com/jhoicas/timebox-api/internal/domain/timebox"
)

// pickMostComplete elige la fila de mayor puntaje; empata por id menor.
// Nunca usa la fecha de modificación: la fila más reciente puede ser un duplicado vacío.
func pickMostComplete[T any](rows []*T, score func(*T) int, id func(*T) string) *T {
	var best *T
	bestScore := -1
	for _, row := range rows {
		s := score(row)
		if best == nil || s > bestScore || (s == bestScore && id(row) < id(best)) {
			best, bestScore = row, s
		}
	}
	return best
}

func planningScore(p *entity.PlanningPhase) int {
	s := 0
	if p.TeamLeaderID != nil && *p.TeamLeaderID != "" {
		s += 100
	}
	s += 8 - len(timebox.MissingPlanningFields(p))
	return s
}

func kickoffScore(k *entity.KickoffPhase) int {
	s := 0
	if k.Financing.Complete() {
		s += 100
	}
	for _, role := range entity.TeamRoles {
		if p, _ := k.Team.Get(role); p != nil {
			s += 10
		}
	}
	s += len(k.Agreements)
	return s
}

func reviewScore(status string, checklist []entity.ChecklistItem) int {
	s := len(checklist)
	if status != "" {
		s += 100
	}
	return s
}

func selectPhases(rows *entity.PhaseRows) *entity.Phases {
	if rows == nil {
		return &entity.Phases{}
	}
	return &entity.Phases{
		Planning: pickMostComplete(rows.Planning, planningScore,
			func(p *entity.PlanningPhase) string { return p.ID }),
		Kickoff: pickMostComplete(rows.Kickoff, kickoffScore,
			func(p *entity.KickoffPhase) string { return p.ID }),
		Refinement: pickMostComplete(rows.Refinement,
			func(p *entity.RefinementPhase) int { return reviewScore(p.Status, p.Checklist) },
			func(p *entity.RefinementPhase) string { return p.ID }),
		QA: pickMostComplete(rows.QA,
			func(p *entity.QAPhase) int { return reviewScore(p.Status, p.Checklist) },
			func(p *entity.QAPhase) string { return p.ID }),
		Close: pickMostComplete(rows.Close,
			func(p *entity.ClosePhase) int { return reviewScore(p.Status, p.Checklist) + len(p.Lessons) },
			func(p *entity.ClosePhase) string { return p.ID }),
	}
}
