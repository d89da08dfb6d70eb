package timebox

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

// Fold quita tildes, pasa a minúsculas y colapsa espacios.
// "En Definición" y "en  definicion" producen la misma clave.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// ParseStatus interpreta una etiqueta de estado con o sin tildes.
func ParseStatus(label string) (entity.TimeboxStatus, bool) {
	key := Fold(label)
	for _, st := range Statuses {
		if Fold(string(st)) == key {
			return st, true
		}
	}
	return "", false
}

// ParseTeamRole interpreta la clave de un slot del equipo.
// Acepta "solutionDeveloper", "solution_developer" o "Solution Developer".
func ParseTeamRole(key string) (entity.TeamRole, bool) {
	compact := compactKey(key)
	for _, r := range entity.TeamRoles {
		if compactKey(string(r)) == compact {
			return r, true
		}
	}
	return "", false
}

func compactKey(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '_' || r == '-' {
			return -1
		}
		return r
	}, Fold(s))
}

var effortWeeks = regexp.MustCompile(`(\d+)\s*sem`)

// ParseEffortWeeks convierte el esfuerzo del planning ("4 semanas", "2sem") a semanas.
// Sin esfuerzo o con un formato distinto se asume 1 semana.
func ParseEffortWeeks(effort string) int {
	m := effortWeeks.FindStringSubmatch(Fold(effort))
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 1
	}
	return n
}
