package lifecycle

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// ParseDate normaliza un texto a un día de calendario (medianoche UTC).
// Vacío, inválido o fuera de rango devuelve nil: la fecha se guarda como ausente.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Year() < 1900 || t.Year() > 9999 {
			return nil
		}
		// Se respeta el día tal como fue escrito, sin convertir la zona.
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &d
	}
	return nil
}
