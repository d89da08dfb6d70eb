package dto

import "time"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateLayout formato de fecha de calendario en las respuestas.
const DateLayout = "2006-01-02"

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
