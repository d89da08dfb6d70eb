package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Cada uno corresponde a un tipo de fallo verificable por máquina (ver Kind).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidState = errors.New("estado inválido para la transición solicitada")
	ErrValidation   = errors.New("datos inválidos")
	ErrPersistence  = errors.New("error de persistencia")
	ErrForbidden    = errors.New("acceso denegado")
	ErrUnauthorized = errors.New("no autorizado")
)

// Kind clasifica un error de dominio.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindInvalidState Kind = "INVALID_STATE"
	KindValidation   Kind = "VALIDATION"
	KindPersistence  Kind = "PERSISTENCE"
	KindForbidden    Kind = "FORBIDDEN"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindInternal     Kind = "INTERNAL"
)

// Error es un fallo tipado con mensaje legible para el usuario.
// errors.Is(err, ErrNotFound) funciona sobre cualquier *Error de tipo KindNotFound.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is permite comparar contra los sentinelas del paquete.
func (e *Error) Is(target error) bool {
	return sentinelFor(e.Kind) == target
}

func sentinelFor(k Kind) error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindInvalidState:
		return ErrInvalidState
	case KindValidation:
		return ErrValidation
	case KindPersistence:
		return ErrPersistence
	case KindForbidden:
		return ErrForbidden
	case KindUnauthorized:
		return ErrUnauthorized
	}
	return nil
}

// NotFound construye un error KindNotFound.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidState construye un error KindInvalidState.
func InvalidState(format string, args ...any) error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// Validation construye un error KindValidation.
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Persistence envuelve un fallo de I/O del colaborador de persistencia.
// No se reintenta en el core.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return &Error{Kind: KindPersistence, Message: op, Err: err}
}

// KindOf devuelve el tipo de un error (KindInternal si no es de dominio).
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	}
	return KindInternal
}

// MessageOf devuelve el mensaje legible de un error de dominio.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
