// Package timebox contiene las reglas puras del ciclo de vida del timebox:
// la máquina de estados, el predicado de completitud del planning y el
// parseo tolerante de etiquetas (con o sin tildes).
package timebox

import "github.com/jhoicas/timebox-api/internal/domain/entity"

// Statuses en orden del ciclo de vida.
var Statuses = []entity.TimeboxStatus{
	entity.StatusEnDefinicion,
	entity.StatusDisponible,
	entity.StatusEnEjecucion,
	entity.StatusFinalizado,
}

// ValidStatus informa si s es uno de los cuatro estados.
func ValidStatus(s entity.TimeboxStatus) bool {
	for _, st := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}

// IsAutomaticTransition informa si from→to es una transición que el motor
// puede aplicar sin intervención de un operador.
//
//	En Definicion → Disponible     (publicación)
//	En Definicion → En Ejecucion   (planning completado sin publicar)
//	Disponible    → En Ejecucion   (planning completado)
//	En Ejecucion  → Finalizado
//
// Cualquier estado puede pasar a Disponible por publicación (R2); eso se
// modela en OnOfferPublished, no aquí.
func IsAutomaticTransition(from, to entity.TimeboxStatus) bool {
	switch from {
	case entity.StatusEnDefinicion:
		return to == entity.StatusDisponible || to == entity.StatusEnEjecucion
	case entity.StatusDisponible:
		return to == entity.StatusEnEjecucion
	case entity.StatusEnEjecucion:
		return to == entity.StatusFinalizado
	}
	return false
}

// OnPlanningCompleted aplica R1 sobre el estado actual.
// changed=false cuando el timebox ya está En Ejecucion o Finalizado: R1 nunca retrocede.
func OnPlanningCompleted(current entity.TimeboxStatus) (next entity.TimeboxStatus, changed bool) {
	if !IsAutomaticTransition(current, entity.StatusEnEjecucion) {
		return current, false
	}
	return entity.StatusEnEjecucion, true
}

// OnOfferPublished aplica R2: publicar fuerza Disponible sin importar el estado previo.
func OnOfferPublished(current entity.TimeboxStatus) (next entity.TimeboxStatus, changed bool) {
	return entity.StatusDisponible, current != entity.StatusDisponible
}
