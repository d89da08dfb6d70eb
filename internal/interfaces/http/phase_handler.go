package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/application/lifecycle"
)

// PhaseHandler guarda y carga las fases de un timebox.
type PhaseHandler struct {
	svc *lifecycle.PhaseService
}

// NewPhaseHandler construye el handler.
func NewPhaseHandler(svc *lifecycle.PhaseService) *PhaseHandler {
	return &PhaseHandler{svc: svc}
}

// Load godoc
// @Summary      Fases del timebox
// @Tags         fases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del timebox"
// @Success      200  {object}  dto.PhasesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/timeboxes/{id}/fases [get]
func (h *PhaseHandler) Load(c *fiber.Ctx) error {
	out, err := h.svc.LoadPhases(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar fase (planning, kickoff, refinement, qa, close)
// @Description  Guardar el planning completado crea el kickoff y pasa el timebox a En Ejecucion.
// @Tags         fases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del timebox"
// @Param        tipo  path  string             true  "Tipo de fase"
// @Param        body  body  dto.SavePhaseBody  true  "Datos de la fase"
// @Success      200   {object}  dto.SavePhaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/timeboxes/{id}/fases/{tipo} [put]
func (h *PhaseHandler) Save(c *fiber.Ctx) error {
	var body dto.SavePhaseBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	req, err := body.ToRequest(c.Params("id"), c.Params("tipo"))
	if err != nil {
		return err
	}
	out, err := h.svc.SavePhase(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
