package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/application/usecase"
)

// TimeboxHandler maneja alta, consulta, override de estado y borrado de timeboxes.
type TimeboxHandler struct {
	uc *usecase.TimeboxUseCase
}

// NewTimeboxHandler construye el handler.
func NewTimeboxHandler(uc *usecase.TimeboxUseCase) *TimeboxHandler {
	return &TimeboxHandler{uc: uc}
}

// Create godoc
// @Summary      Crear timebox
// @Tags         timeboxes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTimeboxRequest  true  "Datos del timebox"
// @Success      201   {object}  dto.TimeboxResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/timeboxes [post]
func (h *TimeboxHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTimeboxRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener timebox
// @Tags         timeboxes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del timebox"
// @Success      200  {object}  dto.TimeboxResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/timeboxes/{id} [get]
func (h *TimeboxHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetStatus godoc
// @Summary      Estado actual del timebox
// @Tags         timeboxes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del timebox"
// @Success      200  {object}  dto.TimeboxStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/timeboxes/{id}/status [get]
func (h *TimeboxHandler) GetStatus(c *fiber.Ctx) error {
	out, err := h.uc.GetStatus(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado (override del operador)
// @Tags         timeboxes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del timebox"
// @Param        body  body  dto.UpdateStatusRequest  true  "Nuevo estado, con o sin tildes"
// @Success      200   {object}  dto.TimeboxStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/timeboxes/{id}/estado [patch]
func (h *TimeboxHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar timeboxes
// @Tags         timeboxes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TimeboxResponse
// @Router       /api/timeboxes [get]
func (h *TimeboxHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar timebox (parcial)
// @Tags         timeboxes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del timebox"
// @Param        body  body  dto.UpdateTimeboxRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TimeboxResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/timeboxes/{id} [put]
func (h *TimeboxHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTimeboxRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// WithPostulations godoc
// @Summary      Timeboxes con postulaciones (cola del aprobador)
// @Tags         timeboxes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TimeboxPostulationsResponse
// @Router       /api/timeboxes/with-postulations [get]
func (h *TimeboxHandler) WithPostulations(c *fiber.Ctx) error {
	out, err := h.uc.WithPostulations(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListByProject godoc
// @Summary      Timeboxes de un proyecto
// @Tags         timeboxes
// @Security     Bearer
// @Produce      json
// @Param        projectId  path  string  true  "ID del proyecto"
// @Success      200  {array}  dto.TimeboxResponse
// @Router       /api/timeboxes/project/{projectId} [get]
func (h *TimeboxHandler) ListByProject(c *fiber.Ctx) error {
	out, err := h.uc.ListByProject(c.UserContext(), c.Params("projectId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Conteo de timeboxes por estado
// @Tags         timeboxes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TimeboxStatsResponse
// @Router       /api/timeboxes/stats [get]
func (h *TimeboxHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar timebox con fases, ofertas y postulaciones
// @Tags         timeboxes
// @Security     Bearer
// @Param        id   path  string  true  "ID del timebox"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/timeboxes/{id} [delete]
func (h *TimeboxHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
