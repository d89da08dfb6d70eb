package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/application/usecase"
)

// RoleHandler catálogo de roles y sueldos semanales.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// List godoc
// @Summary      Roles con su sueldo base semanal
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RoleSalaryResponse
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener rol
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del rol"
// @Success      200  {object}  dto.RoleSalaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [get]
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateSalary godoc
// @Summary      Actualizar sueldo semanal de un rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del rol"
// @Param        body  body  dto.UpdateRoleSalaryRequest  true  "Sueldo y moneda ISO 4217"
// @Success      200   {object}  dto.RoleSalaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roles/{id}/sueldo [put]
func (h *RoleHandler) UpdateSalary(c *fiber.Ctx) error {
	var in dto.UpdateRoleSalaryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateSalary(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Totales semanal y mensual de sueldos
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RoleSalaryStatsResponse
// @Router       /api/roles/stats [get]
func (h *RoleHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}
