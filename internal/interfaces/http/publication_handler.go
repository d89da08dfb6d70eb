package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/application/publication"
	"github.com/jhoicas/timebox-api/internal/domain"
)

// PublicationHandler ofertas, postulaciones y publicaciones automáticas.
type PublicationHandler struct {
	wf   *publication.Workflow
	auto *publication.AutoPublisher
}

// NewPublicationHandler construye el handler.
func NewPublicationHandler(wf *publication.Workflow, auto *publication.AutoPublisher) *PublicationHandler {
	return &PublicationHandler{wf: wf, auto: auto}
}

// RequestPublication godoc
// @Summary      Solicitar publicación del timebox
// @Tags         publicacion
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del timebox"
// @Success      201  {object}  dto.OfferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/timeboxes/{id}/publicacion [post]
func (h *PublicationHandler) RequestPublication(c *fiber.Ctx) error {
	offer, err := h.wf.RequestPublication(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewOfferResponse(offer))
}

// ListOffers godoc
// @Summary      Ofertas del timebox
// @Tags         publicacion
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del timebox"
// @Success      200  {array}  dto.OfferResponse
// @Router       /api/timeboxes/{id}/ofertas [get]
func (h *PublicationHandler) ListOffers(c *fiber.Ctx) error {
	list, err := h.wf.ListOffers(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	out := make([]dto.OfferResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.NewOfferResponse(o))
	}
	return c.JSON(out)
}

// Publish godoc
// @Summary      Publicar oferta (el timebox pasa a Disponible)
// @Tags         publicacion
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.PublishResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ofertas/{id}/publicar [put]
func (h *PublicationHandler) Publish(c *fiber.Ctx) error {
	offer, tr, err := h.wf.Publish(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.PublishResponse{
		Offer:         dto.NewOfferResponse(offer),
		Status:        string(tr.To),
		StatusChanged: tr.Changed,
	})
}

// Apply godoc
// @Summary      Postular a una oferta
// @Description  Sin nombre se usa el del token.
// @Tags         postulaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID de la oferta"
// @Param        body  body  dto.ApplyRequest  true  "Rol y nombre del postulante"
// @Success      201   {object}  dto.PostulationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ofertas/{id}/postulaciones [post]
func (h *PublicationHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.ApplicantName == "" {
		in.ApplicantName = GetUserName(c)
	}
	p, err := h.wf.Apply(c.UserContext(), c.Params("id"), in.Role, in.ApplicantName)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPostulationResponse(p))
}

// ListPostulations godoc
// @Summary      Postulaciones de una oferta
// @Tags         postulaciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la oferta"
// @Success      200  {array}  dto.PostulationResponse
// @Router       /api/ofertas/{id}/postulaciones [get]
func (h *PublicationHandler) ListPostulations(c *fiber.Ctx) error {
	list, err := h.wf.ListPostulations(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	out := make([]dto.PostulationResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NewPostulationResponse(p))
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar postulación y asignar el rol en el kickoff
// @Description  Emite el anticipo si el kickoff tiene financiamiento completo. Un fallo de emisión no revierte la aprobación.
// @Tags         postulaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del timebox"
// @Param        body  body  dto.ApproveRequest  true  "Postulación, rol y nombre"
// @Success      200   {object}  dto.ApprovalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/timeboxes/{id}/assign-role [put]
func (h *PublicationHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.wf.Approve(c.UserContext(), c.Params("id"), in.PostulationID, in.RoleKey, in.ApplicantName)
	if err != nil {
		return err
	}
	out := dto.ApprovalResponse{Approved: res.Approved, PaymentEmitted: res.PaymentEmitted, OrderCreated: res.OrderCreated}
	if res.PaymentOrderID != "" {
		out.PaymentOrderID = &res.PaymentOrderID
	}
	if res.PaymentError != nil {
		msg := domain.MessageOf(res.PaymentError)
		out.PaymentError = &msg
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar postulación
// @Tags         postulaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID de la postulación"
// @Param        body  body  dto.RejectRequest  false "Motivo"
// @Success      200   {object}  dto.PostulationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/postulaciones/{id}/rechazar [put]
func (h *PublicationHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	p, err := h.wf.Reject(c.UserContext(), c.Params("id"), in.Reason)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPostulationResponse(p))
}

// ListRoles godoc
// @Summary      Roles disponibles con su financiamiento para el timebox
// @Tags         publicaciones-automaticas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del timebox"
// @Success      200  {array}  dto.RoleResponse
// @Router       /api/timeboxes/{id}/roles-disponibles [get]
func (h *PublicationHandler) ListRoles(c *fiber.Ctx) error {
	out, err := h.auto.ListRoles(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateAutoPublications godoc
// @Summary      Generar publicaciones automáticas por rol
// @Tags         publicaciones-automaticas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del timebox"
// @Success      201  {array}  dto.AutoPublicationResponse
// @Router       /api/timeboxes/{id}/publicaciones-automaticas [post]
func (h *PublicationHandler) CreateAutoPublications(c *fiber.Ctx) error {
	list, err := h.auto.CreateAutoPublications(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	out := make([]dto.AutoPublicationResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NewAutoPublicationResponse(p))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAutoPublications godoc
// @Summary      Publicaciones automáticas del timebox
// @Tags         publicaciones-automaticas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del timebox"
// @Success      200  {array}  dto.AutoPublicationResponse
// @Router       /api/timeboxes/{id}/publicaciones-automaticas [get]
func (h *PublicationHandler) ListAutoPublications(c *fiber.Ctx) error {
	list, err := h.auto.ListAutoPublications(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	out := make([]dto.AutoPublicationResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.NewAutoPublicationResponse(p))
	}
	return c.JSON(out)
}

// PublishAutoPublication godoc
// @Summary      Publicar una publicación automática
// @Tags         publicaciones-automaticas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la publicación"
// @Success      200  {object}  dto.AutoPublicationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/publicaciones-automaticas/{id}/publicar [put]
func (h *PublicationHandler) PublishAutoPublication(c *fiber.Ctx) error {
	p, err := h.auto.PublishAutoPublication(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAutoPublicationResponse(p))
}
