package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/timebox-api/internal/application/dto"
	"github.com/jhoicas/timebox-api/internal/application/finance"
)

// FinanceHandler órdenes de pago, comprobantes y vista "mis pagos".
type FinanceHandler struct {
	svc *finance.OrderService
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(svc *finance.OrderService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

// ListOrders godoc
// @Summary      Listar órdenes de pago
// @Tags         finanzas
// @Security     Bearer
// @Produce      json
// @Param        estado       query  string  false  "Pendiente | Aprobada | Pagada | Rechazada"
// @Param        developerId  query  string  false  "Beneficiario"
// @Success      200  {array}  dto.PaymentOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/finanzas/ordenes [get]
func (h *FinanceHandler) ListOrders(c *fiber.Ctx) error {
	list, err := h.svc.ListOrders(c.UserContext(), c.Query("estado"), c.Query("developerId"))
	if err != nil {
		return err
	}
	out := make([]dto.PaymentOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.NewPaymentOrderResponse(o))
	}
	return c.JSON(out)
}

// CreateOrder godoc
// @Summary      Crear orden de pago manual
// @Tags         finanzas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.PaymentOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finanzas/ordenes [post]
func (h *FinanceHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	o, err := h.svc.CreateOrder(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPaymentOrderResponse(o))
}

// UpdateOrderStatus godoc
// @Summary      Cambiar estado de una orden
// @Tags         finanzas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.PaymentOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/finanzas/ordenes/{id}/estado [patch]
func (h *FinanceHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	o, err := h.svc.UpdateOrderStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPaymentOrderResponse(o))
}

// RegisterReceipt godoc
// @Summary      Registrar comprobante de pago (la orden queda Pagada)
// @Tags         finanzas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la orden"
// @Param        body  body  dto.RegisterReceiptRequest  true  "Referencia y archivo ya subido"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/finanzas/ordenes/{id}/comprobante [post]
func (h *FinanceHandler) RegisterReceipt(c *fiber.Ctx) error {
	var in dto.RegisterReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	p, err := h.svc.RegisterReceipt(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPaymentResponse(p))
}

// OrderPDF godoc
// @Summary      Comprobante PDF de la orden
// @Tags         finanzas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finanzas/ordenes/{id}/pdf [get]
func (h *FinanceHandler) OrderPDF(c *fiber.Ctx) error {
	data, filename, err := h.svc.OrderReceiptPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(data)
}

// MyPayments godoc
// @Summary      Órdenes y pagos de un desarrollador
// @Description  Un desarrollador solo puede consultar sus propios pagos.
// @Tags         finanzas
// @Security     Bearer
// @Produce      json
// @Param        developerId  path  string  true  "Beneficiario"
// @Success      200  {array}  dto.OrderWithPaymentsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/finanzas/mis-pagos/{developerId} [get]
func (h *FinanceHandler) MyPayments(c *fiber.Ctx) error {
	list, err := h.svc.MyPayments(c.UserContext(), pathParam(c, "developerId"))
	if err != nil {
		return err
	}
	out := make([]dto.OrderWithPaymentsResponse, 0, len(list))
	for _, v := range list {
		out = append(out, dto.NewOrderWithPaymentsResponse(v))
	}
	return c.JSON(out)
}
