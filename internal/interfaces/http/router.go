package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/timebox-api/internal/application/finance"
	"github.com/jhoicas/timebox-api/internal/application/lifecycle"
	"github.com/jhoicas/timebox-api/internal/application/publication"
	"github.com/jhoicas/timebox-api/internal/application/usecase"
	"github.com/jhoicas/timebox-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TimeboxUC   *usecase.TimeboxUseCase
	Roles       *usecase.RoleUseCase
	Phases      *lifecycle.PhaseService
	Workflow    *publication.Workflow
	AutoPublish *publication.AutoPublisher
	Orders      *finance.OrderService
	JWTSecret   string
}

// Router registra las rutas de la API. Todas requieren Bearer Token;
// las que mutan el ciclo de vida o las finanzas exigen rol admin u operator.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	operator := RequireRole(jwt.RoleAdmin, jwt.RoleOperator)

	// Timeboxes
	timeboxes := api.Group("/timeboxes")
	tbHandler := NewTimeboxHandler(deps.TimeboxUC)
	timeboxes.Post("/", operator, tbHandler.Create)
	timeboxes.Get("/", tbHandler.List)
	timeboxes.Get("/stats", tbHandler.Stats)
	timeboxes.Get("/with-postulations", operator, tbHandler.WithPostulations)
	timeboxes.Get("/project/:projectId", tbHandler.ListByProject)
	timeboxes.Get("/:id", tbHandler.GetByID)
	timeboxes.Put("/:id", operator, tbHandler.Update)
	timeboxes.Get("/:id/status", tbHandler.GetStatus)
	timeboxes.Patch("/:id/estado", operator, tbHandler.UpdateStatus)
	timeboxes.Delete("/:id", operator, tbHandler.Delete)

	// Fases
	phaseHandler := NewPhaseHandler(deps.Phases)
	timeboxes.Get("/:id/fases", phaseHandler.Load)
	timeboxes.Put("/:id/fases/:tipo", operator, phaseHandler.Save)

	// Publicación y postulaciones
	pubHandler := NewPublicationHandler(deps.Workflow, deps.AutoPublish)
	timeboxes.Post("/:id/publicacion", operator, pubHandler.RequestPublication)
	timeboxes.Get("/:id/ofertas", pubHandler.ListOffers)
	timeboxes.Put("/:id/assign-role", operator, pubHandler.Approve)
	timeboxes.Get("/:id/roles-disponibles", pubHandler.ListRoles)
	timeboxes.Post("/:id/publicaciones-automaticas", operator, pubHandler.CreateAutoPublications)
	timeboxes.Get("/:id/publicaciones-automaticas", pubHandler.ListAutoPublications)
	api.Put("/publicaciones-automaticas/:id/publicar", operator, pubHandler.PublishAutoPublication)

	offers := api.Group("/ofertas")
	offers.Put("/:id/publicar", operator, pubHandler.Publish)
	offers.Post("/:id/postulaciones", pubHandler.Apply)
	offers.Get("/:id/postulaciones", operator, pubHandler.ListPostulations)
	api.Put("/postulaciones/:id/rechazar", operator, pubHandler.Reject)

	// Roles y sueldos
	roles := api.Group("/roles")
	roleHandler := NewRoleHandler(deps.Roles)
	roles.Get("/", roleHandler.List)
	roles.Get("/stats", operator, roleHandler.Stats)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id/sueldo", RequireRole(jwt.RoleAdmin), roleHandler.UpdateSalary)

	// Finanzas
	fin := api.Group("/finanzas")
	finHandler := NewFinanceHandler(deps.Orders)
	fin.Get("/ordenes", operator, finHandler.ListOrders)
	fin.Post("/ordenes", operator, finHandler.CreateOrder)
	fin.Patch("/ordenes/:id/estado", operator, finHandler.UpdateOrderStatus)
	fin.Post("/ordenes/:id/comprobante", operator, finHandler.RegisterReceipt)
	fin.Get("/ordenes/:id/pdf", finHandler.OrderPDF)
	fin.Get("/mis-pagos/:developerId", RequireSelfOrRole("developerId", jwt.RoleAdmin, jwt.RoleOperator), finHandler.MyPayments)
}
