package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/imoveis/internal/handlers"
	"github.com/localnerve/imoveis/internal/services"
	"gorm.io/gorm"
)

// Handler is what a resource exposes on its collection and member routes
type Handler interface {
	List(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Retrieve(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	PartialUpdate(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// Resource binds a path segment to its handler
type Resource struct {
	Segment string
	Handler Handler
}

// Table builds the nine resources over db
func Table(db *gorm.DB) []Resource {
	return []Resource{
		{Segment: "imoveis", Handler: handlers.NewPropertyHandler(services.NewPropertyService(db))},
		{Segment: "locadores", Handler: handlers.NewLessorHandler(services.NewLessorService(db))},
		{Segment: "locatarios", Handler: handlers.NewLesseeHandler(services.NewLesseeService(db))},
		{Segment: "fiadores", Handler: handlers.NewGuarantorHandler(services.NewGuarantorService(db))},
		{Segment: "intermediarios", Handler: handlers.NewIntermediaryHandler(services.NewIntermediaryService(db))},
		{Segment: "contratos", Handler: handlers.NewContractHandler(services.NewContractService(db))},
		{Segment: "pagamentos", Handler: handlers.NewPaymentHandler(services.NewPaymentService(db))},
		{Segment: "manutencoes", Handler: handlers.NewMaintenanceHandler(services.NewMaintenanceService(db))},
		{Segment: "documentos", Handler: handlers.NewDocumentHandler(services.NewDocumentService(db))},
	}
}

// Register mounts the collection and member routes of every resource on router
func Register(router fiber.Router, table []Resource) {
	for _, r := range table {
		collection := "/" + r.Segment
		member := collection + "/:id"

		router.Get(collection, r.Handler.List)
		router.Post(collection, r.Handler.Create)
		router.Get(member, r.Handler.Retrieve)
		router.Put(member, r.Handler.Update)
		router.Patch(member, r.Handler.PartialUpdate)
		router.Delete(member, r.Handler.Delete)
	}
}
