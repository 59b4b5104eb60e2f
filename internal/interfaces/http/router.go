package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bin-inventory-api/internal/application/scan"
	"github.com/jhoicas/bin-inventory-api/internal/domain/entity"
	"github.com/jhoicas/bin-inventory-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC MaterialService
	StatusUC   StatusService
	CommitUC   ScanCommitter
	LabelUC    LabelService
	Dashboard  DashboardService
	Sessions   *scan.SessionStore
	JWTSecret  string
	JWTIssuer  string
	Logger     *logger.Logger
}

// Router registra las rutas de la API.
//   - Admin: gestiona el maestro de materiales.
//   - Admin y PIC: escanean.
//   - Cualquier rol autenticado: consulta.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	adminOnly := RequireRole(entity.RoleAdmin)
	scanners := RequireRole(entity.RoleAdmin, entity.RolePIC)

	materialHandler := NewMaterialHandler(deps.MaterialUC, deps.StatusUC)
	scanHandler := NewScanHandler(deps.Sessions, deps.CommitUC, deps.StatusUC, deps.Logger)
	labelHandler := NewLabelHandler(deps.LabelUC)
	dashboardHandler := NewDashboardHandler(deps.Dashboard)

	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Materials: las rutas fijas van antes de /:id
	materials := protected.Group("/materials")
	materials.Get("/status", materialHandler.Status)
	materials.Post("/scan/auto", scanners, scanHandler.Commit)
	materials.Post("/scan/preview", scanners, scanHandler.Preview)
	materials.Get("/scan/batches/:batchId", scanHandler.Batch)
	materials.Get("/", materialHandler.List)
	materials.Post("/", adminOnly, materialHandler.Create)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", adminOnly, materialHandler.Update)
	materials.Delete("/:id", adminOnly, materialHandler.Delete)
	materials.Get("/:id/movements", materialHandler.Movements)
	materials.Get("/:id/labels.pdf", labelHandler.Download)

	// Scan sessions (Admin y PIC)
	sessions := protected.Group("/scan-sessions", scanners)
	sessions.Post("/", scanHandler.CreateSession)
	sessions.Get("/:id", scanHandler.GetSession)
	sessions.Delete("/:id", scanHandler.DeleteSession)
	sessions.Post("/:id/entries", scanHandler.AppendEntry)
	sessions.Put("/:id/entries/:entryId", scanHandler.UpdateEntry)
	sessions.Delete("/:id/entries/:entryId", scanHandler.RemoveEntry)
	sessions.Post("/:id/entries/:entryId/resolve", scanHandler.ResolveEntry)
	sessions.Post("/:id/entries/:entryId/confirm", scanHandler.ConfirmEntry)
	sessions.Post("/:id/finalize", scanHandler.Finalize)
}
