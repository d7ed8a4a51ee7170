package invoices

import (
	"psb-admin/app/config"
	"psb-admin/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupInvoicesRoutes sets up the invoicing routes. Every route is gated on
// the admin roles; invoicing is not visible to other staff.
func SetupInvoicesRoutes(app *fiber.App) {
	invoices := app.Group("/invoices")
	invoices.Use(auth.AuthMiddleware)
	invoices.Use(auth.RoleMiddleware("admin", "super_admin"))

	invoicesAPI := app.Group("/api/invoices")
	invoicesAPI.Use(auth.AuthMiddleware)
	invoicesAPI.Use(auth.RoleMiddleware("admin", "super_admin"))

	// Web routes
	invoices.Get("/", InvoicesPageHandler)

	invoices.Get("/view", func(c *fiber.Ctx) error {
		return ViewInvoicePageHandler(c, config.GetDB())
	})

	invoices.Get("/print", func(c *fiber.Ctx) error {
		return PrintInvoicePageHandler(c, config.GetDB())
	})

	// API routes
	invoicesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetInvoicesAPI(c, config.GetDB())
	})

	invoicesAPI.Get("/stats", func(c *fiber.Ctx) error {
		return GetInvoiceStatsAPI(c, config.GetDB())
	})

	invoicesAPI.Get("/:invoice_number", func(c *fiber.Ctx) error {
		return GetInvoiceAPI(c, config.GetDB())
	})
}
