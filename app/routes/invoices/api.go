package invoices

import (
	"database/sql"
	"errors"
	"psb-admin/app/database"

	"github.com/gofiber/fiber/v2"
)

// GetInvoicesAPI returns invoices with optional filtering and pagination
func GetInvoicesAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.InvoiceFilters{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}

	invoices, total, err := database.ListInvoices(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invoices")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"data":        invoices,
		"total_count": total,
		"has_more":    filters.Offset+len(invoices) < total,
		"next_offset": filters.Offset + len(invoices),
	})
}

// GetInvoiceStatsAPI returns status aggregates for the list page cards
func GetInvoiceStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetInvoiceStats(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invoice stats")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetInvoiceAPI returns one invoice by its invoice number, with fee items
// and the computed discount breakdown
func GetInvoiceAPI(c *fiber.Ctx, db *sql.DB) error {
	invoiceNumber := c.Params("invoice_number")

	page, err := loadInvoicePage(db, invoiceNumber)
	if err != nil {
		if errors.Is(err, database.ErrInvoiceNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}
		if errors.Is(err, database.ErrAmbiguousInvoiceNumber) {
			return fiber.NewError(fiber.StatusConflict, "Multiple invoices share this invoice number")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invoice")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       page.Invoice,
		"allocation": page.Allocation,
	})
}
