package invoices

import (
	"database/sql"
	"errors"
	"psb-admin/app/billing"
	"psb-admin/app/database"
	"psb-admin/app/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// invoicePage is everything the view/print templates need for one invoice.
type invoicePage struct {
	Invoice    *models.Invoice
	Allocation billing.Allocation
}

// lookupMessage maps a lookup failure to the non-technical message shown in
// the error panel. A missing invoice number is reported like a not-found
// invoice rather than a separate failure mode.
func lookupMessage(err error) string {
	switch {
	case errors.Is(err, database.ErrAmbiguousInvoiceNumber):
		return "More than one invoice carries this invoice number. This is a data problem; please contact the system administrator."
	case errors.Is(err, database.ErrInvoiceNotFound):
		return "Invoice not found."
	default:
		return "Failed to load the invoice. Please try again."
	}
}

// loadInvoicePage fetches the invoice, its fee items and the computed
// discount breakdown for display.
func loadInvoicePage(db *sql.DB, invoiceNumber string) (*invoicePage, error) {
	invoice, err := database.GetInvoiceByNumber(db, invoiceNumber)
	if err != nil {
		return nil, err
	}

	items, err := database.GetInvoiceFeeItems(db, invoice.ID)
	if err != nil {
		return nil, err
	}

	return &invoicePage{
		Invoice:    invoice,
		Allocation: billing.Allocate(items, invoice.TotalAmount),
	}, nil
}

// InvoicesPageHandler renders the invoice list page; the table itself is
// filled client-side from the list API.
func InvoicesPageHandler(c *fiber.Ctx) error {
	return c.Render("invoices/index", fiber.Map{
		"Title":       "Invoicing - PSB Admin",
		"CurrentPage": "invoicing",
	})
}

// ViewInvoicePageHandler renders the invoice document for the invoice number
// in the query string. Lookup failures render the page with an error panel
// instead of the document; they are never a crash.
func ViewInvoicePageHandler(c *fiber.Ctx, db *sql.DB) error {
	invoiceNumber := strings.TrimSpace(c.Query("invoice_num"))
	if invoiceNumber == "" {
		return c.Render("invoices/view", fiber.Map{
			"Title":        "View Invoice - PSB Admin",
			"CurrentPage":  "invoicing",
			"ErrorMessage": "No invoice number provided.",
		})
	}

	page, err := loadInvoicePage(db, invoiceNumber)
	if err != nil {
		return c.Render("invoices/view", fiber.Map{
			"Title":         "View Invoice - PSB Admin",
			"CurrentPage":   "invoicing",
			"InvoiceNumber": invoiceNumber,
			"ErrorMessage":  lookupMessage(err),
		})
	}

	return c.Render("invoices/view", fiber.Map{
		"Title":       "View Invoice - PSB Admin",
		"CurrentPage": "invoicing",
		"Invoice":     page.Invoice,
		"Allocation":  page.Allocation,
	})
}

// PrintInvoicePageHandler renders the chrome-less print view of an invoice.
func PrintInvoicePageHandler(c *fiber.Ctx, db *sql.DB) error {
	invoiceNumber := strings.TrimSpace(c.Query("invoice_num"))
	if invoiceNumber == "" {
		return c.Render("invoices/print", fiber.Map{
			"Title":        "Print Invoice - PSB Admin",
			"ErrorMessage": "No invoice number provided.",
		}, "")
	}

	page, err := loadInvoicePage(db, invoiceNumber)
	if err != nil {
		return c.Render("invoices/print", fiber.Map{
			"Title":        "Print Invoice - PSB Admin",
			"ErrorMessage": lookupMessage(err),
		}, "")
	}

	return c.Render("invoices/print", fiber.Map{
		"Title":      "Print Invoice - PSB Admin",
		"Invoice":    page.Invoice,
		"Allocation": page.Allocation,
	}, "")
}
