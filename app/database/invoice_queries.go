package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"psb-admin/app/models"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvoiceNotFound means no invoice matches the given invoice number.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrAmbiguousInvoiceNumber means more than one invoice matched what is
	// modeled as a unique key. That is a data-integrity problem, not a
	// lookup the caller can resolve.
	ErrAmbiguousInvoiceNumber = errors.New("multiple invoices share the same invoice number")
)

// InvoiceFilters represents filtering options for the invoice list
type InvoiceFilters struct {
	Status string
	Search string
	Limit  int
	Offset int
}

// InvoiceStats holds the aggregates shown on the invoice list header cards.
type InvoiceStats struct {
	TotalInvoices int             `json:"total_invoices"`
	PaidInvoices  int             `json:"paid_invoices"`
	PendingCount  int             `json:"pending_invoices"`
	OverdueCount  int             `json:"overdue_invoices"`
	TotalBilled   decimal.Decimal `json:"total_billed"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
}

const invoiceSelect = `
	SELECT inv.id, inv.student_id, u.username AS student_username, u.email AS student_email,
	       u.acca_id AS student_acca_id, inv.invoice_number, inv.issue_date,
	       inv.due_date, inv.total_amount, inv.fee_type, inv.subject, inv.status,
	       inv.paid_date, inv.created_at, inv.updated_at
	FROM invoices inv
	JOIN users u ON inv.student_id = u.id`

func scanInvoice(rows *sql.Rows) (*models.Invoice, error) {
	inv := &models.Invoice{}
	var status string
	err := rows.Scan(
		&inv.ID, &inv.StudentID, &inv.StudentUsername, &inv.StudentEmail,
		&inv.StudentAccaID, &inv.InvoiceNumber, &inv.IssueDate,
		&inv.DueDate, &inv.TotalAmount, &inv.FeeType, &inv.Subject, &status,
		&inv.PaidDate, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.Status = models.InvoiceStatus(status)
	return inv, nil
}

// GetInvoiceByNumber fetches the single invoice carrying the given
// human-facing invoice number, with the student's identity joined in.
// Zero matches return ErrInvoiceNotFound; more than one match returns
// ErrAmbiguousInvoiceNumber and is logged for operational follow-up,
// since invoice_number is supposed to be unique.
func GetInvoiceByNumber(db *sql.DB, invoiceNumber string) (*models.Invoice, error) {
	rows, err := db.Query(invoiceSelect+` WHERE inv.invoice_number = $1`, invoiceNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoice *models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		if invoice != nil {
			log.Printf("Data integrity: duplicate invoice_number %q in invoices table", invoiceNumber)
			return nil, ErrAmbiguousInvoiceNumber
		}
		invoice = inv
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	return invoice, nil
}

// GetInvoiceFeeItems fetches the fee line items of an invoice in insertion
// order. An invoice with no fee rows is valid and returns an empty slice.
func GetInvoiceFeeItems(db *sql.DB, invoiceID string) ([]models.FeeItem, error) {
	query := `SELECT fee.fee_type, fee.subject, fee.amount, fee.original_amount, fee.discount_applied
			  FROM fees fee
			  WHERE fee.invoice_id = $1
			  ORDER BY fee.created_at`

	rows, err := db.Query(query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.FeeItem, 0)
	for rows.Next() {
		var item models.FeeItem
		err := rows.Scan(&item.FeeType, &item.Subject, &item.Amount,
			&item.OriginalAmount, &item.DiscountApplied)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListInvoices returns invoices matching the filters, newest first, plus the
// total match count for pagination.
func ListInvoices(db *sql.DB, filters InvoiceFilters) ([]*models.Invoice, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("inv.status = $%d", argIndex))
		args = append(args, filters.Status)
		argIndex++
	}

	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(inv.invoice_number) LIKE $%d OR LOWER(u.username) LIKE $%d OR LOWER(u.acca_id) LIKE $%d)",
			argIndex, argIndex+1, argIndex+2))
		args = append(args, pattern, pattern, pattern)
		argIndex += 3
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM invoices inv JOIN users u ON inv.student_id = u.id` + where
	var total int
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if filters.Limit <= 0 {
		filters.Limit = 20
	}
	query := invoiceSelect + where +
		fmt.Sprintf(" ORDER BY inv.issue_date DESC, inv.created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	invoices := make([]*models.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, total, rows.Err()
}

// GetInvoiceStats returns status aggregates for the invoice list page.
func GetInvoiceStats(db *sql.DB) (*InvoiceStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_invoices,
			COUNT(CASE WHEN status = 'Paid' THEN 1 END) AS paid_invoices,
			COUNT(CASE WHEN status = 'Pending' THEN 1 END) AS pending_invoices,
			COUNT(CASE WHEN status = 'Overdue' THEN 1 END) AS overdue_invoices,
			COALESCE(SUM(total_amount), 0) AS total_billed,
			COALESCE(SUM(CASE WHEN status = 'Paid' THEN total_amount END), 0) AS total_paid
		FROM invoices
	`

	stats := &InvoiceStats{}
	err := db.QueryRow(query).Scan(
		&stats.TotalInvoices, &stats.PaidInvoices, &stats.PendingCount,
		&stats.OverdueCount, &stats.TotalBilled, &stats.TotalPaid,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
