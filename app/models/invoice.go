package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a billing document issued to a student. TotalAmount is the
// authoritative final amount after all discounts; display maths must never
// imply a different total.
type Invoice struct {
	ID            string          `json:"id"`
	StudentID     string          `json:"student_id"`
	InvoiceNumber string          `json:"invoice_number"`
	FeeType       string          `json:"fee_type"`
	Subject       string          `json:"subject,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        InvoiceStatus   `json:"status"`
	IssueDate     time.Time       `json:"issue_date"`
	DueDate       time.Time       `json:"due_date"`
	PaidDate      *time.Time      `json:"paid_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Student identity joined from users for display
	StudentUsername string `json:"student_username,omitempty"`
	StudentEmail    string `json:"student_email,omitempty"`
	StudentAccaID   string `json:"student_acca_id,omitempty"`
}

// FeeItem is one billable component of an invoice, fetched as an immutable
// snapshot for display. OriginalAmount is the pre-discount figure the
// allocator works from; Amount and DiscountApplied are the stored values and
// are informational only.
type FeeItem struct {
	FeeType         string          `json:"fee_type"`
	Subject         string          `json:"subject,omitempty"`
	OriginalAmount  decimal.Decimal `json:"original_amount"`
	Amount          decimal.Decimal `json:"amount"`
	DiscountApplied decimal.Decimal `json:"discount_applied"`
}
