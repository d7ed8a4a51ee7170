package models

// InvoiceStatus defines the lifecycle states of an invoice.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "Pending"
	InvoiceOverdue   InvoiceStatus = "Overdue"
	InvoicePaid      InvoiceStatus = "Paid"
	InvoiceCancelled InvoiceStatus = "Cancelled"
)

// BadgeClass returns the Tailwind utility classes for the status pill shown
// on invoice pages.
func (s InvoiceStatus) BadgeClass() string {
	switch s {
	case InvoicePaid:
		return "bg-green-100 text-green-800"
	case InvoiceOverdue:
		return "bg-red-100 text-red-800"
	case InvoiceCancelled:
		return "bg-gray-100 text-gray-800"
	default:
		return "bg-yellow-100 text-yellow-800"
	}
}
