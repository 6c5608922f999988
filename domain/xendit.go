package domain

import "time"

// XenditInvoice is the subset of the processor's invoice payload this service
// reads. Status is re-fetched from the API before any payment is credited;
// redirect parameters alone are never trusted.
type XenditInvoice struct {
	ID                 string    `json:"id"`
	ExternalID         string    `json:"external_id"`
	Status             string    `json:"status"`
	Amount             float64   `json:"amount"`
	PaidAmount         float64   `json:"paid_amount"`
	Currency           string    `json:"currency"`
	Description        string    `json:"description"`
	InvoiceURL         string    `json:"invoice_url"`
	PaidAt             time.Time `json:"paid_at"`
	ExpiryDate         time.Time `json:"expiry_date"`
	SuccessRedirectURL string    `json:"success_redirect_url"`
	FailureRedirectURL string    `json:"failure_redirect_url"`
	Created            time.Time `json:"created"`
	Updated            time.Time `json:"updated"`
}

// Invoice statuses the processor reports.
const (
	InvoiceStatusPending = "PENDING"
	InvoiceStatusPaid    = "PAID"
	InvoiceStatusSettled = "SETTLED"
	InvoiceStatusExpired = "EXPIRED"
)
