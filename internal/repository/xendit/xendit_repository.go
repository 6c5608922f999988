package xendit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/domain"
)

type XenditConfig struct {
	XenditApi          string
	XenditUrl          string
	SuccessRedirectUrl string
	FailureRedirectUrl string
}

type XenditRepository struct {
	xenditConfig XenditConfig
	client       *http.Client
}

func NewXenditRepository(cfg XenditConfig) *XenditRepository {
	return &XenditRepository{
		xenditConfig: cfg,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateInvoice opens a hosted-checkout invoice for a commission fee and
// returns the invoice URL the seller is redirected to.
func (r *XenditRepository) CreateInvoice(ctx context.Context, externalID, payerEmail, description string, amount float64) (string, error) {
	payload := strings.NewReader(fmt.Sprintf(`{
		"external_id": "%s",
		"amount": %.2f,
		"description": "%s",
		"invoice_duration": 3600,
		"customer": {
			"email": "%s"
		},
		"success_redirect_url": "%s",
		"failure_redirect_url": "%s",
		"currency": "%s"
	}`, externalID, amount, description, payerEmail,
		r.xenditConfig.SuccessRedirectUrl, r.xenditConfig.FailureRedirectUrl, domain.CommissionCurrency))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.xenditConfig.XenditUrl, payload)
	if err != nil {
		return "", err
	}
	req.Header.Add("Content-Type", "application/json")
	req.SetBasicAuth(r.xenditConfig.XenditApi, "")

	res, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("xendit returned status %d: %s", res.StatusCode, string(body))
	}

	var invoice domain.XenditInvoice
	if err := json.Unmarshal(body, &invoice); err != nil {
		return "", fmt.Errorf("failed to decode invoice response: %w", err)
	}

	return invoice.InvoiceURL, nil
}

// GetInvoice fetches the authoritative invoice state from the processor. The
// webhook body is double-checked against this before any payment is credited.
func (r *XenditRepository) GetInvoice(ctx context.Context, invoiceID string) (domain.XenditInvoice, error) {
	url := fmt.Sprintf("%s/%s", r.xenditConfig.XenditUrl, invoiceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.XenditInvoice{}, err
	}
	req.SetBasicAuth(r.xenditConfig.XenditApi, "")

	res, err := r.client.Do(req)
	if err != nil {
		return domain.XenditInvoice{}, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return domain.XenditInvoice{}, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return domain.XenditInvoice{}, fmt.Errorf("xendit returned status %d: %s", res.StatusCode, string(body))
	}

	var invoice domain.XenditInvoice
	if err := json.Unmarshal(body, &invoice); err != nil {
		return domain.XenditInvoice{}, fmt.Errorf("failed to decode invoice response: %w", err)
	}

	return invoice, nil
}
