package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/ahmed-faraz22/Bite-Xplore-sub000/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	WebhookHandler struct {
		commissionService PaymentCallbackService
		verificationToken string
	}

	PaymentCallbackService interface {
		HandlePaymentCallback(ctx context.Context, invoiceID, externalID string, rawPayload []byte) error
	}

	// CommissionWebhookRequest is the processor's invoice callback. Only the
	// routing fields are read here; status and amount are re-verified against
	// the processor API before anything is credited.
	CommissionWebhookRequest struct {
		ID         string    `json:"id"`
		ExternalID string    `json:"external_id"`
		Status     string    `json:"status"`
		Amount     float64   `json:"amount"`
		PaidAmount float64   `json:"paid_amount"`
		PaidAt     time.Time `json:"paid_at"`
		Currency   string    `json:"currency"`
	}
)

func NewWebhookHandler(commissionService PaymentCallbackService, verificationToken string) *WebhookHandler {
	return &WebhookHandler{
		commissionService: commissionService,
		verificationToken: verificationToken,
	}
}

func (h *WebhookHandler) HandleCommissionWebhook(c echo.Context) error {
	if c.Request().Header.Get("x-callback-token") != h.verificationToken {
		logger.Warn("webhook with invalid callback token", "path", c.Path())
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "invalid callback token"})
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		logger.Error("Failed to read webhook body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var request CommissionWebhookRequest
	if err := json.Unmarshal(body, &request); err != nil {
		logger.Error("Failed to decode webhook body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	logger.Info("commission webhook received", "invoice_id", request.ID, "status", request.Status)

	if err := h.commissionService.HandlePaymentCallback(c.Request().Context(), request.ID, request.ExternalID, body); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("payment recorded"))
}
