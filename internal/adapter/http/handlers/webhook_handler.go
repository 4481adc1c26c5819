package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "freelanceflow/internal/adapter/http/dto/request"
	response "freelanceflow/internal/adapter/http/dto/response"
	"freelanceflow/internal/domain/entities"
	"freelanceflow/internal/usecase"
	"freelanceflow/internal/usecase/interfaces"
	"freelanceflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWebhookPayload  = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
	errWebhookGatewayDisabled = pkg.NewDomainErrorSimple("WEBHOOK_GATEWAY_DISABLED", "Payment provider integration is not configured", http.StatusServiceUnavailable)
)

// WebhookHandler receives Mercado Pago payment notifications and records the
// corresponding payment in the ledger.
//
// The provider's external_reference carries "{user_id}/{invoice_id}"; that is
// how a notification finds its way back to the right invoice. Business
// rejections (already paid, overpay, unknown reference) are acknowledged with
// 200 so the provider stops retrying a notification that can never succeed.
type WebhookHandler struct {
	events   interfaces.IPaymentEventSource
	payments usecase.IPaymentUseCase
}

func NewWebhookHandler(events interfaces.IPaymentEventSource, payments usecase.IPaymentUseCase) *WebhookHandler {
	return &WebhookHandler{events: events, payments: payments}
}

func (h *WebhookHandler) HandleMercadoPago(c *gin.Context) {
	if h.events == nil {
		c.JSON(errWebhookGatewayDisabled.HTTPStatus, errWebhookGatewayDisabled.ToHTTPError())
		return
	}

	raw, err := c.GetRawData()
	if err != nil || !json.Valid(raw) {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	var payload request.MercadoPagoWebhookRequest
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	providerPaymentID := payload.ResolvePaymentID()
	if providerPaymentID == "" {
		providerPaymentID = strings.TrimSpace(c.Query("id"))
	}
	if providerPaymentID == "" {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}
	if payload.Type != "" && payload.Type != "payment" {
		log.Printf("[webhook][handler] ignored type=%s provider_payment_id=%s", payload.Type, providerPaymentID)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	log.Printf("[webhook][handler] notification start provider_payment_id=%s", providerPaymentID)
	event, err := h.events.ResolvePayment(c.Request.Context(), providerPaymentID, raw)
	if err != nil {
		log.Printf("[webhook][handler] resolve failed provider_payment_id=%s err=%v", providerPaymentID, err)
		appErr := pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Failed to resolve payment with provider", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if event.Status != "approved" {
		log.Printf("[webhook][handler] ignored status=%s provider_payment_id=%s", event.Status, providerPaymentID)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	userID, invoiceID, ok := splitExternalReference(event.ExternalReference)
	if !ok {
		log.Printf("[webhook][handler] unresolvable external_reference=%q provider_payment_id=%s", event.ExternalReference, providerPaymentID)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	created, err := h.payments.Create(c.Request.Context(), userID, usecase.CreatePaymentInput{
		InvoiceID:   invoiceID,
		Amount:      event.Amount,
		PaymentDate: event.Date,
		Method:      methodFromProvider(event.Method),
		Reference:   providerPaymentID,
	})
	if err != nil {
		log.Printf("[webhook][handler] record failed provider_payment_id=%s invoice_id=%s err=%v", providerPaymentID, invoiceID, err)
		if isRetryableLedgerError(err) {
			appErr := mapPaymentError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
	log.Printf("[webhook][handler] recorded provider_payment_id=%s payment_id=%s invoice_id=%s", providerPaymentID, created.ID, invoiceID)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// splitExternalReference parses "{user_id}/{invoice_id}".
func splitExternalReference(ref string) (userID, invoiceID string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(ref), "/", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	userID = strings.TrimSpace(parts[0])
	invoiceID = strings.TrimSpace(parts[1])
	if userID == "" || invoiceID == "" {
		return "", "", false
	}
	return userID, invoiceID, true
}

// methodFromProvider maps Mercado Pago payment_method_id values onto the
// ledger's method enum.
func methodFromProvider(method string) entities.PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "pix", "account_money", "bank_transfer", "ted":
		return entities.PaymentMethodBankTransfer
	case "master", "visa", "amex", "elo", "hipercard", "debit_card", "credit_card":
		return entities.PaymentMethodCard
	case "paypal":
		return entities.PaymentMethodPaypal
	case "cash", "ticket", "pagofacil", "rapipago":
		return entities.PaymentMethodCash
	default:
		return entities.PaymentMethodOther
	}
}

// isRetryableLedgerError reports whether the provider should retry the
// notification later.
func isRetryableLedgerError(err error) bool {
	if errors.Is(err, usecase.ErrLedgerConflict) {
		return true
	}
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus >= http.StatusInternalServerError
	}
	switch {
	case errors.Is(err, usecase.ErrInvoiceNotFound),
		errors.Is(err, usecase.ErrInvoiceAlreadyPaid),
		errors.Is(err, usecase.ErrPaymentExceedsAmountDue),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidInvoiceID):
		return false
	}
	return true
}
