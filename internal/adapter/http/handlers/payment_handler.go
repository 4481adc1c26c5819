package handlers

import (
	"errors"
	"log"
	"net/http"

	request "freelanceflow/internal/adapter/http/dto/request"
	response "freelanceflow/internal/adapter/http/dto/response"
	"freelanceflow/internal/domain/entities"
	"freelanceflow/internal/usecase"
	"freelanceflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for the payment ledger.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment records a payment against an invoice. The invoice's paid
// amount and status update in the same transaction.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}

	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	paymentDate, err := request.ParseDate(payload.PaymentDate)
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create start user_id=%s invoice_id=%s amount=%.2f", userID, payload.InvoiceID, payload.Amount)
	created, err := h.usecase.Create(c.Request.Context(), userID, usecase.CreatePaymentInput{
		InvoiceID:   payload.InvoiceID,
		Amount:      payload.Amount,
		PaymentDate: paymentDate,
		Method:      entities.PaymentMethod(payload.Method),
		Reference:   payload.Reference,
		Notes:       payload.Notes,
	})
	if err != nil {
		log.Printf("[payment][handler] create failed user_id=%s invoice_id=%s err=%v", userID, payload.InvoiceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success user_id=%s payment_id=%s", userID, created.ID)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// ListPayments lists the caller's payments. Supported filters: `invoice_id`,
// `method`, `from`, `to` (inclusive on payment date).
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}

	from, err := request.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	to, err := request.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payments, err := h.usecase.List(c.Request.Context(), userID, usecase.PaymentListFilter{
		InvoiceID: c.Query("invoice_id"),
		Method:    entities.PaymentMethod(c.Query("method")),
		From:      from,
		To:        to,
	})
	if err != nil {
		log.Printf("[payment][handler] list failed user_id=%s err=%v", userID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	id := c.Param("payment_id")

	p, err := h.usecase.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ListPaymentsByInvoice lists all payments recorded against one invoice.
func (h *PaymentHandler) ListPaymentsByInvoice(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	invoiceID := c.Param("invoice_id")

	payments, err := h.usecase.ListByInvoice(c.Request.Context(), userID, invoiceID)
	if err != nil {
		log.Printf("[payment][handler] list-by-invoice failed user_id=%s invoice_id=%s err=%v", userID, invoiceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// DeletePayment reverses a payment: the payment row is removed and the
// invoice's paid amount and status roll back in the same transaction.
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	id := c.Param("payment_id")

	if err := h.usecase.Delete(c.Request.Context(), userID, id); err != nil {
		log.Printf("[payment][handler] delete failed user_id=%s payment_id=%s err=%v", userID, id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrPaymentExceedsAmountDue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice is already fully paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrLedgerConflict):
		return pkg.NewDomainErrorSimple("LEDGER_CONFLICT", "Concurrent update, retry the request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
