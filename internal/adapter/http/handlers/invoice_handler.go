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

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
	errInvalidStatusFilter   = pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", "Invalid status filter", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for the invoice ledger.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CreateInvoice creates an invoice from explicit line items or, when none are
// provided, from the project's time entries.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	userID, displayName, ok := requireIdentity(c)
	if !ok {
		return
	}

	var payload request.InvoiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	issueDate, err := request.ParseDate(payload.IssueDate)
	if err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}
	dueDate, err := request.ParseDate(payload.DueDate)
	if err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	log.Printf("[invoice][handler] create start user_id=%s client_id=%s", userID, payload.ClientID)
	created, err := h.usecase.Create(c.Request.Context(), userID, displayName, usecase.CreateInvoiceInput{
		ClientID:  payload.ClientID,
		ProjectID: payload.ProjectID,
		Items:     payload.ResolveItems(),
		Rate:      payload.Rate,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Notes:     payload.Notes,
	})
	if err != nil {
		log.Printf("[invoice][handler] create failed user_id=%s err=%v", userID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] create success user_id=%s invoice_id=%s number=%s", userID, created.ID, created.InvoiceNumber)

	c.JSON(http.StatusCreated, response.FromInvoice(created))
}

// ListInvoices lists the caller's invoices, optionally filtered by `status`.
// Listing also sweeps unpaid invoices past their due date into overdue.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}

	status := entities.InvoiceStatus(c.Query("status"))
	if status != "" && !entities.ValidInvoiceStatus(status) {
		c.JSON(errInvalidStatusFilter.HTTPStatus, errInvalidStatusFilter.ToHTTPError())
		return
	}

	invoices, err := h.usecase.List(c.Request.Context(), userID, status)
	if err != nil {
		log.Printf("[invoice][handler] list failed user_id=%s err=%v", userID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	id := c.Param("invoice_id")

	inv, err := h.usecase.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// UpdateInvoice applies a sparse update; replacing items recomputes the total.
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	id := c.Param("invoice_id")

	var payload request.InvoiceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	in := usecase.UpdateInvoiceInput{Notes: payload.Notes, Items: payload.ResolveItems()}
	if payload.IssueDate != nil {
		t, err := request.ParseDate(*payload.IssueDate)
		if err != nil {
			c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
			return
		}
		in.IssueDate = &t
	}
	if payload.DueDate != nil {
		t, err := request.ParseDate(*payload.DueDate)
		if err != nil {
			c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
			return
		}
		in.DueDate = &t
	}

	updated, err := h.usecase.Update(c.Request.Context(), userID, id, in)
	if err != nil {
		log.Printf("[invoice][handler] update failed user_id=%s invoice_id=%s err=%v", userID, id, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(updated))
}

// DeleteInvoice removes an invoice. Invoices with recorded payments cannot be
// deleted; reverse the payments first.
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	id := c.Param("invoice_id")

	if err := h.usecase.Delete(c.Request.Context(), userID, id); err != nil {
		log.Printf("[invoice][handler] delete failed user_id=%s invoice_id=%s err=%v", userID, id, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkInvoicePaid forces an invoice into the paid status without touching the
// payment ledger. Idempotent.
func (h *InvoiceHandler) MarkInvoicePaid(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	id := c.Param("invoice_id")

	inv, err := h.usecase.MarkPaid(c.Request.Context(), userID, id)
	if err != nil {
		log.Printf("[invoice][handler] mark-paid failed user_id=%s invoice_id=%s err=%v", userID, id, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidInvoiceClient),
		errors.Is(err, usecase.ErrNoBillableWork),
		errors.Is(err, usecase.ErrTotalBelowAmountPaid):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceHasPayments):
		return pkg.NewDomainErrorSimple("INVOICE_HAS_PAYMENTS", "Invoice has recorded payments", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
