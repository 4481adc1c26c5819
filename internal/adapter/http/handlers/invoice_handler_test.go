package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelanceflow/internal/adapter/http/handlers/mocks"
	"freelanceflow/internal/domain/entities"
	"freelanceflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"client_id":"client-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"client_id":"client-1","due_date":"next tuesday"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no billable work maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "user-1", "Jane Doe", gomock.Any()).Return(entities.Invoice{}, usecase.ErrNoBillableWork)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"client_id":"client-1","project_id":"proj-1","rate":100}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		req.Header.Set(HeaderUserName, "Jane Doe")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns 201 with amount_due", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "user-1", "Jane Doe", gomock.AssignableToTypeOf(usecase.CreateInvoiceInput{})).DoAndReturn(
			func(_ any, _, _ string, in usecase.CreateInvoiceInput) (entities.Invoice, error) {
				if in.ClientID != "client-1" || len(in.Items) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Invoice{
					ID: "inv-1", UserID: "user-1", ClientID: in.ClientID,
					InvoiceNumber: "INV-2025-JD-0001",
					Items:         []entities.LineItem{{Description: "Design", Quantity: 10, Rate: 50, Amount: 500}},
					TotalAmount:   500, AmountPaid: 0, Status: entities.InvoiceStatusUnpaid,
				}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		body := `{"client_id":"client-1","items":[{"description":"Design","quantity":10,"rate":50}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "user-1")
		req.Header.Set(HeaderUserName, "Jane Doe")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["invoice_number"] != "INV-2025-JD-0001" {
			t.Fatalf("expected invoice number in response, got %v", resp["invoice_number"])
		}
		if resp["amount_due"] != 500.0 {
			t.Fatalf("expected amount_due 500, got %v", resp["amount_due"])
		}
	})
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices", h.ListInvoices)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices?status=draft", nil)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("passes status filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().List(gomock.Any(), "user-1", entities.InvoiceStatusOverdue).Return([]entities.Invoice{
			{ID: "inv-1", UserID: "user-1", Status: entities.InvoiceStatusOverdue},
		}, nil)

		r := gin.New()
		r.GET("/v1/invoices", h.ListInvoices)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices?status=overdue", nil)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_DeleteInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blocked by payments maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "user-1", "inv-1").Return(usecase.ErrInvoiceHasPayments)

		r := gin.New()
		r.DELETE("/v1/invoices/:invoice_id", h.DeleteInvoice)

		req := httptest.NewRequest(http.MethodDelete, "/v1/invoices/inv-1", nil)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "user-1", "inv-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/invoices/:invoice_id", h.DeleteInvoice)

		req := httptest.NewRequest(http.MethodDelete, "/v1/invoices/inv-1", nil)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_GetInvoiceByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "user-1", "missing").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id", h.GetInvoiceByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/missing", nil)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal errors map to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "user-1", "inv-1").Return(entities.Invoice{}, errors.New("dynamo down"))

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id", h.GetInvoiceByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1", nil)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_MarkInvoicePaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().MarkPaid(gomock.Any(), "user-1", "inv-1").Return(entities.Invoice{
			ID: "inv-1", UserID: "user-1", Status: entities.InvoiceStatusPaid,
		}, nil)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/mark-paid", h.MarkInvoicePaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/mark-paid", nil)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["status"] != "paid" {
			t.Fatalf("expected paid status, got %v", resp["status"])
		}
	})
}
