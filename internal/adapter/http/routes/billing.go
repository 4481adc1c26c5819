package routes

import (
	"freelanceflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
	PathPayments = "/payments"
	PathReports  = "/reports"
	PathWebhooks = "/webhooks"
)

func addBillingRoutes(
	rg *gin.RouterGroup,
	invoiceHandler *handlers.InvoiceHandler,
	paymentHandler *handlers.PaymentHandler,
	reportHandler *handlers.ReportHandler,
	webhookHandler *handlers.WebhookHandler,
) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoiceByID)
		invoices.PATCH("/:invoice_id", invoiceHandler.UpdateInvoice)
		invoices.DELETE("/:invoice_id", invoiceHandler.DeleteInvoice)
		invoices.POST("/:invoice_id/mark-paid", invoiceHandler.MarkInvoicePaid)
		invoices.GET("/:invoice_id/payments", paymentHandler.ListPaymentsByInvoice)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:payment_id", paymentHandler.GetPaymentByID)
		payments.DELETE("/:payment_id", paymentHandler.DeletePayment)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/financial", reportHandler.FinancialReport)
		reports.GET("/time", reportHandler.TimeReport)
		reports.GET("/clients", reportHandler.ClientReport)
		reports.GET("/project-profitability", reportHandler.ProjectProfitabilityReport)
		reports.GET("/tax", reportHandler.TaxReport)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", webhookHandler.HandleMercadoPago)
	}
}
