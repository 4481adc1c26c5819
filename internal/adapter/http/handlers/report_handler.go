package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	request "freelanceflow/internal/adapter/http/dto/request"
	"freelanceflow/internal/usecase"
	"freelanceflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReportWindow = pkg.NewDomainErrorSimple("INVALID_REPORT_WINDOW", "Invalid report window", http.StatusBadRequest)
	errInvalidReportYear   = pkg.NewDomainErrorSimple("INVALID_REPORT_YEAR", "Invalid report year", http.StatusBadRequest)
)

// ReportHandler handles HTTP requests for the reporting aggregator. All
// endpoints are read-only; `from`/`to` query params bound the window
// inclusively and default to open-ended.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) reportWindow(c *gin.Context) (from, to time.Time, ok bool) {
	from, err := request.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(errInvalidReportWindow.HTTPStatus, errInvalidReportWindow.ToHTTPError())
		return time.Time{}, time.Time{}, false
	}
	to, err = request.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(errInvalidReportWindow.HTTPStatus, errInvalidReportWindow.ToHTTPError())
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (h *ReportHandler) FinancialReport(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	from, to, ok := h.reportWindow(c)
	if !ok {
		return
	}

	report, err := h.usecase.Financial(c.Request.Context(), userID, from, to)
	if err != nil {
		log.Printf("[report][handler] financial failed user_id=%s err=%v", userID, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) TimeReport(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	from, to, ok := h.reportWindow(c)
	if !ok {
		return
	}

	report, err := h.usecase.Time(c.Request.Context(), userID, from, to)
	if err != nil {
		log.Printf("[report][handler] time failed user_id=%s err=%v", userID, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) ClientReport(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	from, to, ok := h.reportWindow(c)
	if !ok {
		return
	}

	report, err := h.usecase.Clients(c.Request.Context(), userID, from, to)
	if err != nil {
		log.Printf("[report][handler] clients failed user_id=%s err=%v", userID, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) ProjectProfitabilityReport(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	from, to, ok := h.reportWindow(c)
	if !ok {
		return
	}

	report, err := h.usecase.ProjectProfitability(c.Request.Context(), userID, from, to)
	if err != nil {
		log.Printf("[report][handler] project-profitability failed user_id=%s err=%v", userID, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

// TaxReport summarizes revenue and deductible expenses for a calendar year.
// `year` defaults to the current year.
func (h *ReportHandler) TaxReport(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}

	year := time.Now().UTC().Year()
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1970 || parsed > 9999 {
			c.JSON(errInvalidReportYear.HTTPStatus, errInvalidReportYear.ToHTTPError())
			return
		}
		year = parsed
	}

	report, err := h.usecase.Tax(c.Request.Context(), userID, year)
	if err != nil {
		log.Printf("[report][handler] tax failed user_id=%s year=%d err=%v", userID, year, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func mapReportError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
