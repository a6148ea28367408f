package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rental-ledger/backend/internal/application/usecase/dashboard"
	"github.com/rental-ledger/backend/internal/application/usecase/property"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
	"github.com/rental-ledger/backend/internal/domain/finance"
	"github.com/rental-ledger/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getOverviewUseCase *dashboard.GetOverviewUseCase
	selection          *property.Selection
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getOverviewUseCase *dashboard.GetOverviewUseCase, selection *property.Selection) *DashboardController {
	return &DashboardController{
		getOverviewUseCase: getOverviewUseCase,
		selection:          selection,
	}
}

// Get handles GET /dashboard requests. Without a property_id parameter the
// currently selected property is used.
func (c *DashboardController) Get(ctx *gin.Context) {
	propertyID, ok := optionalPositiveInt64(ctx, "property_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "property_id must be a positive integer",
			Code:  string(domainerror.ErrCodeInvalidPropertyID),
		})
		return
	}
	if propertyID == nil {
		propertyID = c.selection.Get()
	}

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), dashboard.GetOverviewInput{
		PropertyID:  propertyID,
		Granularity: finance.Granularity(ctx.Query("granularity")),
	})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// handleReportError handles report and dashboard errors and returns appropriate HTTP responses.
func handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(getStatusCodeForReportError(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeReportInternalError),
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeReportNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeMissingYear,
		domainerror.ErrCodeInvalidYear,
		domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeInvalidQuarter,
		domainerror.ErrCodeInvalidGranularity,
		domainerror.ErrCodeInvalidPropertyID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
