package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rental-ledger/backend/internal/application/usecase/report"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
	"github.com/rental-ledger/backend/internal/domain/finance"
	"github.com/rental-ledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	generateUseCase *report.GenerateReportUseCase
	exportUseCase   *report.ExportReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	generateUseCase *report.GenerateReportUseCase,
	exportUseCase *report.ExportReportUseCase,
) *ReportController {
	return &ReportController{
		generateUseCase: generateUseCase,
		exportUseCase:   exportUseCase,
	}
}

// Generate handles POST /reports requests.
func (c *ReportController) Generate(ctx *gin.Context) {
	var req dto.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), req.ToFilter())
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReportResponse(output))
}

// ExportSnapshot handles GET /reports/:id/export requests.
func (c *ReportController) ExportSnapshot(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "report not found",
			Code:  string(domainerror.ErrCodeReportNotFound),
		})
		return
	}

	c.export(ctx, report.ExportReportInput{ReportID: &id})
}

// Export handles GET /reports/export requests, generating the report from
// the query parameters without storing it.
func (c *ReportController) Export(ctx *gin.Context) {
	propertyID, ok := optionalPositiveInt64(ctx, "property_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "property_id must be a positive integer",
			Code:  string(domainerror.ErrCodeInvalidPropertyID),
		})
		return
	}

	year, ok := optionalInt(ctx, "year")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year must be an integer",
			Code:  string(domainerror.ErrCodeInvalidYear),
		})
		return
	}
	month, ok := optionalInt(ctx, "month")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "month must be an integer",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return
	}
	quarter, ok := optionalInt(ctx, "quarter")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "quarter must be an integer",
			Code:  string(domainerror.ErrCodeInvalidQuarter),
		})
		return
	}

	filter := finance.ReportFilter{
		PropertyID: propertyID,
		Period:     finance.PeriodType(ctx.Query("period")),
		Month:      month,
		Quarter:    quarter,
	}
	if year != nil {
		filter.Year = *year
	}

	c.export(ctx, report.ExportReportInput{Filter: filter})
}

func (c *ReportController) export(ctx *gin.Context, input report.ExportReportInput) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(output.Content))
}
