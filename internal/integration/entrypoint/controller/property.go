package controller

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rental-ledger/backend/internal/application/usecase/property"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
	"github.com/rental-ledger/backend/internal/integration/entrypoint/dto"
)

// selectionEvent is the SSE event name for selection changes.
const selectionEvent = "selection"

// PropertyController handles property endpoints.
type PropertyController struct {
	listUseCase   *property.ListPropertiesUseCase
	createUseCase *property.CreatePropertyUseCase
	selectUseCase *property.SelectPropertyUseCase
	selection     *property.Selection
}

// NewPropertyController creates a new property controller instance.
func NewPropertyController(
	listUseCase *property.ListPropertiesUseCase,
	createUseCase *property.CreatePropertyUseCase,
	selectUseCase *property.SelectPropertyUseCase,
	selection *property.Selection,
) *PropertyController {
	return &PropertyController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		selectUseCase: selectUseCase,
		selection:     selection,
	}
}

// List handles GET /properties requests.
func (c *PropertyController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyListResponse(output.Properties))
}

// Create handles POST /properties requests.
func (c *PropertyController) Create(ctx *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingPropertyName),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), property.CreatePropertyInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPropertyResponse(output))
}

// GetSelection handles GET /properties/selection requests.
func (c *PropertyController) GetSelection(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SelectionResponse{PropertyID: c.selection.Get()})
}

// SetSelection handles PUT /properties/selection requests.
func (c *PropertyController) SetSelection(ctx *gin.Context) {
	var req dto.SelectPropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := c.selectUseCase.Execute(ctx.Request.Context(), req.PropertyID); err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SelectionResponse{PropertyID: c.selection.Get()})
}

// SelectionEvents handles GET /properties/selection/events requests. It
// streams the current selection and every later change as server-sent events
// until the client disconnects.
func (c *PropertyController) SelectionEvents(ctx *gin.Context) {
	updates, cancel := c.selection.Subscribe()
	defer cancel()

	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("X-Accel-Buffering", "no")

	ctx.Stream(func(w io.Writer) bool {
		select {
		case propertyID, ok := <-updates:
			if !ok {
				return false
			}
			ctx.SSEvent(selectionEvent, dto.SelectionResponse{PropertyID: propertyID})
			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})
	slog.Debug("Selection event stream closed", "client_ip", ctx.ClientIP())
}

// handlePropertyError handles property errors and returns appropriate HTTP responses.
func (c *PropertyController) handlePropertyError(ctx *gin.Context, err error) {
	var propErr *domainerror.PropertyError
	if errors.As(err, &propErr) {
		status := http.StatusBadRequest
		if propErr.Code == domainerror.ErrCodePropertyNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: propErr.Message,
			Code:  string(propErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
