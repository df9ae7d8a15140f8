package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/pos_inventory_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_inventory_app/internal/core/ports/services"
	"github.com/SscSPs/pos_inventory_app/internal/dto"
	"github.com/SscSPs/pos_inventory_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// screenHandler exposes the inventory screen's user actions.
// Every reply carries the render after the action.
type screenHandler struct {
	screen portssvc.InventoryScreenSvc
}

// newScreenHandler creates a new screenHandler.
func newScreenHandler(screen portssvc.InventoryScreenSvc) *screenHandler {
	return &screenHandler{screen: screen}
}

// registerScreenRoutes registers the screen action routes on r.
func registerScreenRoutes(r gin.IRouter, screen portssvc.InventoryScreenSvc) {
	h := newScreenHandler(screen)

	s := r.Group("/screen")
	{
		s.GET("", h.view)
		s.POST("/reload", h.reload)
		s.PUT("/search", h.setSearch)
		s.PUT("/rows/:itemID/:field", h.editField)
		s.POST("/items", h.submitInsert)
		s.PUT("/rate", h.setRate)
		s.POST("/currency/toggle", h.toggleCurrency)
	}
}

func (h *screenHandler) view(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ScreenResponse{View: h.screen.View()})
}

func (h *screenHandler) reload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.screen.Reload(c.Request.Context()); err != nil {
		logger.Warn("Inventory reload failed", slog.String("error", err.Error()))
		h.respondError(c, err)
		return
	}
	h.view(c)
}

func (h *screenHandler) setSearch(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ScreenResponse{View: h.screen.View(), Error: bindingErrorMessage(err)})
		return
	}
	h.screen.SetSearch(req.Term)
	h.view(c)
}

func (h *screenHandler) editField(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	itemID, err := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ScreenResponse{View: h.screen.View(), Error: "Invalid item ID format"})
		return
	}
	var req dto.EditFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ScreenResponse{View: h.screen.View(), Error: bindingErrorMessage(err)})
		return
	}

	field := domain.EditField(c.Param("field"))
	if err := h.screen.EditField(itemID, field, req.Value); err != nil {
		logger.Warn("Row edit rejected",
			slog.Int64("item_id", itemID),
			slog.String("field", string(field)),
			slog.String("error", err.Error()))
		h.respondError(c, err)
		return
	}
	// The save is debounced, so the edit is only accepted at this point.
	c.JSON(http.StatusAccepted, dto.ScreenResponse{View: h.screen.View()})
}

func (h *screenHandler) submitInsert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InsertFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ScreenResponse{View: h.screen.View(), Error: bindingErrorMessage(err)})
		return
	}

	if _, err := h.screen.SubmitInsert(c.Request.Context(), req.ToInsertForm()); err != nil {
		logger.Warn("Insert rejected", slog.String("item_id", req.ID), slog.String("error", err.Error()))
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ScreenResponse{View: h.screen.View()})
}

func (h *screenHandler) setRate(c *gin.Context) {
	var req dto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ScreenResponse{View: h.screen.View(), Error: bindingErrorMessage(err)})
		return
	}
	h.screen.SetRateInput(c.Request.Context(), req.Rate)
	h.view(c)
}

func (h *screenHandler) toggleCurrency(c *gin.Context) {
	h.screen.ToggleCurrency(c.Request.Context())
	h.view(c)
}

func (h *screenHandler) respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), dto.ScreenResponse{View: h.screen.View(), Error: err.Error()})
}
