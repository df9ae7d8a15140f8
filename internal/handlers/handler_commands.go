package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pos_inventory_app/internal/apperrors"
	portssvc "github.com/SscSPs/pos_inventory_app/internal/core/ports/services"
	"github.com/SscSPs/pos_inventory_app/internal/dto"
	"github.com/SscSPs/pos_inventory_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// commandHandler serves the inventory command bridge.
type commandHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// newCommandHandler creates a new commandHandler.
func newCommandHandler(svc portssvc.InventorySvcFacade) *commandHandler {
	return &commandHandler{inventoryService: svc}
}

// registerCommandRoutes registers one POST route per command.
func registerCommandRoutes(r gin.IRouter, svc portssvc.InventorySvcFacade) {
	h := newCommandHandler(svc)

	commands := r.Group("/commands")
	{
		commands.POST("/"+dto.CommandListItems, h.listItems)
		commands.POST("/"+dto.CommandGetItem, h.getItem)
		commands.POST("/"+dto.CommandUpdateItem, h.updateItem)
		commands.POST("/"+dto.CommandInsertItem, h.insertItem)
	}
}

func (h *commandHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list items", slog.String("error", err.Error()))
		respondCommandError(c, err)
		return
	}

	respondCommandData(c, http.StatusOK, dto.ToListItemResponse(items))
}

func (h *commandHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for get-item", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.CommandResponse{Error: bindingErrorMessage(err)})
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), req.ID)
	if err != nil {
		logger.Warn("Failed to get item", slog.Int64("item_id", req.ID), slog.String("error", err.Error()))
		respondCommandError(c, err)
		return
	}

	respondCommandData(c, http.StatusOK, dto.ToItemResponse(*item))
}

func (h *commandHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update-item", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.CommandResponse{Error: bindingErrorMessage(err)})
		return
	}

	logger.Info("Received update-item command", slog.Int64("item_id", req.ID))
	if err := h.inventoryService.UpdateItem(c.Request.Context(), req); err != nil {
		logger.Warn("Failed to update item", slog.Int64("item_id", req.ID), slog.String("error", err.Error()))
		respondCommandError(c, err)
		return
	}

	respondCommandData(c, http.StatusOK, nil)
}

func (h *commandHandler) insertItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InsertItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for insert-item", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.CommandResponse{Error: bindingErrorMessage(err)})
		return
	}

	logger.Info("Received insert-item command", slog.Int64("item_id", req.ID))
	if err := h.inventoryService.InsertItem(c.Request.Context(), req); err != nil {
		logger.Warn("Failed to insert item", slog.Int64("item_id", req.ID), slog.String("error", err.Error()))
		respondCommandError(c, err)
		return
	}

	respondCommandData(c, http.StatusCreated, nil)
}

func respondCommandData(c *gin.Context, status int, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		respondCommandError(c, apperrors.NewAppError(http.StatusInternalServerError, "failed to encode reply", err))
		return
	}
	c.JSON(status, dto.CommandResponse{Data: raw})
}

func respondCommandError(c *gin.Context, err error) {
	status := statusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.JSON(status, dto.CommandResponse{Error: msg})
}
