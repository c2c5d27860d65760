package handlers

import (
	"net/http"

	"mentra-backend/application/commands"
	"mentra-backend/application/commands/bus"
	"mentra-backend/application/queries"
	querybus "mentra-backend/application/queries/bus"
	"mentra-backend/pkg/auth"
	"mentra-backend/pkg/common"
	pkgerrors "mentra-backend/pkg/errors"
	"mentra-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ItemHandler handles item CRUD requests
type ItemHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *ItemHandler {
	return &ItemHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// CreateItemRequest represents the request body for creating an item
type CreateItemRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Category    string   `json:"category,omitempty" validate:"max=100"`
	Subcategory string   `json:"subcategory,omitempty" validate:"max=100"`
	Description string   `json:"description,omitempty" validate:"max=5000"`
	VideoURL    string   `json:"videoUrl,omitempty" validate:"omitempty,url"`
	Steps       []string `json:"steps,omitempty" validate:"max=100,dive,max=2000"`
}

// UpdateItemRequest represents the request body for updating an item
type UpdateItemRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Category    string   `json:"category,omitempty" validate:"max=100"`
	Subcategory string   `json:"subcategory,omitempty" validate:"max=100"`
	Description string   `json:"description,omitempty" validate:"max=5000"`
	VideoURL    string   `json:"videoUrl,omitempty" validate:"omitempty,url"`
	Steps       []string `json:"steps,omitempty" validate:"max=100,dive,max=2000"`
}

// CreateItemResponse represents the response for creating an item
type CreateItemResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	var req CreateItemRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	itemID := uuid.New().String()

	cmd := commands.UpsertItemCommand{
		TenantID:    userCtx.TenantID,
		ItemID:      itemID,
		IsNew:       true,
		Title:       req.Title,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Steps:       req.Steps,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to create item",
			zap.String("tenantID", userCtx.TenantID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, CreateItemResponse{
		ID:      itemID,
		Message: "Item created",
	})
}

// GetItem handles GET /items/{itemID}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if _, err := uuid.Parse(itemID); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid item ID format"))
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetItemQuery{
		TenantID: userCtx.TenantID,
		ItemID:   itemID,
	})
	if err != nil {
		if !pkgerrors.IsNotFound(err) {
			h.logger.Error("Failed to get item",
				zap.String("tenantID", userCtx.TenantID),
				zap.String("itemID", itemID),
				zap.Error(err),
			)
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListItemsQuery{TenantID: userCtx.TenantID})
	if err != nil {
		h.logger.Error("Failed to list items",
			zap.String("tenantID", userCtx.TenantID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// UpdateItem handles PUT /items/{itemID}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if _, err := uuid.Parse(itemID); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid item ID format"))
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	var req UpdateItemRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.UpsertItemCommand{
		TenantID:    userCtx.TenantID,
		ItemID:      itemID,
		Title:       req.Title,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Steps:       req.Steps,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		if !pkgerrors.IsNotFound(err) {
			h.logger.Error("Failed to update item",
				zap.String("tenantID", userCtx.TenantID),
				zap.String("itemID", itemID),
				zap.Error(err),
			)
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Item updated",
		"id":      itemID,
	})
}

// DeleteItem handles DELETE /items/{itemID}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if _, err := uuid.Parse(itemID); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid item ID format"))
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.DeleteItemCommand{
		TenantID: userCtx.TenantID,
		ItemID:   itemID,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		if !pkgerrors.IsNotFound(err) {
			h.logger.Error("Failed to delete item",
				zap.String("tenantID", userCtx.TenantID),
				zap.String("itemID", itemID),
				zap.Error(err),
			)
		}
		common.RespondAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
