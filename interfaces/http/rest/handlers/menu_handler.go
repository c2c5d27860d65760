package handlers

import (
	"net/http"

	"mentra-backend/application/commands"
	"mentra-backend/application/commands/bus"
	"mentra-backend/application/queries"
	querybus "mentra-backend/application/queries/bus"
	"mentra-backend/domain/menu"
	"mentra-backend/pkg/auth"
	"mentra-backend/pkg/common"
	pkgerrors "mentra-backend/pkg/errors"
	"mentra-backend/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// MenuHandler handles menu view, ordering and move requests
type MenuHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *MenuHandler {
	return &MenuHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// SaveOrderingRequest carries a full replacement ordering document
type SaveOrderingRequest struct {
	CategoryOrder    []string            `json:"categoryOrder"`
	SubcategoryOrder map[string][]string `json:"subcategoryOrder"`
	ItemOrder        map[string][]string `json:"itemOrder"`
}

// MoveEntryRequest describes one drag-and-drop gesture
type MoveEntryRequest struct {
	Level           string `json:"level" validate:"required,oneof=category subcategory item"`
	ID              string `json:"id" validate:"required"`
	CategorySlug    string `json:"categorySlug,omitempty"`
	SubcategorySlug string `json:"subcategorySlug,omitempty"`
	ToCategory      string `json:"toCategory,omitempty" validate:"max=100"`
	ToSubcategory   string `json:"toSubcategory,omitempty" validate:"max=100"`
	Index           int    `json:"index" validate:"gte=0"`
}

// GetMenu handles GET /menu
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetMenuQuery{TenantID: userCtx.TenantID})
	if err != nil {
		h.logger.Error("Failed to get menu",
			zap.String("tenantID", userCtx.TenantID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// SaveOrdering handles PUT /ordering
func (h *MenuHandler) SaveOrdering(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	var req SaveOrderingRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	cmd := commands.SaveOrderingCommand{
		TenantID: userCtx.TenantID,
		Ordering: menu.Ordering{
			CategoryOrder:    req.CategoryOrder,
			SubcategoryOrder: req.SubcategoryOrder,
			ItemOrder:        req.ItemOrder,
		},
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to save ordering",
			zap.String("tenantID", userCtx.TenantID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Ordering saved",
	})
}

// MoveEntry handles POST /menu/move
func (h *MenuHandler) MoveEntry(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	var req MoveEntryRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.MoveEntryCommand{
		TenantID:        userCtx.TenantID,
		Level:           menu.MoveLevel(req.Level),
		ID:              req.ID,
		CategorySlug:    req.CategorySlug,
		SubcategorySlug: req.SubcategorySlug,
		ToCategory:      req.ToCategory,
		ToSubcategory:   req.ToSubcategory,
		Index:           req.Index,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to move entry",
			zap.String("tenantID", userCtx.TenantID),
			zap.String("level", req.Level),
			zap.String("id", req.ID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Entry moved",
	})
}
