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

	"go.uber.org/zap"
)

// PlaylistHandler handles training playlist requests
type PlaylistHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewPlaylistHandler creates a new playlist handler
func NewPlaylistHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *PlaylistHandler {
	return &PlaylistHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// UpdatePlaylistRequest replaces the tenant's playlist
type UpdatePlaylistRequest struct {
	ItemIDs []string `json:"itemIds" validate:"max=500"`
}

// GetPlaylist handles GET /playlist
func (h *PlaylistHandler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetPlaylistQuery{TenantID: userCtx.TenantID})
	if err != nil {
		h.logger.Error("Failed to get playlist",
			zap.String("tenantID", userCtx.TenantID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// UpdatePlaylist handles PUT /playlist
func (h *PlaylistHandler) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	var req UpdatePlaylistRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.UpdatePlaylistCommand{
		TenantID: userCtx.TenantID,
		ItemIDs:  req.ItemIDs,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to update playlist",
			zap.String("tenantID", userCtx.TenantID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Playlist updated",
	})
}
