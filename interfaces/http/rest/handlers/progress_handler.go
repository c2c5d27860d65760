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

// ProgressHandler handles per-user training progress requests
type ProgressHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *ProgressHandler {
	return &ProgressHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// SaveProgressRequest replaces the caller's training progress
type SaveProgressRequest struct {
	CompletedIDs []string       `json:"completedIds" validate:"max=1000"`
	StepPosition map[string]int `json:"stepPosition,omitempty"`
}

// GetProgress handles GET /progress
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetProgressQuery{
		TenantID: userCtx.TenantID,
		UserID:   userCtx.UserID,
	})
	if err != nil {
		h.logger.Error("Failed to get progress",
			zap.String("tenantID", userCtx.TenantID),
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// SaveProgress handles PUT /progress
func (h *ProgressHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	var req SaveProgressRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.SaveProgressCommand{
		TenantID:     userCtx.TenantID,
		UserID:       userCtx.UserID,
		CompletedIDs: req.CompletedIDs,
		StepPosition: req.StepPosition,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to save progress",
			zap.String("tenantID", userCtx.TenantID),
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Progress saved",
	})
}
