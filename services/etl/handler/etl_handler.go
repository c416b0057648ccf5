package handler

import (
	"errors"
	"fmt"
	"net/http"

	batch "auction-etl/internal/batchService"
	"auction-etl/internal/etlerrors"
	"auction-etl/internal/repository"
	"auction-etl/services/etl/helpers"
	"auction-etl/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=etl_handler.go -destination=mock_etl_handler.go -package=handler

type BatchRunner interface {
	Run(paths []string) (batch.BatchReport, error)
	Directory() repository.UserDirectory
}

type ETLHandler struct {
	runner BatchRunner
}

func NewETLHandler(runner BatchRunner) *ETLHandler {
	return &ETLHandler{runner: runner}
}

// RunBatchHandler handles POST /batches
func (h *ETLHandler) RunBatchHandler(c *gin.Context) {
	var req helpers.RunBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RunBatchHandler", err)
		return
	}

	report, err := h.runner.Run(req.Paths)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RunBatchHandler: batch failed", map[string]any{
			"handler": "RunBatchHandler",
			"run_id":  report.RunID,
			"paths":   len(req.Paths),
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBatchResponse(report), "batch completed successfully")
	helpers.LogSuccess("RunBatchHandler", "batch completed successfully", map[string]any{
		"run_id": report.RunID,
		"files":  len(report.Files),
		"items":  report.Items,
		"users":  report.Users,
	})
}

// GetUserHandler handles GET /users/:user_id
func (h *ETLHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.runner.Directory().GetUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		if errors.Is(err, etlerrors.ErrUserNotFound) {
			utils.JSONError(c, status, err, message)
			utils.Info("GetUserHandler: user not found", map[string]any{"user_id": userID})
			return
		}
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserHandler: error retrieving user", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(user), "user retrieved successfully")
	helpers.LogSuccess("GetUserHandler", "user retrieved successfully", map[string]any{"user_id": userID})
}

// ListUsersHandler handles GET /users
func (h *ETLHandler) ListUsersHandler(c *gin.Context) {
	users := h.runner.Directory().ListUsers()

	resp := make([]helpers.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, helpers.ToUserResponse(u))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "users retrieved successfully")
	helpers.LogSuccess("ListUsersHandler", "users retrieved successfully", map[string]any{"count": len(resp)})
}
