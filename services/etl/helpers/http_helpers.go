package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	batch "auction-etl/internal/batchService"
	"auction-etl/internal/etlerrors"
	model "auction-etl/internal/models"
	"auction-etl/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps extraction/driver errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, etlerrors.ErrNoInputFiles):
		return http.StatusBadRequest, "no input files supplied"
	case errors.Is(err, etlerrors.ErrBatchInProgress):
		return http.StatusConflict, "a batch is already running"
	case errors.Is(err, etlerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusUnprocessableEntity, "input file not found"
	case errors.Is(err, etlerrors.ErrMissingItems),
		errors.Is(err, etlerrors.ErrMissingField),
		errors.Is(err, etlerrors.ErrInvalidField),
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr):
		return http.StatusUnprocessableEntity, "input file could not be extracted"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ToBatchResponse converts a driver report to its HTTP shape
func ToBatchResponse(r batch.BatchReport) BatchResponse {
	files := make([]FileSummary, 0, len(r.Files))
	for _, f := range r.Files {
		files = append(files, FileSummary{
			Path:       f.Path,
			Items:      f.Items,
			Bids:       f.Bids,
			Categories: f.Categories,
			BidVolume:  f.BidVolume.StringFixed(2),
		})
	}

	skipped := r.Skipped
	if skipped == nil {
		skipped = []string{}
	}

	return BatchResponse{
		RunID:      r.RunID,
		Files:      files,
		Skipped:    skipped,
		Items:      r.Items,
		Bids:       r.Bids,
		Categories: r.Categories,
		Users:      r.Users,
		BidVolume:  r.BidVolume.StringFixed(2),
	}
}

// ToUserResponse converts a directory entry to its HTTP shape
func ToUserResponse(u model.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Rating:   u.Rating,
		Location: u.Location,
		Country:  u.Country,
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
