package handler

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "github.com/Arockiam07/College-Voting-System/pkg/errors"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError maps an error to the taxonomy response. Anything that is
// not an AppError is surfaced as a generic internal error without details.
func respondError(w http.ResponseWriter, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.NewInternalError("Internal server error", err)
	}

	response := &apperrors.ErrorResponse{}
	response.Error.Type = appErr.Type
	response.Error.Message = appErr.Message
	response.Error.Details = appErr.Details
	response.Error.Timestamp = time.Now().UTC().Format(time.RFC3339)

	respondJSON(w, appErr.StatusCode, response)
}

func respondValidationError(w http.ResponseWriter, message string) {
	respondError(w, apperrors.NewValidationError(message, nil))
}

// generateETag derives a weak content hash for polling endpoints
func generateETag(data interface{}) string {
	jsonData, _ := json.Marshal(data)
	hash := md5.Sum(jsonData)
	return fmt.Sprintf(`"%x"`, hash)
}

// writeCachedJSON sets ETag/Cache-Control and honors If-None-Match
func writeCachedJSON(w http.ResponseWriter, r *http.Request, maxAge int, data interface{}) {
	etag := generateETag(data)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
	respondJSON(w, http.StatusOK, data)
}
