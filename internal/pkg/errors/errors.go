package errors

import (
	"encoding/json"
	"errors"
	"net/http"
)

// AppError carries an HTTP status plus RFC 7807 title/detail.
type AppError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *AppError) Error() string {
	return e.Title + ": " + e.Detail
}

func New(status int, title, detail string) *AppError {
	return &AppError{Status: status, Title: title, Detail: detail}
}

// WriteError renders err as application/problem+json. Non-AppError values
// are masked as a generic internal error.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = New(http.StatusInternalServerError, "Internal Server Error", "unexpected error")
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(appErr.Status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "about:blank",
		"title":  appErr.Title,
		"status": appErr.Status,
		"detail": appErr.Detail,
	})
}
