// Package respond writes JSON bodies and maps domain errors to HTTP statuses.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/importer"
	"github.com/MrJamesThe3rd/backoffice/internal/storage"
	"github.com/MrJamesThe3rd/backoffice/internal/user"
	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// File sends a rendered download. Inline files open in the browser.
func File(w http.ResponseWriter, name, contentType string, data []byte, inline bool) {
	disposition := "attachment"
	if inline {
		disposition = "inline"
	}

	if v := mime.FormatMediaType(disposition, map[string]string{"filename": name}); v != "" {
		disposition = v
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", disposition)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write file", "name", name, "error", err)
	}
}

// Status maps a service error to the status code it is reported with.
func Status(err error) int {
	switch {
	case document.IsValidation(err),
		errors.Is(err, importer.ErrNoHeader),
		errors.Is(err, importer.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.Is(err, document.ErrNotFound),
		errors.Is(err, vendor.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, document.ErrDuplicateNumber),
		errors.Is(err, document.ErrNumberOverflow),
		errors.Is(err, vendor.ErrInUse),
		errors.Is(err, user.ErrLastAdmin):
		return http.StatusConflict
	case errors.Is(err, storage.ErrDisabled):
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

// Error reports err with the mapped status. Server errors, render failures
// included, are logged and their details kept out of the response.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)

	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "internal error", status)

		return
	}

	http.Error(w, err.Error(), status)
}
