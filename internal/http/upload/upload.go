// Package upload reads logo images from multipart forms.
package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
)

// MaxImageSize bounds an uploaded logo.
const MaxImageSize = 2 << 20

// MaxFileSize bounds an uploaded import file.
const MaxFileSize = 10 << 20

var imageTypes = []string{"image/png", "image/jpeg", "image/gif"}

// Image reads the named form file and sniffs its type. Only formats the PDF
// renderer can embed are accepted.
func Image(w http.ResponseWriter, r *http.Request, field string) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxImageSize+1<<10)

	file, _, err := r.FormFile(field)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return "", nil, document.Invalid(field, fmt.Sprintf("must be at most %d bytes", MaxImageSize))
		}

		return "", nil, document.Invalid(field, "is required")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", field, err)
	}

	if len(data) > MaxImageSize {
		return "", nil, document.Invalid(field, fmt.Sprintf("must be at most %d bytes", MaxImageSize))
	}

	contentType := http.DetectContentType(data)
	if !slices.Contains(imageTypes, contentType) {
		return "", nil, document.Invalid(field, "must be a PNG, JPEG or GIF image")
	}

	return contentType, data, nil
}
