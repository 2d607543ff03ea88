// Package importer turns uploaded vendor lists into vendor params.
package importer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var (
	ErrUnknownFormat = errors.New("unknown import format")
	ErrNoHeader      = errors.New("no vendor header row found: expected at least name and email columns")
)

type Importer interface {
	Parse(r io.Reader) ([]vendor.Params, error)
}

// FormatFromName picks the format from a file name's extension.
func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(name))
}
