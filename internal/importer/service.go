package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
)

type Service struct {
	csvImporter  Importer
	xlsxImporter Importer
}

func NewService() *Service {
	return &Service{
		csvImporter:  NewCSVParser(),
		xlsxImporter: NewXLSXParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]vendor.Params, error) {
	var importer Importer

	switch format {
	case FormatCSV:
		importer = s.csvImporter
	case FormatXLSX:
		importer = s.xlsxImporter
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return importer.Parse(r)
}
