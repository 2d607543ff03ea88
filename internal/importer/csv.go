package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	enc "github.com/MrJamesThe3rd/backoffice/internal/encoding"
	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
)

// sniffLines bounds how many lines are looked at to pick the delimiter.
const sniffLines = 10

// CSVParser reads comma, semicolon or tab separated vendor lists in any
// encoding the encoding package can detect.
type CSVParser struct{}

func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

func (p *CSVParser) Parse(r io.Reader) ([]vendor.Params, error) {
	utf8r, charset, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	comma := detectDelimiter(data)
	slog.Debug("parsing vendor csv", "charset", charset, "delimiter", string(comma))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return parseRows(rows)
}

// detectDelimiter picks whichever of , ; or tab appears most often in the
// first lines. Ties go to the comma.
func detectDelimiter(data []byte) rune {
	lines := bytes.SplitN(data, []byte("\n"), sniffLines+1)
	if len(lines) > sniffLines {
		lines = lines[:sniffLines]
	}

	best, bestCount := ',', 0

	for _, d := range []rune{',', ';', '\t'} {
		count := 0
		for _, line := range lines {
			count += bytes.Count(line, []byte(string(d)))
		}

		if count > bestCount {
			best, bestCount = d, count
		}
	}

	return best
}
