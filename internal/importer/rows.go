package importer

import (
	"strings"

	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
)

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		for i := range profiles {
			if cols, ok := profiles[i].match(row); ok {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// parseRows detects the header and maps each following non-blank row to
// vendor params. Validation happens when the batch is imported.
func parseRows(rows [][]string) ([]vendor.Params, error) {
	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, ErrNoHeader
	}

	var params []vendor.Params

	for _, row := range rows[headerIdx+1:] {
		if blank(row) {
			continue
		}

		params = append(params, vendor.Params{
			Name:              cols.value(row, fieldName),
			Address:           cols.value(row, fieldAddress),
			City:              cols.value(row, fieldCity),
			State:             cols.value(row, fieldState),
			ZipCode:           cols.value(row, fieldZipCode),
			PhoneNumber:       cols.value(row, fieldPhone),
			Email:             cols.value(row, fieldEmail),
			TaxTIN:            cols.value(row, fieldTaxTIN),
			BankAccountNumber: cols.value(row, fieldBankAccountNumber),
			BankAccountName:   cols.value(row, fieldBankAccountName),
			BankName:          cols.value(row, fieldBankName),
			InvoiceTemplate:   vendor.Template(strings.ToLower(cols.value(row, fieldTemplate))),
		})
	}

	return params, nil
}

// value safely gets a trimmed cell for f. Missing columns read as "".
func (c colIndex) value(row []string, f field) string {
	idx, ok := c[f]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
