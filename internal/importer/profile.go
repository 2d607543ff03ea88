package importer

import "strings"

// field identifies a vendor attribute a column can feed.
type field int

const (
	fieldName field = iota
	fieldAddress
	fieldCity
	fieldState
	fieldZipCode
	fieldPhone
	fieldEmail
	fieldTaxTIN
	fieldBankAccountNumber
	fieldBankAccountName
	fieldBankName
	fieldTemplate
)

// Profile describes the header layout of one known vendor list export.
// Adding a new layout is just adding a Profile to the profiles slice.
type Profile struct {
	Name    string
	Columns map[field][]string
}

// profiles is tried in order during header detection. More specific
// profiles come first to avoid false matches.
var profiles = []Profile{
	{
		// Outlook and Google contact exports.
		Name: "contacts",
		Columns: map[field][]string{
			fieldName:    {"company", "organization name", "organization 1 - name"},
			fieldAddress: {"business street", "address 1 - street"},
			fieldCity:    {"business city", "address 1 - city"},
			fieldState:   {"business state", "address 1 - region"},
			fieldZipCode: {"business postal code", "address 1 - postal code"},
			fieldPhone:   {"business phone", "phone 1 - value"},
			fieldEmail:   {"e-mail address", "e-mail 1 - value"},
		},
	},
	{
		// API field names and hand-maintained supplier sheets.
		Name: "vendors",
		Columns: map[field][]string{
			fieldName:              {"name", "vendor name", "vendor", "supplier", "supplier name", "company name"},
			fieldAddress:           {"address", "street address", "street"},
			fieldCity:              {"city", "town"},
			fieldState:             {"state", "region"},
			fieldZipCode:           {"zip code", "zip", "postal code", "postcode"},
			fieldPhone:             {"phone number", "phone", "telephone", "mobile"},
			fieldEmail:             {"email", "email address", "e-mail"},
			fieldTaxTIN:            {"tax tin", "tin", "tax id"},
			fieldBankAccountNumber: {"bank account number", "account number", "account no"},
			fieldBankAccountName:   {"bank account name", "account name"},
			fieldBankName:          {"bank name", "bank"},
			fieldTemplate:          {"invoice template", "template"},
		},
	},
}

var requiredFields = []field{fieldName, fieldEmail}

// colIndex maps a vendor field to its column in the row.
type colIndex map[field]int

// match maps a header row onto the profile. ok is false unless every
// required field has a column.
func (p Profile) match(row []string) (colIndex, bool) {
	cols := make(colIndex)

	for i, cell := range row {
		name := normalize(cell)
		if name == "" {
			continue
		}

		for f, aliases := range p.Columns {
			if _, taken := cols[f]; taken {
				continue
			}

			for _, alias := range aliases {
				if name == alias {
					cols[f] = i
					break
				}
			}
		}
	}

	for _, f := range requiredFields {
		if _, ok := cols[f]; !ok {
			return nil, false
		}
	}

	return cols, true
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ":")
	s = strings.ReplaceAll(s, "_", " ")

	return strings.Join(strings.Fields(s), " ")
}
