package document

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	numberSeparator = "/"
	sequenceWidth   = 4
	maxSequence     = 9999
)

// NumberLookup finds the lexicographically greatest existing number that
// starts with prefix. It returns "" when there is none.
type NumberLookup interface {
	MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}

// Initials returns the upper-cased first letter of every whitespace separated
// token of name, e.g. "Acme Co" -> "AC".
func Initials(name string) string {
	var sb strings.Builder

	for _, token := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(token)
		sb.WriteRune(unicode.ToUpper(r))
	}

	return sb.String()
}

// NumberPrefix returns "<PREFIX>/<INITIALS>/<YEAR>/" for a document of kind
// issued to vendorName on date.
func NumberPrefix(kind Kind, vendorName string, date time.Time) string {
	return strings.Join([]string{
		kind.Prefix(),
		Initials(vendorName),
		strconv.Itoa(date.Year()),
		"",
	}, numberSeparator)
}

// FormatNumber joins a prefix produced by NumberPrefix with a sequence value.
func FormatNumber(prefix string, seq int) string {
	return fmt.Sprintf("%s%0*d", prefix, sequenceWidth, seq)
}

// NextNumber computes the next number in the vendor-year sequence of kind.
// Ordering relies on the zero-padded suffix, so sequences stop at 9999
// instead of widening.
func NextNumber(ctx context.Context, lookup NumberLookup, kind Kind, vendorName string, date time.Time) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown document kind %q", kind)
	}

	if strings.TrimSpace(vendorName) == "" {
		return "", Invalid("vendor", "name is required for numbering")
	}

	prefix := NumberPrefix(kind, vendorName, date)

	last, err := lookup.MaxNumberWithPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("finding last number: %w", err)
	}

	seq := 1

	if last != "" {
		n, err := sequenceOf(last)
		if err != nil {
			return "", err
		}

		seq = n + 1
	}

	if seq > maxSequence {
		return "", fmt.Errorf("%s: %w", prefix, ErrNumberOverflow)
	}

	return FormatNumber(prefix, seq), nil
}

// CheckExplicitNumber rejects a caller-supplied number that sits under the
// automatic prefix for kind, vendorName and date without a four digit
// suffix. Such a number sorts above every later automatic number and would
// stall the sequence. field names the offending input.
func CheckExplicitNumber(field string, kind Kind, vendorName string, date time.Time, number string) error {
	suffix, ok := strings.CutPrefix(number, NumberPrefix(kind, vendorName, date))
	if !ok {
		return nil
	}

	if len(suffix) != sequenceWidth || strings.TrimLeft(suffix, "0123456789") != "" {
		return Invalid(field, fmt.Sprintf("must end in a %d digit sequence when it starts with %s",
			sequenceWidth, NumberPrefix(kind, vendorName, date)))
	}

	return nil
}

// GeneratedLength is the length of every automatic number under prefix.
func GeneratedLength(prefix string) int {
	return len(prefix) + sequenceWidth
}

func sequenceOf(number string) (int, error) {
	idx := strings.LastIndex(number, numberSeparator)
	if idx < 0 {
		return 0, fmt.Errorf("malformed document number %q", number)
	}

	n, err := strconv.Atoi(number[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("malformed document number %q: %w", number, err)
	}

	return n, nil
}

// LockKey hashes a numbering prefix into a Postgres advisory lock key.
func LockKey(prefix string) int64 {
	h := fnv.New64a()
	h.Write([]byte(prefix))

	return int64(h.Sum64())
}

// FileSafe replaces the number separator so the number can be used in a
// filename.
func FileSafe(number string) string {
	return strings.ReplaceAll(number, numberSeparator, "_")
}
