package extract

import (
	"fmt"
	"strings"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
)

// The three fixed labels preceding each amount on the payslip. The net
// row is printed last on the page and is the completion condition for a
// document.
const (
	labelGross      = "A. TOTAL DEVENGADO"
	labelDeductions = "B. TOTAL A DEDUCIR"
	labelNet        = "LIQUIDO TOTAL A PERCIBIR (A-B)"
)

// Amounts holds the salary figures recovered from one document. Gross and
// deductions may stay nil when their labels never appear; a nil net is an
// extraction failure.
type Amounts struct {
	Gross      *float64
	Deductions *float64
	Net        *float64
}

// ExtractAmounts scans the reconstructed rows top to bottom for the three
// amount labels and parses the trailing token of each matching row. The
// first occurrence of a label wins; later matches are ignored.
//
// Returns domain.ErrExtractionIncomplete when every row has been scanned
// and the net amount is still unset, and domain.ErrAmountFormat when a
// matched row's trailing token is not a parsable amount. It never returns
// a partially populated result alongside an error.
func ExtractAmounts(rows []domain.Row) (Amounts, error) {
	var a Amounts
	for _, row := range rows {
		text := row.Text()

		switch {
		case a.Gross == nil && strings.HasPrefix(text, labelGross):
			v, err := trailingAmount(text)
			if err != nil {
				return Amounts{}, err
			}
			a.Gross = &v

		case a.Deductions == nil && strings.HasPrefix(text, labelDeductions):
			v, err := trailingAmount(text)
			if err != nil {
				return Amounts{}, err
			}
			a.Deductions = &v

		case a.Net == nil && strings.HasPrefix(text, labelNet):
			v, err := trailingAmount(text)
			if err != nil {
				return Amounts{}, err
			}
			a.Net = &v
		}
	}

	if a.Net == nil {
		return Amounts{}, domain.ErrExtractionIncomplete
	}
	return a, nil
}

// trailingAmount parses the last whitespace-separated token of a row's
// joined text as a Spanish-formatted amount.
func trailingAmount(rowText string) (float64, error) {
	fields := strings.Fields(rowText)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty row", domain.ErrAmountFormat)
	}
	return domain.ParseAmount(fields[len(fields)-1])
}
