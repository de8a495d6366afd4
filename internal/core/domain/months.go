package domain

import "fmt"

// monthNames maps the two-digit month code from payslip file names to the
// Spanish month name used in display names.
var monthNames = map[string]string{
	"01": "Enero",
	"02": "Febrero",
	"03": "Marzo",
	"04": "Abril",
	"05": "Mayo",
	"06": "Junio",
	"07": "Julio",
	"08": "Agosto",
	"09": "Septiembre",
	"10": "Octubre",
	"11": "Noviembre",
	"12": "Diciembre",
}

// MonthName returns the Spanish name for a two-digit month code.
// Codes outside 01..12 are errors, never a silent default.
func MonthName(code string) (string, error) {
	name, ok := monthNames[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMonth, code)
	}
	return name, nil
}
