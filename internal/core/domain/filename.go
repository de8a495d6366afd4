package domain

import (
	"fmt"
	"regexp"
)

// fileNamePattern matches "YYYY-MM.pdf" with an optional "-extra" suffix
// marking a supplementary payment, anchored at the end of the name.
var fileNamePattern = regexp.MustCompile(`(\d{4})-(\d{2})(-extra)?\.pdf$`)

// DeriveIdentity fills Name, Date and Extra from the payslip's file name.
// Returns ErrFileNameFormat when the name does not match the pattern and
// ErrUnknownMonth when the month code is not 01..12; either way the
// payslip is left untouched.
func DeriveIdentity(p *Payslip) error {
	m := fileNamePattern.FindStringSubmatch(p.FileName)
	if m == nil {
		return fmt.Errorf("%w: %q", ErrFileNameFormat, p.FileName)
	}

	year, month := m[1], m[2]
	extra := m[3] != ""

	monthName, err := MonthName(month)
	if err != nil {
		return fmt.Errorf("%s: %w", p.FileName, err)
	}

	name := year + " " + monthName
	if extra {
		name += " Extra"
	}

	p.Name = name
	p.Date = fmt.Sprintf("%s-%s-25", year, month)
	p.Extra = extra
	return nil
}

// FileYear returns the four-digit year of a well-formed payslip file
// name, or "" when the name does not match the pattern.
func FileYear(fileName string) string {
	m := fileNamePattern.FindStringSubmatch(fileName)
	if m == nil {
		return ""
	}
	return m[1]
}
