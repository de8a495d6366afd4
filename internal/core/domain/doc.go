// Package domain contains the payslip model and the pure value logic of
// the importer: file-name derivation, the Spanish month table, locale
// amount parsing and the error taxonomy. It depends on nothing outside
// the standard library.
package domain
