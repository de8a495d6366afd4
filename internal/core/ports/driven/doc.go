// Package driven defines the interfaces the import pipeline consumes:
// the payroll folder, the PDF scanner, cloud storage, the destination
// database and the local run ledger. Adapters implement them.
package driven
