// Package services contains the application core: the batch importer
// that sequences derivation, extraction, upload and record creation over
// the driven ports.
package services
