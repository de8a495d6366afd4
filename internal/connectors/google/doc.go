// Package google builds and classifies Google API clients for the
// importer: Drive service construction, non-interactive credentials and
// rate limiting.
package google
