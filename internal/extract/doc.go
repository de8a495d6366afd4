// Package extract reconstructs visual rows from positioned text fragments
// and recovers the labeled salary amounts from them. It operates on fully
// materialised fragment sets; reading the PDF itself is the scanner
// adapter's job.
package extract
