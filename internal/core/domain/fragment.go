package domain

import "strings"

// TextFragment is one positioned piece of text from a document scan.
// Fragments sharing an identical Vertical value sit on the same visual
// line; Horizontal orders them left to right within the line. Scanners
// normalise coordinates so that larger Vertical values sit lower on the
// page.
type TextFragment struct {
	Text       string
	Vertical   float64
	Horizontal float64
}

// Row is the reconstructed text of one visual line, fragment texts
// ordered left to right.
type Row []string

// Text joins the row's fragments with single spaces.
func (r Row) Text() string {
	return strings.Join(r, " ")
}
