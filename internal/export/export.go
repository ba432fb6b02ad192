// Package export renders a computed general ledger view as XLSX or PDF.
package export

import (
	"fmt"
	"io"
	"strings"
)

// Format is an export file type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts "xlsx" or "pdf" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatXLSX, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Write renders the report in the given format to w.
func Write(w io.Writer, f Format, r Report) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatXLSX:
		data, err = BuildXLSX(r)
	case FormatPDF:
		data, err = BuildPDF(r)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
	if err != nil {
		return fmt.Errorf("building %s: %w", f, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", f, err)
	}
	return nil
}
