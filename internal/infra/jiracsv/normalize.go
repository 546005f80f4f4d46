// Package jiracsv reads Jira CSV exports into domain issues.
package jiracsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runoshun/jiraplot/internal/domain"
)

// utf8BOM is prepended to the header by Jira's "Export CSV (all fields)".
const utf8BOM = "\ufeff"

// NormalizeHeader makes repeated multi-valued headers unique.
// Every header containing one of markers gets " <n>" appended, where n is a
// single counter shared by all markers ("Blocks,Blocks,Labels" becomes
// "Blocks 1,Blocks 2,Labels 3"). Other headers are returned unchanged.
func NormalizeHeader(header, markers []string) []string {
	out := make([]string, len(header))
	n := 0
	for i, h := range header {
		if matchMarker(h, markers) < 0 {
			out[i] = h
			continue
		}
		n++
		out[i] = h + " " + strconv.Itoa(n)
	}
	return out
}

// matchMarker returns the index of the first marker contained in header, or -1.
func matchMarker(header string, markers []string) int {
	for i, m := range markers {
		if m != "" && strings.Contains(header, m) {
			return i
		}
	}
	return -1
}

// Normalize copies the CSV document from r to w with its header normalized.
func Normalize(r io.Reader, w io.Writer, markers []string) error {
	cr := newCSVReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return domain.ErrEmptyFile
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(NormalizeHeader(cleanHeader(header), markers)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// newCSVReader returns a reader tolerant of the quirks of Jira exports.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// cleanHeader strips the byte order mark from the first header cell.
func cleanHeader(header []string) []string {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	return header
}
