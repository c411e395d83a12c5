// Package chunkcsv streams vacancy rows out of a single CSV chunk file.
package chunkcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reader yields one chunk file's rows as column-name→value maps. Rows that
// fail basic screening (wrong field count, any empty field) are dropped
// silently; they carry no statistical weight.
type Reader struct {
	file    *os.File
	csv     *csv.Reader
	headers []string
}

// Open opens a chunk file and consumes its header row.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chunk file: %w", err)
	}

	cr := csv.NewReader(file)
	cr.LazyQuotes = true
	// Field-count mismatches are screened per row, not treated as CSV errors.
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err != nil {
		_ = file.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("chunk file %s has no header row", path)
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	// Chunk files may start with a UTF-8 byte-order mark.
	headers[0] = strings.TrimPrefix(headers[0], "\ufeff")

	return &Reader{file: file, csv: cr, headers: headers}, nil
}

// Headers returns the column names from the header row.
func (r *Reader) Headers() []string {
	return r.headers
}

// Next returns the next valid row keyed by column name, or io.EOF once the
// file is exhausted.
func (r *Reader) Next() (map[string]string, error) {
	for {
		record, err := r.csv.Read()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		if !r.valid(record) {
			continue
		}

		row := make(map[string]string, len(r.headers))
		for i, h := range r.headers {
			row[h] = record[i]
		}
		return row, nil
	}
}

func (r *Reader) valid(record []string) bool {
	if len(record) != len(r.headers) {
		return false
	}
	for _, field := range record {
		if field == "" {
			return false
		}
	}
	return true
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
