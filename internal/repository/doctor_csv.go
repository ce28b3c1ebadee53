package repository

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"doctorhub-api/internal/domain/entity"
	domainRepo "doctorhub-api/internal/domain/repository"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM drops a leading UTF-8 byte-order mark so a quoted first header still parses.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

// normalizeHeader trims whitespace and removes every U+FEFF from a column name.
func normalizeHeader(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, "\ufeff", ""))
}

func normalizeHeaders(header []string) []string {
	out := make([]string, len(header))
	for i, name := range header {
		out[i] = normalizeHeader(name)
	}
	return out
}

// parseDoctorCSV reads a header row and all data rows in file order.
// Short rows are padded with "", extra trailing columns are dropped.
func parseDoctorCSV(r io.Reader) ([]entity.DoctorRecord, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1

	records := make([]entity.DoctorRecord, 0)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return records, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", domainRepo.ErrMalformedCSV, err)
	}
	header = normalizeHeaders(header)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domainRepo.ErrMalformedCSV, err)
		}

		record := make(entity.DoctorRecord, len(header))
		for i, name := range header {
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			record[name] = value
		}
		record.EnsureRequired()
		records = append(records, record)
	}

	return records, nil
}

// readCSVHeader returns the normalized header of r, or nil when r is empty.
func readCSVHeader(r io.Reader) ([]string, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", domainRepo.ErrMalformedCSV, err)
	}
	return normalizeHeaders(header), nil
}
