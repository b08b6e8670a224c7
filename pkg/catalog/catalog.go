package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is one row of the repair service catalog. The catalog is read-only
// after load.
type Record struct {
	RepairerType   string
	Category       string
	GarmentType    string
	Service        string
	Description    string
	Price          float64
	EstimatedHours *float64
}

// Text returns the newline-concatenated row used for embedding. The field
// order must stay in sync with the indexed vectors, otherwise query and
// document embeddings stop living in the same space.
func (r *Record) Text() string {
	hours := ""
	if r.EstimatedHours != nil {
		hours = strconv.FormatFloat(*r.EstimatedHours, 'f', -1, 64)
	}
	return strings.Join([]string{
		r.RepairerType,
		r.Category,
		r.GarmentType,
		r.Service,
		r.Description,
		strconv.FormatFloat(r.Price, 'f', -1, 64),
		hours,
	}, "\n")
}

// Column headers as produced by the upstream dataset export.
const (
	headerRepairer    = "Type of Repairer"
	headerCategory    = "Type of category"
	headerGarment     = "Type of garment in category"
	headerService     = "Service"
	headerDescription = "Description"
	headerPrice       = "Price"
	headerHours       = "Estimated time in hours"
)

// LoadCSV reads catalog records from r. The header row is required and is
// matched by name, so column order in the export does not matter.
func LoadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{headerRepairer, headerCategory, headerGarment, headerService, headerDescription, headerPrice} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("catalog is missing column %q", required)
		}
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row %d: %w", line, err)
		}
		line++

		field := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		price, err := strconv.ParseFloat(field(headerPrice), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q at row %d: %w", field(headerPrice), line, err)
		}

		rec := Record{
			RepairerType: field(headerRepairer),
			Category:     field(headerCategory),
			GarmentType:  field(headerGarment),
			Service:      field(headerService),
			Description:  field(headerDescription),
			Price:        price,
		}

		if raw := field(headerHours); raw != "" {
			hours, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid estimated hours %q at row %d: %w", raw, line, err)
			}
			rec.EstimatedHours = &hours
		}

		records = append(records, rec)
	}

	return records, nil
}
