// Package export writes the flat schedule table in the supported file
// formats. It is shared by the HTTP export endpoint and tripctl.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/tabi-shiori/internal/domain"
)

// Format names an output format.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	YAML Format = "yaml"
)

// ParseFormat returns the Format named by s. The empty string means JSON.
// An unknown name is reported as domain.ErrValidation.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return JSON, nil
	case JSON, CSV, YAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown format %q", domain.ErrValidation, s)
}

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"day_id", "date", "item_id", "start_time", "end_time", "title", "memo",
	"spot_name", "lat", "lng", "place_id", "transport_to_next",
}

// Write encodes rows to w in format f.
func Write(w io.Writer, f Format, rows []domain.ExportRow) error {
	if rows == nil {
		rows = []domain.ExportRow{}
	}
	switch f {
	case CSV:
		return writeCSV(w, rows)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("export.Write: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("export.Write: %w", err)
		}
		return nil
	}
}

// writeCSV writes a header line and one record per row. Missing coordinates
// are written as empty cells.
func writeCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("export.writeCSV: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return fmt.Errorf("export.writeCSV: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func record(r domain.ExportRow) []string {
	return []string{
		r.DayID,
		r.Date,
		r.ItemID,
		r.StartTime,
		r.EndTime,
		r.Title,
		r.Memo,
		r.SpotName,
		optionalFloat(r.Lat),
		optionalFloat(r.Lng),
		r.PlaceID,
		string(r.TransportToNext),
	}
}

func optionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
