package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/lootboard/internal/board"
)

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeTable renders rows with the projection's visible columns. Zero
// quantities print as the empty marker.
func writeTable(w io.Writer, columns []board.Column, rows []board.Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	var headers []string
	var fields []string
	for _, c := range columns {
		if c.Field == board.FieldActions {
			continue
		}
		headers = append(headers, strings.ToUpper(c.Header))
		fields = append(fields, c.Field)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, r := range rows {
		cells := make([]string, len(fields))
		for i, field := range fields {
			cells[i] = cell(r, field)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func cell(r board.Row, field string) string {
	v, ok := r.Value(field)
	if !ok {
		return ""
	}
	switch v := v.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case board.Quantity:
		return v.Display()
	default:
		return fmt.Sprint(v)
	}
}
