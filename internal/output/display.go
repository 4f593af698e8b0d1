package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// Field is one labelled value in text output.
type Field struct {
	Label string
	Value string
}

// DisplayJSON writes data as indented JSON.
func DisplayJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

// DisplayFields writes one "Label: value" line per field with the values
// aligned. Fields with an empty value are skipped.
func DisplayFields(w io.Writer, fields []Field) error {
	width := 0
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		if n := runewidth.StringWidth(f.Label); n > width {
			width = n
		}
	}

	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s%s\n", f.Label, runewidth.FillRight("", width-runewidth.StringWidth(f.Label)), f.Value); err != nil {
			return err
		}
	}

	return nil
}
