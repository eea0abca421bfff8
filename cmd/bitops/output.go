package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/encoding/json"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var (
	errInvalidFormat = errors.New("invalid output format")
	errInvalidWidth  = errors.New("invalid width")
	errInvalidValue  = errors.New("invalid value")
)

// record is implemented by the rows printed by the commands.
type record interface {
	row() []string
}

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be %q or %q)", errInvalidFormat, format, formatTable, formatJSON)
	}
}

func writeRecords[R record](w io.Writer, format string, header []string, records []R) error {
	switch format {
	case formatJSON:
		return writeJSON(w, records)
	case formatTable:
		return writeTable(w, header, records)
	default:
		return checkFormat(format)
	}
}

// writeJSON writes one JSON document per line.
func writeJSON[R record](w io.Writer, records []R) error {
	for _, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

func writeTable[R record](w io.Writer, header []string, records []R) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range records {
		table.Append(r.row())
	}
	table.Render()
	return nil
}

func hex(v uint64, width int) string {
	return fmt.Sprintf("0x%0*x", width/4, v)
}
