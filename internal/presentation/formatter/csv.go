package formatter

import (
	"encoding/csv"
	"io"
	"strconv"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Section", "Key", "Value", "Default", "Changed"}); err != nil {
		return err
	}
	for _, row := range report.Rows {
		record := []string{row.Section, row.Key, row.Value, row.Default, strconv.FormatBool(row.Changed)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
