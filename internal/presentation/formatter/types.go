package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-htoprc/htoprc"
)

// Row sections
const (
	SectionOption  = "option"
	SectionScreen  = "screen"
	SectionUnknown = "unknown"
)

// Row is one htoprc line prepared for display.
type Row struct {
	Section string `json:"section" yaml:"section"`
	Key     string `json:"key" yaml:"key"`
	Value   string `json:"value" yaml:"value"`
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
	Changed bool   `json:"changed" yaml:"changed"`
}

// Report is what the parse command prints.
type Report struct {
	Path   string             `json:"path"`
	Result htoprc.ParseResult `json:"result"`
	Rows   []Row              `json:"rows"`
}

// Formatter renders a Report.
type Formatter interface {
	Format(w io.Writer, report Report) error
}

// New returns the formatter for an output name.
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "table":
		return NewTableFormatter(color), nil
	case "json":
		return NewJSONFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	case "yaml":
		return NewYAMLFormatter(), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// NewReport builds rows for result in serializer order. With onlyChanged,
// options equal to their default are left out; screens and unknown options
// are always listed.
func NewReport(path string, result htoprc.ParseResult, onlyChanged bool) Report {
	defaults := make(map[string]string)
	for _, row := range splitLines(htoprc.Marshal(htoprc.DefaultConfig())) {
		defaults[row[0]] = row[1]
	}

	var rows []Row
	for _, kv := range splitLines(htoprc.Marshal(result.Config)) {
		row := Row{Key: kv[0], Value: kv[1]}
		switch {
		case strings.HasPrefix(kv[0], "screen:") || strings.HasPrefix(kv[0], "."):
			row.Section, row.Changed = SectionScreen, true
		case htoprc.IsNativeKey(kv[0]):
			row.Section = SectionOption
			row.Default = defaults[kv[0]]
			row.Changed = !htoprc.IsDefault(result.Config, kv[0])
		default:
			row.Section, row.Changed = SectionUnknown, true
		}
		if onlyChanged && !row.Changed {
			continue
		}
		rows = append(rows, row)
	}

	return Report{Path: path, Result: result, Rows: rows}
}

func splitLines(text string) [][2]string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	out := make([][2]string, 0, len(lines))
	for _, line := range lines {
		key, value, _ := strings.Cut(line, "=")
		out = append(out, [2]string{key, value})
	}
	return out
}
