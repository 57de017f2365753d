package formatter

import (
	"io"

	"gopkg.in/yaml.v3"
)

type YAMLFormatter struct{}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// yamlReport is the YAML shape of a Report. The parsed Config is left out;
// its rows already carry every value.
type yamlReport struct {
	Path        string   `yaml:"path"`
	Rows        []Row    `yaml:"rows"`
	Diagnostics []string `yaml:"diagnostics,omitempty"`
}

func (f *YAMLFormatter) Format(w io.Writer, report Report) error {
	out := yamlReport{Path: report.Path, Rows: report.Rows}
	for _, d := range report.Result.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, d.String())
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
