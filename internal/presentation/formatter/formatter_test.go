package formatter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-htoprc/htoprc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testRC = "htop_version=3.3.0\ncolor_scheme=6\ndelay=oops\nscreen:Main=PID USER\n.sort_key=PID\nfuture_option=1"

func testReport(onlyChanged bool) Report {
	return NewReport("/home/u/.config/htop/htoprc", htoprc.Parse(testRC), onlyChanged)
}

func findRow(rows []Row, key string) (Row, bool) {
	for _, row := range rows {
		if row.Key == key {
			return row, true
		}
	}
	return Row{}, false
}

func TestNewReportSections(t *testing.T) {
	report := testReport(false)

	row, ok := findRow(report.Rows, "color_scheme")
	require.True(t, ok)
	assert.Equal(t, Row{Section: SectionOption, Key: "color_scheme", Value: "6", Default: "0", Changed: true}, row)

	row, ok = findRow(report.Rows, "delay")
	require.True(t, ok)
	assert.False(t, row.Changed)
	assert.Equal(t, "15", row.Default)

	row, ok = findRow(report.Rows, "screen:Main")
	require.True(t, ok)
	assert.Equal(t, SectionScreen, row.Section)

	row, ok = findRow(report.Rows, ".sort_key")
	require.True(t, ok)
	assert.Equal(t, SectionScreen, row.Section)

	row, ok = findRow(report.Rows, "future_option")
	require.True(t, ok)
	assert.Equal(t, SectionUnknown, row.Section)

	row, ok = findRow(report.Rows, "htop_version")
	require.True(t, ok)
	assert.True(t, row.Changed)

	assert.Equal(t, "htop_version", report.Rows[0].Key)
	assert.Equal(t, "future_option", report.Rows[len(report.Rows)-1].Key)
}

func TestNewReportOnlyChanged(t *testing.T) {
	report := testReport(true)

	keys := make([]string, len(report.Rows))
	for i, row := range report.Rows {
		keys[i] = row.Key
	}
	assert.Equal(t, []string{"htop_version", "color_scheme", "screen:Main", ".sort_key", "future_option"}, keys)
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(false)
	f.maxWidth = 80

	require.NoError(t, f.Format(&buf, testReport(true)))

	out := buf.String()
	assert.Contains(t, out, "/home/u/.config/htop/htoprc")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "color_scheme")
	assert.Contains(t, out, "warning: line 3: delay:")
	assert.NotContains(t, out, "\033[")

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.HasPrefix(line, "│") {
			assert.LessOrEqual(t, len([]rune(line)), 80)
		}
	}
}

func TestTableFormatterTruncatesLongValues(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(false)
	f.maxWidth = 60

	long := "screen:Main=" + strings.Repeat("PERCENT_CPU ", 20)
	require.NoError(t, f.Format(&buf, NewReport("", htoprc.Parse(long), true)))

	assert.Contains(t, buf.String(), "…")
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 60)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, testReport(false)))

	var decoded struct {
		Path   string
		Result struct {
			Config      htoprc.Config
			Diagnostics []htoprc.Diagnostic
		}
		Rows []Row
	}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "/home/u/.config/htop/htoprc", decoded.Path)
	assert.Equal(t, 6, decoded.Result.Config.ColorScheme)
	assert.Len(t, decoded.Result.Diagnostics, 1)
	assert.NotEmpty(t, decoded.Rows)
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter().Format(&buf, testReport(true)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, []string{"Section", "Key", "Value", "Default", "Changed"}, records[0])
	assert.Equal(t, []string{"option", "color_scheme", "6", "0", "true"}, records[2])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter().Format(&buf, testReport(true)))

	var decoded struct {
		Path        string   `yaml:"path"`
		Rows        []Row    `yaml:"rows"`
		Diagnostics []string `yaml:"diagnostics"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/home/u/.config/htop/htoprc", decoded.Path)
	assert.Equal(t, testReport(true).Rows, decoded.Rows)
	require.Len(t, decoded.Diagnostics, 1)
	assert.Contains(t, decoded.Diagnostics[0], "delay")
}

func TestNew(t *testing.T) {
	for _, name := range []string{"table", "json", "csv", "yaml"} {
		f, err := New(name, false)
		require.NoError(t, err)
		assert.NotNil(t, f)
	}
	_, err := New("xml", false)
	assert.Error(t, err)
}
