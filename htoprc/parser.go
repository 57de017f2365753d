package htoprc

import (
	"fmt"
	"strconv"
	"strings"
)

// Diagnostic describes an input line the parser could not apply as written.
// Parsing never fails; each diagnostic marks a spot where a default was kept
// or a line was skipped.
type Diagnostic struct {
	Line   int    `json:"line"`
	Key    string `json:"key,omitempty"`
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason"`
}

func (d Diagnostic) String() string {
	if d.Key == "" {
		return fmt.Sprintf("line %d: %s", d.Line, d.Reason)
	}
	return fmt.Sprintf("line %d: %s: %s", d.Line, d.Key, d.Reason)
}

// ParseResult is the outcome of Parse.
type ParseResult struct {
	Config      Config       `json:"config"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Parse reads htoprc text. Options missing from text keep their default,
// unrecognized top-level keys land in Config.UnknownOptions.
//
// Two inputs do not survive a round trip. A ".key=value" line outside any
// screen block is dropped with a Diagnostic. An empty "fields" or
// "column_meters_N" list parses as empty, but Serialize omits it, so it
// reads back as the default.
func Parse(text string) ParseResult {
	p := newParser()
	for i, raw := range strings.Split(text, "\n") {
		p.line = i + 1
		p.consume(strings.TrimSuffix(raw, "\r"))
	}
	p.finishMeters()
	return ParseResult{Config: p.cfg, Diagnostics: p.diags}
}

// ParseConfig is Parse without diagnostics.
func ParseConfig(text string) Config {
	return Parse(text).Config
}

type meterLines struct {
	names     []string
	modes     []string
	hasNames  bool
	hasModes  bool
	modesLine int
}

type parser struct {
	cfg    Config
	diags  []Diagnostic
	line   int
	screen int // index into cfg.Screens of the open block, -1 at top level
	meters [meterColumns]meterLines
}

func newParser() *parser {
	return &parser{cfg: DefaultConfig(), screen: -1}
}

func (p *parser) warn(key, value, reason string) {
	p.diags = append(p.diags, Diagnostic{Line: p.line, Key: key, Value: value, Reason: reason})
}

func (p *parser) consume(line string) {
	// htop writes a "# Beware!" banner it never reads back.
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
		return
	}

	if strings.HasPrefix(line, ".") {
		if p.screen < 0 {
			p.warn("", line, "screen option outside a screen block")
			return
		}
		p.screenOption(line[1:])
		return
	}
	p.screen = -1

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		p.warn("", line, "missing '='")
		return
	}

	if name, isScreen := strings.CutPrefix(key, screenPrefix); isScreen {
		p.openScreen(name, value)
		return
	}
	p.topLevel(key, value)
}

func (p *parser) openScreen(name, columns string) {
	screen := ScreenDefinition{Name: name, Columns: strings.Fields(columns)}
	if screen.Columns == nil {
		screen.Columns = []string{}
	}

	for _, existing := range p.cfg.Screens {
		if existing.Name == name {
			p.warn(screenPrefix+name, columns, "duplicate screen name")
			break
		}
	}
	p.cfg.Screens = append(p.cfg.Screens, screen)
	p.screen = len(p.cfg.Screens) - 1
}

func (p *parser) screenOption(line string) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		p.warn("", "."+line, "missing '='")
		return
	}

	screen := &p.cfg.Screens[p.screen]
	switch key {
	case screenKeySortKey:
		screen.SortKey = Some(value)
	case screenKeySortDirection:
		dir, err := decodeDirection(value)
		if err != nil {
			p.warn("."+key, value, err.Error())
			return
		}
		screen.SortDirection = Some(dir)
	case screenKeyTreeView:
		v, err := decodeBool(value)
		if err != nil {
			p.warn("."+key, value, err.Error())
			return
		}
		screen.TreeView = Some(v)
	default:
		screen.UnknownOptions.Set(key, value)
	}
}

func (p *parser) topLevel(key, value string) {
	switch key {
	case keyHtopVersion:
		p.cfg.HtopVersion = Some(value)
		return
	case keyConfigReaderMinVersion:
		n, err := decodeInt(value)
		if err != nil {
			p.warn(key, value, err.Error())
			return
		}
		p.cfg.ConfigReaderMinVersion = Some(n)
		return
	case keyFields:
		p.cfg.Columns = p.parseColumns(value)
		return
	}

	if index, modes, ok := meterKey(key); ok {
		m := &p.meters[index]
		if modes {
			m.modes, m.hasModes, m.modesLine = strings.Fields(value), true, p.line
		} else {
			m.names, m.hasNames = strings.Fields(value), true
		}
		return
	}

	if f, ok := scalarIndex[key]; ok {
		if err := f.decode(&p.cfg, value); err != nil {
			p.warn(key, value, err.Error()+", keeping default")
		}
		return
	}

	p.cfg.UnknownOptions.Set(key, value)
}

func (p *parser) parseColumns(value string) []int {
	tokens := strings.Fields(value)
	columns := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		id, err := strconv.Atoi(tok)
		if err != nil {
			p.warn(keyFields, tok, "skipping non-numeric field id")
			continue
		}
		columns = append(columns, id)
	}
	return columns
}

// finishMeters pairs each column_meters_N list with its column_meter_modes_N
// list. Missing or unrecognized modes fall back to bar.
func (p *parser) finishMeters() {
	for index, m := range p.meters {
		if !m.hasNames {
			if m.hasModes {
				p.line = m.modesLine
				p.warn(meterModesKey(index), strings.Join(m.modes, " "), "meter modes without meter names ignored")
			}
			continue
		}

		if m.hasModes && len(m.modes) != len(m.names) {
			p.line = m.modesLine
			p.warn(meterModesKey(index), strings.Join(m.modes, " "),
				fmt.Sprintf("%d modes for %d meters", len(m.modes), len(m.names)))
		}

		meters := make([]MeterSpec, len(m.names))
		for i, name := range m.names {
			mode := ModeBar
			if i < len(m.modes) {
				var known bool
				if mode, known = decodeMeterMode(m.modes[i]); !known {
					p.line = m.modesLine
					p.warn(meterModesKey(index), m.modes[i], "unknown meter mode for "+name+", using bar")
				}
			}
			meters[i] = MeterSpec{Type: name, Mode: mode}
		}
		p.cfg.setMeters(index, meters)
	}
}

func meterKey(key string) (index int, modes bool, ok bool) {
	for i := 0; i < meterColumns; i++ {
		switch key {
		case meterNamesKey(i):
			return i, false, true
		case meterModesKey(i):
			return i, true, true
		}
	}
	return 0, false, false
}
