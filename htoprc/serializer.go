package htoprc

import (
	"strconv"
	"strings"
)

// SerializeOptions control which lines Serialize emits.
type SerializeOptions struct {
	// IncludeUnknown writes UnknownOptions after everything else.
	IncludeUnknown bool
	// OnlyNonDefaults drops native fields equal to the built-in default.
	// UnknownOptions and the version lines have no default and are unaffected.
	OnlyNonDefaults bool
	// IncludeVersion writes the htop_version line when one is set.
	IncludeVersion bool
}

// DefaultSerializeOptions writes everything.
func DefaultSerializeOptions() SerializeOptions {
	return SerializeOptions{IncludeUnknown: true, IncludeVersion: true}
}

// Marshal serializes cfg with DefaultSerializeOptions.
func Marshal(cfg Config) string {
	return Serialize(cfg, DefaultSerializeOptions())
}

// Serialize renders cfg as htoprc text. Lines are joined with "\n" and no
// trailing newline is added. Empty Columns and meter lists are not written.
func Serialize(cfg Config, opts SerializeOptions) string {
	w := &lineWriter{}

	if v, ok := cfg.HtopVersion.Get(); ok && opts.IncludeVersion {
		w.put(keyHtopVersion, v)
	}
	if v, ok := cfg.ConfigReaderMinVersion.Get(); ok {
		w.put(keyConfigReaderMinVersion, strconv.Itoa(v))
	}

	if len(cfg.Columns) > 0 && !(opts.OnlyNonDefaults && sliceEqual(cfg.Columns, defaultConfig.Columns)) {
		w.put(keyFields, joinInts(cfg.Columns))
	}

	for _, f := range scalarFields {
		if opts.OnlyNonDefaults && f.equal(&cfg, &defaultConfig) {
			continue
		}
		w.put(f.key, f.encode(&cfg))
	}

	for index := 0; index < meterColumns; index++ {
		meters := cfg.Meters(index)
		if len(meters) == 0 {
			continue
		}
		if opts.OnlyNonDefaults && sliceEqual(meters, defaultConfig.Meters(index)) {
			continue
		}
		names := make([]string, len(meters))
		modes := make([]string, len(meters))
		for i, m := range meters {
			names[i] = m.Type
			modes[i] = encodeMeterMode(m.Mode)
		}
		w.put(meterNamesKey(index), strings.Join(names, " "))
		w.put(meterModesKey(index), strings.Join(modes, " "))
	}

	if !(opts.OnlyNonDefaults && screensEqual(cfg.Screens, defaultConfig.Screens)) {
		for _, s := range cfg.Screens {
			writeScreen(w, s)
		}
	}

	if opts.IncludeUnknown {
		for _, opt := range cfg.UnknownOptions {
			w.put(opt.Key, opt.Value)
		}
	}

	return strings.Join(w.lines, "\n")
}

func writeScreen(w *lineWriter, s ScreenDefinition) {
	w.put(screenPrefix+s.Name, strings.Join(s.Columns, " "))
	if v, ok := s.SortKey.Get(); ok {
		w.put("."+screenKeySortKey, v)
	}
	if v, ok := s.SortDirection.Get(); ok {
		w.put("."+screenKeySortDirection, encodeDirection(v))
	}
	if v, ok := s.TreeView.Get(); ok {
		w.put("."+screenKeyTreeView, encodeBool(v))
	}
	for _, opt := range s.UnknownOptions {
		w.put("."+opt.Key, opt.Value)
	}
}

type lineWriter struct {
	lines []string
}

func (w *lineWriter) put(key, value string) {
	w.lines = append(w.lines, key+"="+value)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
