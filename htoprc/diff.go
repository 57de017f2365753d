package htoprc

import "strings"

// Change is a native option whose value differs from the default.
type Change struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Default string `json:"default"`
}

// Diff lists native top-level options in cfg that differ from the defaults,
// in the order Serialize writes them. Screens and unknown options have no
// default and are not reported.
func Diff(cfg Config) []Change {
	var changes []Change

	if !sliceEqual(cfg.Columns, defaultConfig.Columns) {
		changes = append(changes, Change{
			Key:     keyFields,
			Value:   joinInts(cfg.Columns),
			Default: joinInts(defaultConfig.Columns),
		})
	}

	for _, f := range scalarFields {
		if f.equal(&cfg, &defaultConfig) {
			continue
		}
		changes = append(changes, Change{Key: f.key, Value: f.encode(&cfg), Default: f.encode(&defaultConfig)})
	}

	for index := 0; index < meterColumns; index++ {
		got, want := cfg.Meters(index), defaultConfig.Meters(index)
		if sliceEqual(got, want) {
			continue
		}
		changes = append(changes, Change{
			Key:     meterNamesKey(index),
			Value:   describeMeters(got),
			Default: describeMeters(want),
		})
	}

	return changes
}

// describeMeters renders meters as "Type[mode]" tokens.
func describeMeters(meters []MeterSpec) string {
	parts := make([]string, len(meters))
	for i, m := range meters {
		parts[i] = m.Type + "[" + string(m.Mode) + "]"
	}
	return strings.Join(parts, " ")
}
