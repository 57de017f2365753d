package htoprc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	keyHtopVersion            = "htop_version"
	keyConfigReaderMinVersion = "config_reader_min_version"
	keyFields                 = "fields"
	keyColumnMetersPrefix     = "column_meters_"
	keyColumnMeterModesPrefix = "column_meter_modes_"
	screenPrefix              = "screen:"

	screenKeySortKey       = "sort_key"
	screenKeySortDirection = "sort_direction"
	screenKeyTreeView      = "tree_view"
)

// meterColumns is the number of header meter columns the codec models.
const meterColumns = 2

var (
	errNotBool      = errors.New("not a boolean")
	errNotInt       = errors.New("not an integer")
	errNotDirection = errors.New("sort direction must be 1 or -1")
)

// scalarField describes one top-level key=value option backed by a native
// Config field. The serializer walks scalarFields in order.
type scalarField struct {
	key    string
	decode func(c *Config, raw string) error
	encode func(c *Config) string
	equal  func(a, b *Config) bool
}

var scalarFields = []scalarField{
	boolField("hide_kernel_threads", func(c *Config) *bool { return &c.HideKernelThreads }),
	boolField("hide_userland_threads", func(c *Config) *bool { return &c.HideUserlandThreads }),
	boolField("hide_running_in_container", func(c *Config) *bool { return &c.HideRunningInContainer }),
	boolField("shadow_other_users", func(c *Config) *bool { return &c.ShadowOtherUsers }),
	boolField("show_thread_names", func(c *Config) *bool { return &c.ShowThreadNames }),
	boolField("show_program_path", func(c *Config) *bool { return &c.ShowProgramPath }),
	boolField("highlight_base_name", func(c *Config) *bool { return &c.HighlightBaseName }),
	boolField("highlight_deleted_exe", func(c *Config) *bool { return &c.HighlightDeletedExe }),
	boolField("shadow_distribution_path_prefix", func(c *Config) *bool { return &c.ShadowDistributionPathPrefix }),
	boolField("highlight_megabytes", func(c *Config) *bool { return &c.HighlightMegabytes }),
	boolField("highlight_threads", func(c *Config) *bool { return &c.HighlightThreads }),
	boolField("highlight_changes", func(c *Config) *bool { return &c.HighlightChanges }),
	intField("highlight_changes_delay_secs", func(c *Config) *int { return &c.HighlightChangesDelaySecs }),
	boolField("find_comm_in_cmdline", func(c *Config) *bool { return &c.FindCommInCmdline }),
	boolField("strip_exe_from_cmdline", func(c *Config) *bool { return &c.StripExeFromCmdline }),
	boolField("show_merged_command", func(c *Config) *bool { return &c.ShowMergedCommand }),
	boolField("header_margin", func(c *Config) *bool { return &c.HeaderMargin }),
	boolField("screen_tabs", func(c *Config) *bool { return &c.ScreenTabs }),
	boolField("detailed_cpu_time", func(c *Config) *bool { return &c.DetailedCPUTime }),
	boolField("cpu_count_from_one", func(c *Config) *bool { return &c.CPUCountFromOne }),
	boolField("show_cpu_usage", func(c *Config) *bool { return &c.ShowCPUUsage }),
	boolField("show_cpu_frequency", func(c *Config) *bool { return &c.ShowCPUFrequency }),
	boolField("show_cpu_temperature", func(c *Config) *bool { return &c.ShowCPUTemperature }),
	boolField("degree_fahrenheit", func(c *Config) *bool { return &c.DegreeFahrenheit }),
	boolField("update_process_names", func(c *Config) *bool { return &c.UpdateProcessNames }),
	boolField("account_guest_in_cpu_meter", func(c *Config) *bool { return &c.AccountGuestInCPUMeter }),
	intField("color_scheme", func(c *Config) *int { return &c.ColorScheme }),
	boolField("enable_mouse", func(c *Config) *bool { return &c.EnableMouse }),
	intField("delay", func(c *Config) *int { return &c.Delay }),
	boolField("hide_function_bar", func(c *Config) *bool { return &c.HideFunctionBar }),
	layoutField("header_layout", func(c *Config) *HeaderLayout { return &c.HeaderLayout }),
	boolField("tree_view", func(c *Config) *bool { return &c.TreeView }),
	intField("sort_key", func(c *Config) *int { return &c.SortKey }),
	intField("tree_sort_key", func(c *Config) *int { return &c.TreeSortKey }),
	directionField("sort_direction", func(c *Config) *SortDirection { return &c.SortDirection }),
	directionField("tree_sort_direction", func(c *Config) *SortDirection { return &c.TreeSortDirection }),
	boolField("tree_view_always_by_pid", func(c *Config) *bool { return &c.TreeViewAlwaysByPID }),
	boolField("all_branches_collapsed", func(c *Config) *bool { return &c.AllBranchesCollapsed }),
}

var (
	scalarIndex = indexScalarFields()
	nativeKeys  = collectNativeKeys()
)

func indexScalarFields() map[string]*scalarField {
	index := make(map[string]*scalarField, len(scalarFields))
	for i := range scalarFields {
		index[scalarFields[i].key] = &scalarFields[i]
	}
	return index
}

func collectNativeKeys() map[string]struct{} {
	keys := map[string]struct{}{
		keyHtopVersion:            {},
		keyConfigReaderMinVersion: {},
		keyFields:                 {},
	}
	for _, f := range scalarFields {
		keys[f.key] = struct{}{}
	}
	for i := 0; i < meterColumns; i++ {
		keys[meterNamesKey(i)] = struct{}{}
		keys[meterModesKey(i)] = struct{}{}
	}
	return keys
}

// IsNativeKey reports whether key maps to a typed Config field.
func IsNativeKey(key string) bool {
	if strings.HasPrefix(key, screenPrefix) {
		return true
	}
	_, ok := nativeKeys[key]
	return ok
}

// Keys returns the top-level scalar option keys in serialization order.
func Keys() []string {
	keys := make([]string, len(scalarFields))
	for i, f := range scalarFields {
		keys[i] = f.key
	}
	return keys
}

func meterNamesKey(index int) string {
	return keyColumnMetersPrefix + strconv.Itoa(index)
}

func meterModesKey(index int) string {
	return keyColumnMeterModesPrefix + strconv.Itoa(index)
}

func boolField(key string, at func(*Config) *bool) scalarField {
	return scalarField{
		key: key,
		decode: func(c *Config, raw string) error {
			v, err := decodeBool(raw)
			if err != nil {
				return err
			}
			*at(c) = v
			return nil
		},
		encode: func(c *Config) string { return encodeBool(*at(c)) },
		equal:  func(a, b *Config) bool { return *at(a) == *at(b) },
	}
}

func intField(key string, at func(*Config) *int) scalarField {
	return scalarField{
		key: key,
		decode: func(c *Config, raw string) error {
			v, err := decodeInt(raw)
			if err != nil {
				return err
			}
			*at(c) = v
			return nil
		},
		encode: func(c *Config) string { return strconv.Itoa(*at(c)) },
		equal:  func(a, b *Config) bool { return *at(a) == *at(b) },
	}
}

func directionField(key string, at func(*Config) *SortDirection) scalarField {
	return scalarField{
		key: key,
		decode: func(c *Config, raw string) error {
			v, err := decodeDirection(raw)
			if err != nil {
				return err
			}
			*at(c) = v
			return nil
		},
		encode: func(c *Config) string { return encodeDirection(*at(c)) },
		equal:  func(a, b *Config) bool { return *at(a) == *at(b) },
	}
}

func layoutField(key string, at func(*Config) *HeaderLayout) scalarField {
	return scalarField{
		key: key,
		decode: func(c *Config, raw string) error {
			*at(c) = HeaderLayout(raw)
			return nil
		},
		encode: func(c *Config) string { return string(*at(c)) },
		equal:  func(a, b *Config) bool { return *at(a) == *at(b) },
	}
}

func decodeBool(raw string) (bool, error) {
	s := strings.TrimSpace(raw)
	if v, err := strconv.ParseBool(s); err == nil {
		return v, nil
	}
	// htop itself treats any non-zero integer as true.
	if n, err := strconv.Atoi(s); err == nil {
		return n != 0, nil
	}
	return false, fmt.Errorf("%w: %q", errNotBool, raw)
}

func encodeBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func decodeInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotInt, raw)
	}
	return n, nil
}

func decodeDirection(raw string) (SortDirection, error) {
	switch strings.TrimSpace(raw) {
	case "1":
		return Ascending, nil
	case "-1":
		return Descending, nil
	}
	return "", fmt.Errorf("%w: %q", errNotDirection, raw)
}

// encodeDirection writes anything other than Descending as ascending.
func encodeDirection(d SortDirection) string {
	if d == Descending {
		return "-1"
	}
	return "1"
}

var meterModeCodes = map[MeterMode]int{
	ModeBar:   1,
	ModeText:  2,
	ModeGraph: 3,
	ModeLED:   4,
}

func decodeMeterMode(code string) (MeterMode, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err == nil {
		for mode, c := range meterModeCodes {
			if c == n {
				return mode, true
			}
		}
	}
	return ModeBar, false
}

func encodeMeterMode(mode MeterMode) string {
	if c, ok := meterModeCodes[mode]; ok {
		return strconv.Itoa(c)
	}
	return strconv.Itoa(meterModeCodes[ModeBar])
}
