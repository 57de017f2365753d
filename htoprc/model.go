package htoprc

import (
	"github.com/bytedance/sonic"
)

// SortDirection is the order a process table is sorted in.
type SortDirection string

const (
	Ascending  SortDirection = "ascending"
	Descending SortDirection = "descending"
)

// HeaderLayout names the arrangement of meter columns in the header.
// Values are stored verbatim; the constants list the layouts htop ships with.
type HeaderLayout string

const (
	LayoutOneColumn100      HeaderLayout = "one_100"
	LayoutTwoColumns50x50   HeaderLayout = "two_50_50"
	LayoutTwoColumns33x67   HeaderLayout = "two_33_67"
	LayoutTwoColumns67x33   HeaderLayout = "two_67_33"
	LayoutThreeColumns33    HeaderLayout = "three_33_34_33"
	LayoutThreeColumns25x25 HeaderLayout = "three_25_25_50"
	LayoutThreeColumns25x50 HeaderLayout = "three_25_50_25"
	LayoutThreeColumns50x25 HeaderLayout = "three_50_25_25"
	LayoutThreeColumns40x20 HeaderLayout = "three_40_20_40"
	LayoutFourColumns25     HeaderLayout = "four_25_25_25_25"
)

// MeterMode is how a single meter is drawn.
type MeterMode string

const (
	ModeBar   MeterMode = "bar"
	ModeText  MeterMode = "text"
	ModeGraph MeterMode = "graph"
	ModeLED   MeterMode = "led"
)

// MeterSpec is one meter in a header column.
type MeterSpec struct {
	Type string    `json:"type"`
	Mode MeterMode `json:"mode"`
}

// Option is a raw key/value pair the codec does not model natively.
type Option struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Options is an insertion-ordered list of raw options. A key appears at most
// once; setting an existing key replaces its value in place.
type Options []Option

// Get returns the value stored for key.
func (o Options) Get(key string) (string, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return "", false
}

// Set stores value under key, keeping the position of the first occurrence.
func (o *Options) Set(key, value string) {
	for i := range *o {
		if (*o)[i].Key == key {
			(*o)[i].Value = value
			return
		}
	}
	*o = append(*o, Option{Key: key, Value: value})
}

// Delete removes key if present.
func (o *Options) Delete(key string) {
	for i := range *o {
		if (*o)[i].Key == key {
			*o = append((*o)[:i], (*o)[i+1:]...)
			return
		}
	}
}

// Keys returns the keys in insertion order.
func (o Options) Keys() []string {
	keys := make([]string, len(o))
	for i, opt := range o {
		keys[i] = opt.Key
	}
	return keys
}

func (o Options) clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	copy(out, o)
	return out
}

// ScreenDefinition is a named process-table view declared with a
// "screen:<name>=" line and its following ".key=value" lines.
type ScreenDefinition struct {
	Name          string                  `json:"name"`
	Columns       []string                `json:"columns"`
	SortKey       Optional[string]        `json:"sortKey"`
	SortDirection Optional[SortDirection] `json:"sortDirection"`
	TreeView      Optional[bool]          `json:"treeView"`
	// UnknownOptions holds per-screen keys (without the leading dot) that
	// have no native field.
	UnknownOptions Options `json:"unknownOptions,omitempty"`
}

func (s ScreenDefinition) clone() ScreenDefinition {
	out := s
	out.Columns = cloneSlice(s.Columns)
	out.UnknownOptions = s.UnknownOptions.clone()
	return out
}

// Config is the typed form of one htoprc file.
type Config struct {
	HtopVersion            Optional[string] `json:"htopVersion"`
	ConfigReaderMinVersion Optional[int]    `json:"configReaderMinVersion"`

	// Columns are the process-table field ids from the "fields" key.
	Columns []int `json:"columns"`

	HideKernelThreads            bool `json:"hideKernelThreads"`
	HideUserlandThreads          bool `json:"hideUserlandThreads"`
	HideRunningInContainer       bool `json:"hideRunningInContainer"`
	ShadowOtherUsers             bool `json:"shadowOtherUsers"`
	ShowThreadNames              bool `json:"showThreadNames"`
	ShowProgramPath              bool `json:"showProgramPath"`
	HighlightBaseName            bool `json:"highlightBaseName"`
	HighlightDeletedExe          bool `json:"highlightDeletedExe"`
	ShadowDistributionPathPrefix bool `json:"shadowDistributionPathPrefix"`
	HighlightMegabytes           bool `json:"highlightMegabytes"`
	HighlightThreads             bool `json:"highlightThreads"`
	HighlightChanges             bool `json:"highlightChanges"`
	HighlightChangesDelaySecs    int  `json:"highlightChangesDelaySecs"`
	FindCommInCmdline            bool `json:"findCommInCmdline"`
	StripExeFromCmdline          bool `json:"stripExeFromCmdline"`
	ShowMergedCommand            bool `json:"showMergedCommand"`
	HeaderMargin                 bool `json:"headerMargin"`
	ScreenTabs                   bool `json:"screenTabs"`
	DetailedCPUTime              bool `json:"detailedCpuTime"`
	CPUCountFromOne              bool `json:"cpuCountFromOne"`
	ShowCPUUsage                 bool `json:"showCpuUsage"`
	ShowCPUFrequency             bool `json:"showCpuFrequency"`
	ShowCPUTemperature           bool `json:"showCpuTemperature"`
	DegreeFahrenheit             bool `json:"degreeFahrenheit"`
	UpdateProcessNames           bool `json:"updateProcessNames"`
	AccountGuestInCPUMeter       bool `json:"accountGuestInCpuMeter"`
	ColorScheme                  int  `json:"colorScheme"`
	EnableMouse                  bool `json:"enableMouse"`
	Delay                        int  `json:"delay"`
	HideFunctionBar              bool `json:"hideFunctionBar"`

	HeaderLayout HeaderLayout `json:"headerLayout"`
	LeftMeters   []MeterSpec  `json:"leftMeters"`
	RightMeters  []MeterSpec  `json:"rightMeters"`

	TreeView             bool          `json:"treeView"`
	SortKey              int           `json:"sortKey"`
	TreeSortKey          int           `json:"treeSortKey"`
	SortDirection        SortDirection `json:"sortDirection"`
	TreeSortDirection    SortDirection `json:"treeSortDirection"`
	TreeViewAlwaysByPID  bool          `json:"treeViewAlwaysByPid"`
	AllBranchesCollapsed bool          `json:"allBranchesCollapsed"`

	Screens        []ScreenDefinition `json:"screens"`
	UnknownOptions Options            `json:"unknownOptions"`
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.Columns = cloneSlice(c.Columns)
	out.LeftMeters = cloneSlice(c.LeftMeters)
	out.RightMeters = cloneSlice(c.RightMeters)
	if c.Screens != nil {
		out.Screens = make([]ScreenDefinition, len(c.Screens))
		for i, s := range c.Screens {
			out.Screens[i] = s.clone()
		}
	}
	out.UnknownOptions = c.UnknownOptions.clone()
	return out
}

// Equal reports whether c and other hold the same values. Nil and empty
// sequences compare equal.
func (c Config) Equal(other Config) bool {
	if c.HtopVersion != other.HtopVersion || c.ConfigReaderMinVersion != other.ConfigReaderMinVersion {
		return false
	}
	for _, f := range scalarFields {
		if !f.equal(&c, &other) {
			return false
		}
	}
	if !sliceEqual(c.Columns, other.Columns) ||
		!sliceEqual(c.LeftMeters, other.LeftMeters) ||
		!sliceEqual(c.RightMeters, other.RightMeters) ||
		!sliceEqual(c.UnknownOptions, other.UnknownOptions) {
		return false
	}
	return screensEqual(c.Screens, other.Screens)
}

// SetUnknown stores a raw option. It refuses keys that map to a native field,
// so UnknownOptions never shadows one.
func (c *Config) SetUnknown(key, value string) bool {
	if IsNativeKey(key) {
		return false
	}
	c.UnknownOptions.Set(key, value)
	return true
}

// Meters returns the meter column with the given index (0 left, 1 right).
func (c *Config) Meters(index int) []MeterSpec {
	switch index {
	case 0:
		return c.LeftMeters
	case 1:
		return c.RightMeters
	}
	return nil
}

func (c *Config) setMeters(index int, meters []MeterSpec) {
	switch index {
	case 0:
		c.LeftMeters = meters
	case 1:
		c.RightMeters = meters
	}
}

// MarshalJSON encodes c with camelCase keys.
func (c Config) MarshalJSON() ([]byte, error) {
	type plain Config
	return sonic.Marshal(plain(c))
}

// UnmarshalJSON decodes c. Keys missing from data keep the built-in default.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	decoded := plain(DefaultConfig())
	if err := sonic.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*c = Config(decoded)
	return nil
}

func screensEqual(a, b []ScreenDefinition) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x.Name != y.Name || x.SortKey != y.SortKey || x.SortDirection != y.SortDirection || x.TreeView != y.TreeView {
			return false
		}
		if !sliceEqual(x.Columns, y.Columns) || !sliceEqual(x.UnknownOptions, y.UnknownOptions) {
			return false
		}
	}
	return true
}

func sliceEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
