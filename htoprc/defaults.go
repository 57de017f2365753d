package htoprc

// defaultConfig mirrors the settings htop starts with when no htoprc exists.
// It is never handed out directly; DefaultConfig returns a copy.
var defaultConfig = Config{
	Columns: []int{0, 48, 17, 18, 38, 39, 40, 2, 46, 47, 49, 1},

	HideKernelThreads:            true,
	HideUserlandThreads:          false,
	HideRunningInContainer:       false,
	ShadowOtherUsers:             false,
	ShowThreadNames:              false,
	ShowProgramPath:              true,
	HighlightBaseName:            false,
	HighlightDeletedExe:          true,
	ShadowDistributionPathPrefix: false,
	HighlightMegabytes:           true,
	HighlightThreads:             true,
	HighlightChanges:             false,
	HighlightChangesDelaySecs:    5,
	FindCommInCmdline:            true,
	StripExeFromCmdline:          true,
	ShowMergedCommand:            false,
	HeaderMargin:                 true,
	ScreenTabs:                   true,
	DetailedCPUTime:              false,
	CPUCountFromOne:              false,
	ShowCPUUsage:                 true,
	ShowCPUFrequency:             false,
	ShowCPUTemperature:           false,
	DegreeFahrenheit:             false,
	UpdateProcessNames:           false,
	AccountGuestInCPUMeter:       false,
	ColorScheme:                  0,
	EnableMouse:                  true,
	Delay:                        15,
	HideFunctionBar:              false,

	HeaderLayout: LayoutTwoColumns50x50,
	LeftMeters: []MeterSpec{
		{Type: "AllCPUs", Mode: ModeBar},
		{Type: "Memory", Mode: ModeBar},
		{Type: "Swap", Mode: ModeBar},
	},
	RightMeters: []MeterSpec{
		{Type: "Tasks", Mode: ModeText},
		{Type: "LoadAverage", Mode: ModeText},
		{Type: "Uptime", Mode: ModeText},
	},

	TreeView:             false,
	SortKey:              46,
	TreeSortKey:          0,
	SortDirection:        Descending,
	TreeSortDirection:    Ascending,
	TreeViewAlwaysByPID:  false,
	AllBranchesCollapsed: false,

	Screens:        []ScreenDefinition{},
	UnknownOptions: Options{},
}

// DefaultConfig returns a fresh copy of the built-in defaults. Callers may
// mutate the result freely.
func DefaultConfig() Config {
	return defaultConfig.Clone()
}

// IsDefault reports whether the native field behind key holds its default
// value in c. Unknown keys report false.
func IsDefault(c Config, key string) bool {
	if f, ok := scalarIndex[key]; ok {
		return f.equal(&c, &defaultConfig)
	}
	switch key {
	case keyFields:
		return sliceEqual(c.Columns, defaultConfig.Columns)
	case keyHtopVersion:
		return !c.HtopVersion.IsSet()
	case keyConfigReaderMinVersion:
		return !c.ConfigReaderMinVersion.IsSet()
	}
	for i := 0; i < meterColumns; i++ {
		if key == meterNamesKey(i) || key == meterModesKey(i) {
			return sliceEqual(c.Meters(i), defaultConfig.Meters(i))
		}
	}
	return false
}
