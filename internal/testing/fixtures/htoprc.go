// Package fixtures writes htoprc files for tests.
package fixtures

import (
	"os"
	"path/filepath"
	"strings"
)

// Htop3Defaults is the file htop 3.3 writes on first exit with no changes.
const Htop3Defaults = `# Beware! This file is rewritten by htop when settings are changed in the interface.
# The parser is also very primitive, and not human-friendly.
htop_version=3.3.0
config_reader_min_version=3
fields=0 48 17 18 38 39 40 2 46 47 49 1
hide_kernel_threads=1
hide_userland_threads=0
hide_running_in_container=0
shadow_other_users=0
show_thread_names=0
show_program_path=1
highlight_base_name=0
highlight_deleted_exe=1
shadow_distribution_path_prefix=0
highlight_megabytes=1
highlight_threads=1
highlight_changes=0
highlight_changes_delay_secs=5
find_comm_in_cmdline=1
strip_exe_from_cmdline=1
show_merged_command=0
header_margin=1
screen_tabs=1
detailed_cpu_time=0
cpu_count_from_one=0
show_cpu_usage=1
show_cpu_frequency=0
show_cpu_temperature=0
degree_fahrenheit=0
update_process_names=0
account_guest_in_cpu_meter=0
color_scheme=0
enable_mouse=1
delay=15
hide_function_bar=0
header_layout=two_50_50
column_meters_0=AllCPUs Memory Swap
column_meter_modes_0=1 1 1
column_meters_1=Tasks LoadAverage Uptime
column_meter_modes_1=2 2 2
tree_view=0
sort_key=46
tree_sort_key=0
sort_direction=-1
tree_sort_direction=1
tree_view_always_by_pid=0
all_branches_collapsed=0
screen:Main=PID USER PRIORITY NICE M_VIRT M_RESIDENT M_SHARE STATE PERCENT_CPU PERCENT_MEM TIME Command
.sort_key=PERCENT_CPU
.tree_sort_key=PID
.tree_view=0
.tree_view_always_by_pid=0
.sort_direction=-1
.tree_sort_direction=1
.all_branches_collapsed=0
screen:I/O=PID USER IO_PRIORITY IO_RATE IO_READ_RATE IO_WRITE_RATE PERCENT_SWAP_DELAY PERCENT_IO_DELAY Command
.sort_key=IO_RATE
.tree_sort_key=PID
.tree_view=0
.tree_view_always_by_pid=0
.sort_direction=-1
.tree_sort_direction=1
.all_branches_collapsed=0
`

// Htop2Legacy is an htop 2.x file: no version line, no screens, and keys
// later htop releases renamed or dropped.
const Htop2Legacy = `# Beware! This file is rewritten by htop when settings are changed in the interface.
# The parser is also very primitive, and not human-friendly.
fields=0 48 17 18 38 39 40 2 46 47 49 1
sort_key=46
sort_direction=1
hide_threads=0
hide_kernel_threads=1
hide_userland_threads=0
shadow_other_users=0
show_thread_names=0
show_program_path=1
highlight_base_name=0
highlight_megabytes=1
highlight_threads=1
tree_view=0
header_margin=1
detailed_cpu_time=0
cpu_count_from_zero=0
update_process_names=0
account_guest_in_cpu_meter=0
color_scheme=0
delay=15
left_meters=AllCPUs Memory Swap
left_meter_modes=1 1 1
right_meters=Tasks LoadAverage Uptime
right_meter_modes=2 2 2
`

// RCGenerator writes htoprc files under a base directory.
type RCGenerator struct {
	baseDir string
}

// NewRCGenerator creates a generator rooted at baseDir
func NewRCGenerator(baseDir string) *RCGenerator {
	return &RCGenerator{baseDir: baseDir}
}

// WriteRC writes content to name, creating parent directories. It returns
// the full path.
func (g *RCGenerator) WriteRC(name, content string) (string, error) {
	path := filepath.Join(g.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteLines writes lines joined by newlines with a trailing newline.
func (g *RCGenerator) WriteLines(name string, lines ...string) (string, error) {
	return g.WriteRC(name, strings.Join(lines, "\n")+"\n")
}

// GenerateHtop3Defaults writes Htop3Defaults to name.
func (g *RCGenerator) GenerateHtop3Defaults(name string) (string, error) {
	return g.WriteRC(name, Htop3Defaults)
}

// GenerateLegacy writes Htop2Legacy to name.
func (g *RCGenerator) GenerateLegacy(name string) (string, error) {
	return g.WriteRC(name, Htop2Legacy)
}

// GenerateXDGConfig writes content where htop looks for it under an
// XDG_CONFIG_HOME of baseDir/.config.
func (g *RCGenerator) GenerateXDGConfig(content string) (string, error) {
	return g.WriteRC(filepath.Join(".config", "htop", "htoprc"), content)
}

// GetBaseDir returns the base directory for generated files
func (g *RCGenerator) GetBaseDir() string {
	return g.baseDir
}

// CleanupTestData removes all generated files
func (g *RCGenerator) CleanupTestData() error {
	return os.RemoveAll(g.baseDir)
}
