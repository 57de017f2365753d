// Package htoprc reads and writes htop's htoprc configuration format.
//
// An htoprc file is a list of key=value lines:
//
//	htop_version=3.3.0
//	fields=0 48 17 18 38 39 40 2 46 47 49 1
//	color_scheme=6
//	column_meters_0=AllCPUs Memory Swap
//	column_meter_modes_0=1 1 1
//	screen:Main=PID USER PERCENT_CPU Command
//	.sort_key=PERCENT_CPU
//	.sort_direction=-1
//
// Parse turns text into a Config, starting from DefaultConfig and
// overwriting whatever the text sets. Keys the package does not model are
// kept verbatim in Config.UnknownOptions so a read-modify-write cycle never
// drops settings written by a newer htop. Parse never fails: bad values keep
// their default and are reported as Diagnostics.
//
// Serialize writes a Config back out in a fixed order. With OnlyNonDefaults
// it omits every native field equal to its default.
//
// All functions are pure and safe for concurrent use.
package htoprc
