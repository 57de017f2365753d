package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-htoprc/htoprc"
	"github.com/spf13/cobra"
)

// change is one line that differs between two configurations. A side whose
// Set flag is false has no such line at all.
type change struct {
	Key       string
	Before    string
	After     string
	BeforeSet bool
	AfterSet  bool
}

func newDiffCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diff [file] [other]",
		Short: "Compare an htoprc with htop's defaults or another htoprc",
		Long: `With one file, list the options that differ from htop's defaults.
With two files, list every line that differs between them, including screens
and unknown options. Output is one "key: before -> after" line per change.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args)
			if err != nil {
				return err
			}
			result, err := loadSource(cmd, path)
			if err != nil {
				return err
			}
			logDiagnostics(path, result.Diagnostics)

			var changes []change
			if len(args) < 2 {
				for _, c := range htoprc.Diff(result.Config) {
					changes = append(changes, change{
						Key: c.Key, Before: c.Default, After: c.Value, BeforeSet: true, AfterSet: true,
					})
				}
			} else {
				otherPath, err := resolvePath(args[1:])
				if err != nil {
					return err
				}
				other, err := loadSource(cmd, otherPath)
				if err != nil {
					return err
				}
				logDiagnostics(otherPath, other.Diagnostics)
				changes = diffConfigs(result.Config, other.Config)
			}

			return printChanges(cmd.OutOrStdout(), changes)
		},
	}
}

// diffConfigs compares the serialized lines of two configurations. Keys are
// reported in the order they first appear in before, then after.
func diffConfigs(before, after htoprc.Config) []change {
	left := keyedLines(htoprc.Marshal(before))
	right := keyedLines(htoprc.Marshal(after))

	var keys []string
	seen := make(map[string]bool)
	for _, kv := range append(left.order, right.order...) {
		if !seen[kv] {
			seen[kv] = true
			keys = append(keys, kv)
		}
	}

	var changes []change
	for _, key := range keys {
		l, lok := left.values[key]
		r, rok := right.values[key]
		if l != r || lok != rok {
			changes = append(changes, change{Key: key, Before: l, After: r, BeforeSet: lok, AfterSet: rok})
		}
	}
	return changes
}

type lines struct {
	order  []string
	values map[string]string
}

// keyedLines indexes serialized lines. Screen sub-options are qualified with
// their screen name so ".sort_key" of two screens stay apart. A repeated
// screen name gets a "#N" suffix from its second occurrence on.
func keyedLines(text string) lines {
	out := lines{values: make(map[string]string)}
	screens := make(map[string]int)
	screen := ""
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		key, value, _ := strings.Cut(line, "=")
		switch {
		case strings.HasPrefix(key, "screen:"):
			screens[key]++
			if n := screens[key]; n > 1 {
				key = fmt.Sprintf("%s#%d", key, n)
			}
			screen = key
		case strings.HasPrefix(key, "."):
			key = screen + key
		default:
			screen = ""
		}
		out.order = append(out.order, key)
		out.values[key] = value
	}
	return out
}

func printChanges(w io.Writer, changes []change) error {
	if len(changes) == 0 {
		_, err := fmt.Fprintln(w, "no differences")
		return err
	}
	for _, c := range changes {
		if _, err := fmt.Fprintf(w, "%s: %s -> %s\n", c.Key, display(c.Before, c.BeforeSet), display(c.After, c.AfterSet)); err != nil {
			return err
		}
	}
	return nil
}

func display(value string, set bool) string {
	switch {
	case !set:
		return "(unset)"
	case value == "":
		return `""`
	}
	return value
}
