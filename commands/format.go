package commands

import (
	"errors"

	"github.com/penwyp/go-htoprc/htoprc"
	"github.com/penwyp/go-htoprc/internal/data/rcfile"
	"github.com/penwyp/go-htoprc/internal/util"
	"github.com/spf13/cobra"
)

var errWriteStdin = errors.New("--write needs a file, not standard input")

func newFormatCmd(root *rootOptions) *cobra.Command {
	var (
		onlyNonDefaults bool
		noUnknown       bool
		noVersion       bool
		write           bool
	)

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Rewrite an htoprc in canonical order",
		Long: `Parse an htoprc and serialize it again in htop's canonical order.

Unknown options are kept unless --no-unknown is given. With --only-non-defaults
only settings that differ from htop's defaults are written. --write replaces
the file atomically instead of printing to standard output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := root.prefs.Format.SerializeOptions()
			if cmd.Flags().Changed("only-non-defaults") {
				opts.OnlyNonDefaults = onlyNonDefaults
			}
			if cmd.Flags().Changed("no-unknown") {
				opts.IncludeUnknown = !noUnknown
			}
			if cmd.Flags().Changed("no-version") {
				opts.IncludeVersion = !noVersion
			}

			path, err := resolvePath(args)
			if err != nil {
				return err
			}
			if write && path == stdinPath {
				return errWriteStdin
			}

			result, err := loadSource(cmd, path)
			if err != nil {
				return err
			}
			logDiagnostics(path, result.Diagnostics)

			if write {
				return rcfile.Save(path, result.Config, opts)
			}
			util.LogDebugf("Formatting %s (only non-defaults: %t)", path, opts.OnlyNonDefaults)
			return writeLine(cmd.OutOrStdout(), htoprc.Serialize(result.Config, opts))
		},
	}

	cmd.Flags().BoolVar(&onlyNonDefaults, "only-non-defaults", false,
		"Omit options equal to htop's defaults")
	cmd.Flags().BoolVar(&noUnknown, "no-unknown", false,
		"Drop options this tool does not recognize")
	cmd.Flags().BoolVar(&noVersion, "no-version", false,
		"Omit the htop_version line")
	cmd.Flags().BoolVarP(&write, "write", "w", false,
		"Replace the file instead of printing")
	return cmd
}
