package commands

import (
	"github.com/penwyp/go-htoprc/internal/config"
	"github.com/penwyp/go-htoprc/internal/presentation/formatter"
	"github.com/penwyp/go-htoprc/internal/util"
	"github.com/spf13/cobra"
)

func newParseCmd(root *rootOptions) *cobra.Command {
	var (
		outputFormat string
		changedOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Show the settings in an htoprc",
		Long: `Parse an htoprc and print every setting with its default.

Options equal to the default can be hidden with --changed. Lines that could not be
applied are reported as warnings and otherwise ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") {
				outputFormat = root.prefs.Output.Format
			}
			if err := config.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}

			path, err := resolvePath(args)
			if err != nil {
				return err
			}
			result, err := loadSource(cmd, path)
			if err != nil {
				return err
			}
			logDiagnostics(path, result.Diagnostics)

			out := cmd.OutOrStdout()
			f, err := formatter.New(outputFormat, isStdout(out) && util.IsTerminal())
			if err != nil {
				return err
			}
			return f.Format(out, formatter.NewReport(path, result, changedOnly))
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", config.OutputTable,
		"Output format (table, json, csv, yaml)")
	cmd.Flags().BoolVar(&changedOnly, "changed", false,
		"Hide options that equal htop's default")
	return cmd
}
