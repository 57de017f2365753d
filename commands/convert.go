package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-htoprc/htoprc"
	"github.com/penwyp/go-htoprc/internal/data/rcfile"
	"github.com/penwyp/go-htoprc/internal/util"
	"github.com/spf13/cobra"
)

const (
	fromHtoprc = "htoprc"
	fromJSON   = "json"
)

func newConvertCmd(root *rootOptions) *cobra.Command {
	var (
		from   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert between htoprc and JSON",
		Long: `Convert an htoprc into its JSON model, or a JSON model back into an htoprc.

JSON keys that are missing take htop's default. When converting to htoprc the
format options from the preferences file apply.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from = strings.ToLower(strings.TrimSpace(from))

			var text string
			switch from {
			case fromHtoprc:
				path, err := resolvePath(args)
				if err != nil {
					return err
				}
				result, err := loadSource(cmd, path)
				if err != nil {
					return err
				}
				logDiagnostics(path, result.Diagnostics)

				data, err := sonic.ConfigStd.MarshalIndent(result.Config, "", "  ")
				if err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				text = string(data) + "\n"
			case fromJSON:
				if len(args) == 0 {
					return fmt.Errorf("convert --from json needs a file or -")
				}
				data, err := readInput(cmd, args[0])
				if err != nil {
					return err
				}
				var cfg htoprc.Config
				if err := sonic.Unmarshal(data, &cfg); err != nil {
					return fmt.Errorf("decode json: %w", err)
				}
				text = htoprc.Serialize(cfg, root.prefs.Format.SerializeOptions())
				if text != "" {
					text += "\n"
				}
			default:
				return fmt.Errorf("unsupported source format %q (want %s or %s)", from, fromHtoprc, fromJSON)
			}

			if output == "" {
				_, err := io.WriteString(cmd.OutOrStdout(), text)
				return err
			}
			target, err := util.ExpandPath(output)
			if err != nil {
				return err
			}
			util.LogInfof("Writing converted %s to %s", from, target)
			return rcfile.WriteText(target, text)
		},
	}

	cmd.Flags().StringVar(&from, "from", fromHtoprc, "Source format (htoprc, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of standard output")
	return cmd
}

// readInput reads a whole file, or standard input for "-".
func readInput(cmd *cobra.Command, arg string) ([]byte, error) {
	if arg == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	path, err := util.ExpandPath(arg)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
