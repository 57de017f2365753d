package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/penwyp/go-htoprc/htoprc"
	"github.com/penwyp/go-htoprc/internal/config"
	"github.com/penwyp/go-htoprc/internal/data/rcfile"
	"github.com/penwyp/go-htoprc/internal/util"
	"github.com/spf13/cobra"
)

const (
	defaultLogFile = "~/.go-htoprc/logs/app.log"
	stdinPath      = "-"
)

// rootOptions are the persistent flags plus the preferences they resolve to.
type rootOptions struct {
	debug     bool
	logFile   string
	logFormat string
	prefsPath string

	prefs config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "go-htoprc",
		Short: "Inspect and rewrite htop configuration files",
		Long: `go-htoprc reads htop's htoprc file into a typed configuration and writes it back,
keeping every option it does not understand.

When no file is given, $XDG_CONFIG_HOME/htop/htoprc (or ~/.config/htop/htoprc) is used.
A file argument of "-" reads standard input.

Examples:
  go-htoprc parse                              # Show the current htoprc as a table
  go-htoprc parse --changed -o json            # Only options that differ from defaults, as JSON
  go-htoprc format --only-non-defaults         # Print a minimal htoprc
  go-htoprc format --write                     # Normalize the htoprc in place
  go-htoprc diff ~/htoprc.old ~/.config/htop/htoprc
  go-htoprc convert --from htoprc > htoprc.json
  go-htoprc watch                              # Report changes as htop rewrites the file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			util.CloseLogger()
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false,
		"Enable debug mode (debug logs mirrored to stderr)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", defaultLogFile,
		"Log file path (empty disables file logging)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "",
		"Log line format: text or json (default from preferences)")
	cmd.PersistentFlags().StringVar(&opts.prefsPath, "prefs", config.DefaultPath,
		"Preferences file path")

	cmd.AddCommand(
		newParseCmd(opts),
		newFormatCmd(opts),
		newDiffCmd(opts),
		newConvertCmd(opts),
		newWatchCmd(opts),
	)
	return cmd
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) setup() error {
	prefs, err := config.Load(o.prefsPath)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	o.prefs = prefs

	logLevel := prefs.LogLevel
	if o.debug {
		logLevel = "debug"
	}

	logFormat := prefs.LogFormat
	if strings.TrimSpace(o.logFormat) != "" {
		logFormat = strings.ToLower(strings.TrimSpace(o.logFormat))
		if logFormat != config.LogFormatText && logFormat != config.LogFormatJSON {
			return fmt.Errorf("invalid log format %q: must be text or json", o.logFormat)
		}
	}

	logFile := ""
	if strings.TrimSpace(o.logFile) != "" {
		if logFile, err = util.ExpandPath(o.logFile); err != nil {
			return err
		}
	}
	if err := util.InitLogger(logLevel, logFile, util.ParseLogFormat(logFormat), o.debug); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

// resolvePath picks the htoprc named by args, or htop's default location.
func resolvePath(args []string) (string, error) {
	if len(args) > 0 {
		if args[0] == stdinPath {
			return stdinPath, nil
		}
		return util.ExpandPath(args[0])
	}
	return util.DefaultHtoprcPath()
}

// loadSource parses the htoprc at path, or standard input for "-".
func loadSource(cmd *cobra.Command, path string) (htoprc.ParseResult, error) {
	if path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return htoprc.ParseResult{}, fmt.Errorf("read stdin: %w", err)
		}
		return htoprc.Parse(string(data)), nil
	}

	file, err := rcfile.Load(path)
	if err != nil {
		return htoprc.ParseResult{}, err
	}
	return file.ParseResult, nil
}

// logDiagnostics reports parse warnings through the logger.
func logDiagnostics(path string, diags []htoprc.Diagnostic) {
	for _, d := range diags {
		util.LogWarn("Ignored htoprc line", util.Field{Key: "path", Value: path}, util.Field{Key: "detail", Value: d.String()})
	}
}

func writeLine(w io.Writer, text string) error {
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func isStdout(w io.Writer) bool {
	return w == os.Stdout
}
