package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/penwyp/go-htoprc/internal/util"
	"github.com/penwyp/go-htoprc/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [file]",
		Short: "Report htoprc changes as they happen",
		Long: `Watch an htoprc and print the options that change each time the file is
rewritten, for example when htop saves its settings on exit. Stop with Ctrl+C.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args)
			if err != nil {
				return err
			}
			if path == stdinPath {
				return fmt.Errorf("watch needs a file, not standard input")
			}

			current, err := loadSource(cmd, path)
			if err != nil {
				return err
			}
			logDiagnostics(path, current.Diagnostics)

			fw, err := watch.NewFileWatcher(path)
			if err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
			defer fw.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Watching %s\n", path)
			util.LogInfof("Watching %s", path)

			for {
				select {
				case <-ctx.Done():
					return nil
				case ev, ok := <-fw.Events():
					if !ok {
						return nil
					}
					if ev.Err != nil {
						util.LogWarnf("Reload of %s failed: %v", path, ev.Err)
						continue
					}
					logDiagnostics(path, ev.File.Diagnostics)

					changes := diffConfigs(current.Config, ev.File.Config)
					current = ev.File.ParseResult
					if len(changes) == 0 {
						continue
					}
					fmt.Fprintf(out, "[%s] %d change(s)\n", time.Now().Format("15:04:05"), len(changes))
					if err := printChanges(out, changes); err != nil {
						return err
					}
				}
			}
		},
	}
}
