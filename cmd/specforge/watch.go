package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/specforge/specforge/pkg/logger"
	"github.com/specforge/specforge/pkg/presenter"
)

// WatchConfig holds configuration for the watch command
type WatchConfig struct {
	Output       string
	Format       string
	DebounceTime int
	ShowDiff     bool
}

// NewWatchConfig creates a new WatchConfig with default values
func NewWatchConfig() *WatchConfig {
	return &WatchConfig{
		Format:       "markdown",
		DebounceTime: 500,
	}
}

// Validate validates the WatchConfig and returns an error if invalid
func (c *WatchConfig) Validate() error {
	if c.Output == "" {
		return errors.New("watch requires an output file (-o)")
	}
	if c.DebounceTime < 0 {
		return errors.Errorf("debounce time cannot be negative: %d", c.DebounceTime)
	}
	switch c.Format {
	case "markdown", "wiki":
		return nil
	}
	return errors.Errorf("invalid format %q, must be markdown or wiki", c.Format)
}

var watchCmd = &cobra.Command{
	Use:   "watch <answers.yaml>",
	Short: "Re-render the document whenever the answers file changes",
	Long: `Watch monitors the answers file and re-renders the document on every
change, with debouncing. With --show-diff each re-render prints a
unified diff against the previous output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config := getWatchConfigFromFlags(cmd)
		if err := config.Validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			cancel()
		}()

		return runWatch(ctx, cmd, args[0], config)
	},
}

func runWatch(ctx context.Context, cmd *cobra.Command, answersPath string, config *WatchConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()

	// Watch the directory: editors typically replace the file on save,
	// which drops a watch placed on the file itself.
	dir := filepath.Dir(answersPath)
	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "failed to watch directory %q", dir)
	}

	target := filepath.Clean(answersPath)
	renderConfig := &RenderConfig{Output: config.Output, Format: config.Format}

	previous := renderOnce(cmd, answersPath, renderConfig, "")
	presenter.Info("Watching " + answersPath + " (Ctrl-C to stop)")

	debounce := time.Duration(config.DebounceTime) * time.Millisecond
	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			presenter.Info("Stopped watching")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.G(ctx).WithField("event", event.Op.String()).Debug("Answers file changed")
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerCh = timer.C
			} else {
				timer.Reset(debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			diffBase := ""
			if config.ShowDiff {
				diffBase = previous
			}
			previous = renderOnce(cmd, answersPath, renderConfig, diffBase)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.G(ctx).WithError(err).Warn("File watcher error")
		}
	}
}

// renderOnce renders the document and writes it to the configured output.
// Render failures are reported but do not stop the watch loop. Returns the
// rendered output, or the empty string on failure.
func renderOnce(cmd *cobra.Command, answersPath string, config *RenderConfig, diffBase string) string {
	output, stats, err := runRender(cmd, answersPath, config)
	if err != nil {
		presenter.Error(err, "render failed")
		return ""
	}

	if err := os.WriteFile(config.Output, []byte(output), 0o644); err != nil {
		presenter.Error(err, "failed to write output")
		return ""
	}

	presenter.Success("Rendered " + config.Output)
	presenter.Stats(stats)

	if diffBase != "" && diffBase != output {
		presenter.Separator()
		presenter.Info(udiff.Unified("previous", "current", diffBase, output))
	}

	return output
}

func getWatchConfigFromFlags(cmd *cobra.Command) *WatchConfig {
	config := NewWatchConfig()
	config.Output, _ = cmd.Flags().GetString("output")
	config.Format, _ = cmd.Flags().GetString("format")
	config.DebounceTime, _ = cmd.Flags().GetInt("debounce")
	config.ShowDiff, _ = cmd.Flags().GetBool("show-diff")
	return config
}

func init() {
	watchCmd.Flags().StringP("output", "o", "", "Output file to re-render on change")
	watchCmd.Flags().String("format", "markdown", "Output format (markdown or wiki)")
	watchCmd.Flags().Int("debounce", 500, "Debounce time in milliseconds")
	watchCmd.Flags().Bool("show-diff", false, "Print a unified diff against the previous render")
}
