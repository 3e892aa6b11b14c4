package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/wordseq/internal/cli/config"
	"github.com/spf13/cobra"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch <file...>",
		Short: "Re-check input files whenever they change",
		Long: `Watch checks each file (one input per line) and checks again whenever
an input file or a vocabulary file changes. Vocabulary changes reload the
vocabulary before checking.

Press Ctrl+C to stop.`,
		Example: `  # Re-check names.txt on every save
  wordseq watch names.txt --vocab animals.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, debounce)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", config.DefaultWatchDebounce, "Delay before re-checking after a change (overrides watch_debounce)")
	return cmd
}

func runWatch(cmd *cobra.Command, files []string, debounce time.Duration) error {
	if slices.Contains(files, stdinName) {
		return fmt.Errorf("watch cannot read stdin; pass file paths")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	debounce = watchDebounce(cmd, cmdCtx.Cfg, debounce)

	v, err := cmdCtx.NewValidator()
	if err != nil {
		return err
	}

	vocabFiles := make(map[string]bool)
	for _, group := range [][]string{cmdCtx.Cfg.VocabFiles, cmdCtx.Cfg.WordsFiles, cmdCtx.Cfg.JoinersFiles} {
		for _, f := range group {
			vocabFiles[cleanPath(f)] = true
		}
	}

	var mu sync.Mutex
	check := func() {
		results, err := checkInputs(cmd, v, nil, files, cmdCtx.Cfg.Concurrency)
		if err != nil {
			r.Warning(err.Error())
			return
		}
		_ = renderCheck(r, summarize(results), false)
	}

	check()

	paths := append([]string(nil), files...)
	for f := range vocabFiles {
		paths = append(paths, f)
	}

	r.Println(r.Muted("Watching for changes (Ctrl+C to stop)"))
	return watchFiles(ctx, cmdCtx.Logger, paths, debounce, func(changed []string) {
		mu.Lock()
		defer mu.Unlock()

		reload := slices.ContainsFunc(changed, func(p string) bool { return vocabFiles[p] })
		if reload {
			next, err := cmdCtx.NewValidator()
			if err != nil {
				r.Warning(fmt.Sprintf("vocabulary reload failed: %v", err))
				return
			}
			v = next
		}
		cmdCtx.Logger.Info("change detected", "files", changed, "vocabulary_reloaded", reload)
		check()
	})
}

// watchDebounce prefers an explicit --debounce, then the watch_debounce key.
func watchDebounce(cmd *cobra.Command, cfg *config.Config, flagValue time.Duration) time.Duration {
	if f := cmd.Flags().Lookup("debounce"); f != nil && f.Changed {
		return flagValue
	}
	if cfg.WatchDebounce > 0 {
		return cfg.WatchDebounce
	}
	return config.DefaultWatchDebounce
}

// watchFiles calls onChange with the changed paths after each debounced
// burst of writes to any of paths. It blocks until ctx is cancelled.
//
// Parent directories are watched rather than the files, so files replaced
// by rename (as many editors save) keep being observed.
func watchFiles(ctx context.Context, logger *slog.Logger, paths []string, debounce time.Duration, onChange func(changed []string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		clean := cleanPath(p)
		watched[clean] = true
		dirs[filepath.Dir(clean)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	var (
		mu            sync.Mutex
		pending       = make(map[string]bool)
		debounceTimer *time.Timer
	)
	flush := func() {
		mu.Lock()
		changed := make([]string, 0, len(pending))
		for p := range pending {
			changed = append(changed, p)
		}
		pending = make(map[string]bool)
		mu.Unlock()

		slices.Sort(changed)
		if len(changed) > 0 && ctx.Err() == nil {
			onChange(changed)
		}
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			mu.Unlock()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only handle write/create events for watched files
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name := cleanPath(event.Name)
			if !watched[name] {
				continue
			}

			mu.Lock()
			pending[name] = true
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, flush)
			mu.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

func cleanPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
