package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"argus/internal/argue/ioformat"
	"argus/internal/engine"
	"argus/internal/logging"
)

var (
	watchSystemPath string
	watchObserve    string
	watchKind       string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "re-label a system every time its JSON file changes on disk",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchSystemPath, "system", "", "path to a JSON system description")
	watchCmd.Flags().StringVar(&watchObserve, "observe", "", "comma-separated list of observed literal identifiers")
	watchCmd.Flags().StringVar(&watchKind, "labeler", "", "labeler kind (default engine default)")
	watchCmd.MarkFlagRequired("system")
}

func runWatch(cmd *cobra.Command, args []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(watchSystemPath); err != nil {
		return fmt.Errorf("watch %s: %w", watchSystemPath, err)
	}

	relabel := func() {
		if err := labelOnce(watchSystemPath, watchObserve, watchKind); err != nil {
			logging.Get(logging.CategoryCLI).Warn("relabel after change failed: %v", err)
			fmt.Fprintf(os.Stderr, "relabel failed: %v\n", err)
		}
	}
	relabel()

	var debounce *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(250*time.Millisecond, relabel)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Get(logging.CategoryCLI).Warn("watch error: %v", err)
		}
	}
}

func labelOnce(systemPath, observe, kind string) error {
	f, err := os.Open(systemPath)
	if err != nil {
		return fmt.Errorf("open system file: %w", err)
	}
	defer f.Close()

	sys, err := ioformat.ReadSystem(f)
	if err != nil {
		return fmt.Errorf("read system: %w", err)
	}

	cfg, err := loadEngineConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	e, err := engine.NewEngine(sys, cfg)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	var ids []string
	if observe != "" {
		ids = strings.Split(observe, ",")
	}

	ls, err := e.Update(context.Background(), ids, engine.LabelerKind(kind))
	if err != nil {
		return fmt.Errorf("label: %w", err)
	}

	fmt.Printf("--- relabelled at %s ---\n", time.Now().Format(time.RFC3339))
	for _, topic := range sys.Topics {
		fmt.Printf("%s: %s\n", topic.ID, ls.Literal(topic))
	}
	return nil
}
