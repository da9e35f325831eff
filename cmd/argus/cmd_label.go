package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"argus/internal/argue/ioformat"
	"argus/internal/engine"
)

var (
	labelSystemPath string
	labelObserve    string
	labelKind       string
)

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "label every topic of a system given a set of observed identifiers",
	RunE:  runLabel,
}

func init() {
	labelCmd.Flags().StringVar(&labelSystemPath, "system", "", "path to a JSON system description")
	labelCmd.Flags().StringVar(&labelObserve, "observe", "", "comma-separated list of observed literal identifiers")
	labelCmd.Flags().StringVar(&labelKind, "labeler", "", "labeler kind: four_bool, justification, fqas, naive (default engine default)")
	labelCmd.MarkFlagRequired("system")
}

func runLabel(cmd *cobra.Command, args []string) error {
	f, err := os.Open(labelSystemPath)
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
	if labelObserve != "" {
		ids = strings.Split(labelObserve, ",")
	}

	ls, err := e.Update(context.Background(), ids, engine.LabelerKind(labelKind))
	if err != nil {
		return fmt.Errorf("label: %w", err)
	}

	for _, topic := range sys.Topics {
		fmt.Printf("%s: %s\n", topic.ID, ls.Literal(topic))
	}
	return nil
}
