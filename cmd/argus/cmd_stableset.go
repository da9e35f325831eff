package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"argus/internal/argue"
	"argus/internal/argue/enumerate"
	"argus/internal/argue/ioformat"
)

var (
	stableSetSystemPath string
	stableSetObserve    string
)

var stableSetCmd = &cobra.Command{
	Use:   "stable-sets",
	Short: "enumerate the smallest stable extensions of a system's knowledge base",
	RunE:  runStableSet,
}

func init() {
	stableSetCmd.Flags().StringVar(&stableSetSystemPath, "system", "", "path to a JSON system description")
	stableSetCmd.Flags().StringVar(&stableSetObserve, "observe", "", "comma-separated list of already-observed literal identifiers")
	stableSetCmd.MarkFlagRequired("system")
}

func runStableSet(cmd *cobra.Command, args []string) error {
	f, err := os.Open(stableSetSystemPath)
	if err != nil {
		return fmt.Errorf("open system file: %w", err)
	}
	defer f.Close()

	sys, err := ioformat.ReadSystem(f)
	if err != nil {
		return fmt.Errorf("read system: %w", err)
	}

	var ids []string
	if stableSetObserve != "" {
		ids = strings.Split(stableSetObserve, ",")
	}
	qs, err := sys.GetQueryables(ids)
	if err != nil {
		return fmt.Errorf("resolve observations: %w", err)
	}

	theory, err := argue.NewTheory(sys, qs)
	if err != nil {
		return fmt.Errorf("build theory: %w", err)
	}

	for i, s := range enumerate.SmallestStableSets(theory) {
		var names []string
		for _, l := range s {
			names = append(names, l.ID)
		}
		fmt.Printf("%d: {%s}\n", i, strings.Join(names, ", "))
	}
	return nil
}
