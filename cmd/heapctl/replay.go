package main

import (
	"github.com/spf13/cobra"
)

var (
	replayLimit int
	replayCheck bool
)

func init() {
	cmd := newReplayCmd()
	cmd.Flags().IntVar(&replayLimit, "limit", 0, "Arena size cap in bytes (0 = platform default)")
	cmd.Flags().
		BoolVar(&replayCheck, "check", false, "Run the consistency checker after every operation")
	rootCmd.AddCommand(cmd)
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <trace>",
		Short: "Replay an allocation trace",
		Long: `The replay command parses a trace file and executes every operation
against a fresh arena, then reports the resulting heap shape.

Example:
  heapctl replay workload.rep
  heapctl replay workload.rep --limit 1048576 --check`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(args)
		},
	}
	return cmd
}

func runReplay(args []string) error {
	printVerbose("Loading trace: %s\n", args[0])
	ops, err := loadTrace(args[0])
	if err != nil {
		return err
	}

	al, err := runTrace(ops, replayLimit, replayCheck)
	if err != nil {
		return err
	}
	defer al.Arena().Close()

	printInfo("Replayed %d operations\n", len(ops))
	printInfo("  Heap size: %d bytes\n", al.HeapBytes())
	printInfo("  Free: %d bytes\n", al.FreeBytes())
	printInfo("  Utilization: %.1f%%\n", al.Utilization()*100)
	return nil
}
