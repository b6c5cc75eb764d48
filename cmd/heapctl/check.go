package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkLimit int

func init() {
	cmd := newCheckCmd()
	cmd.Flags().IntVar(&checkLimit, "limit", 0, "Arena size cap in bytes (0 = platform default)")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <trace>",
		Short: "Replay a trace and verify heap consistency",
		Long: `The check command replays a trace file and runs the consistency
checker over the final heap: sentinel integrity, block alignment, and
matching boundary tags. With --verbose every block is printed as the
checker walks the heap.

Example:
  heapctl check workload.rep
  heapctl check workload.rep -v`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

func runCheck(args []string) error {
	printVerbose("Loading trace: %s\n", args[0])
	ops, err := loadTrace(args[0])
	if err != nil {
		return err
	}

	al, err := runTrace(ops, checkLimit, false)
	if err != nil {
		return err
	}
	defer al.Arena().Close()

	issues := al.CheckHeap(verbose)
	if len(issues) == 0 {
		printInfo("Heap is consistent after %d operations (%d bytes)\n",
			len(ops), al.HeapBytes())
		return nil
	}

	for _, issue := range issues {
		printInfo("  %s\n", issue)
	}
	return fmt.Errorf("%d consistency violation(s)", len(issues))
}
