package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var statsLimit int

func init() {
	cmd := newStatsCmd()
	cmd.Flags().IntVar(&statsLimit, "limit", 0, "Arena size cap in bytes (0 = platform default)")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <trace>",
		Short: "Replay a trace and show allocator statistics",
		Long: `The stats command replays a trace file and prints the allocator's
internal counters: operation counts, growth, splitting, coalescing, and
byte totals.

Example:
  heapctl stats workload.rep
  heapctl stats workload.rep --limit 1048576`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

func runStats(args []string) error {
	printVerbose("Loading trace: %s\n", args[0])
	ops, err := loadTrace(args[0])
	if err != nil {
		return err
	}

	al, err := runTrace(ops, statsLimit, false)
	if err != nil {
		return err
	}
	defer al.Arena().Close()

	p := message.NewPrinter(language.English)
	s := al.Stats()

	printInfo("\nAllocator Statistics: %s\n\n", args[0])

	printInfo("Operations:\n")
	printInfo("  Alloc calls: %s (%s fast path, %s grew the arena)\n",
		p.Sprintf("%d", s.AllocCalls),
		p.Sprintf("%d", s.AllocFastPath),
		p.Sprintf("%d", s.AllocSlowPath))
	printInfo("  Free calls: %s\n", p.Sprintf("%d", s.FreeCalls))
	printInfo("  Realloc calls: %s\n\n", p.Sprintf("%d", s.ReallocCalls))

	printInfo("Heap management:\n")
	printInfo("  Growths: %s (%s bytes)\n",
		p.Sprintf("%d", s.GrowCalls), p.Sprintf("%d", s.GrowBytes))
	printInfo("  Splits: %s\n", p.Sprintf("%d", s.SplitCount))
	printInfo("  Coalesces: %s forward, %s backward, %s both\n\n",
		p.Sprintf("%d", s.CoalesceForward),
		p.Sprintf("%d", s.CoalesceBackward),
		p.Sprintf("%d", s.CoalesceBoth))

	printInfo("Bytes:\n")
	printInfo("  Allocated: %s\n", p.Sprintf("%d", s.BytesAllocated))
	printInfo("  Freed: %s\n", p.Sprintf("%d", s.BytesFreed))
	printInfo("  Heap size: %s\n", p.Sprintf("%d", al.HeapBytes()))
	printInfo("  Free now: %s\n", p.Sprintf("%d", al.FreeBytes()))
	printInfo("  Utilization: %.1f%%\n", al.Utilization()*100)
	return nil
}
