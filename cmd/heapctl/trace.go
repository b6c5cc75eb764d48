package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/heapkit/arena"
	"github.com/joshuapare/heapkit/arena/alloc"
)

// traceOp is one operation from a trace file.
type traceOp struct {
	kind byte // 'a', 'f', or 'r'
	id   int
	size uint32
}

// parseTrace reads a trace: one operation per line, "a <id> <size>" to
// allocate, "f <id>" to free, "r <id> <size>" to reallocate. Blank lines
// and lines starting with # are skipped.
func parseTrace(r io.Reader) ([]traceOp, error) {
	var ops []traceOp
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		var op traceOp
		switch {
		case (fields[0] == "a" || fields[0] == "r") && len(fields) == 3:
			op.kind = fields[0][0]
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad id %q", lineNo, fields[1])
			}
			size, err := strconv.ParseUint(fields[2], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad size %q", lineNo, fields[2])
			}
			op.id, op.size = id, uint32(size)

		case fields[0] == "f" && len(fields) == 2:
			op.kind = 'f'
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad id %q", lineNo, fields[1])
			}
			op.id = id

		default:
			return nil, fmt.Errorf("line %d: unrecognized operation %q", lineNo, line)
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}

// loadTrace parses the trace file at path.
func loadTrace(path string) ([]traceOp, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace: %w", err)
	}
	defer f.Close()
	return parseTrace(f)
}

// runTrace replays ops against a fresh arena and returns the allocator so
// callers can inspect the resulting heap. The caller owns the arena and must
// close it. With checkEach set, the consistency checker runs after every
// operation and the first violation aborts the replay.
func runTrace(ops []traceOp, limit int, checkEach bool) (*alloc.Allocator, error) {
	var opts []arena.Option
	if limit > 0 {
		opts = append(opts, arena.WithLimit(limit))
	}
	a, err := arena.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve arena: %w", err)
	}
	al, err := alloc.New(a)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize allocator: %w", err)
	}

	refs := make(map[int]alloc.Ref)
	for i, op := range ops {
		switch op.kind {
		case 'a':
			ref, _, err := al.Alloc(op.size)
			if err != nil {
				a.Close()
				return nil, fmt.Errorf("op %d (a %d %d): %w", i, op.id, op.size, err)
			}
			refs[op.id] = ref
			printVerbose("a %d %d -> 0x%X\n", op.id, op.size, ref)

		case 'f':
			ref, ok := refs[op.id]
			if !ok {
				a.Close()
				return nil, fmt.Errorf("op %d (f %d): id was never allocated", i, op.id)
			}
			if err := al.Free(ref); err != nil {
				a.Close()
				return nil, fmt.Errorf("op %d (f %d): %w", i, op.id, err)
			}
			delete(refs, op.id)
			printVerbose("f %d (0x%X)\n", op.id, ref)

		case 'r':
			ref, ok := refs[op.id]
			if !ok {
				a.Close()
				return nil, fmt.Errorf("op %d (r %d %d): id was never allocated", i, op.id, op.size)
			}
			newRef, _, err := al.Realloc(ref, op.size)
			if err != nil {
				a.Close()
				return nil, fmt.Errorf("op %d (r %d %d): %w", i, op.id, op.size, err)
			}
			if op.size == 0 {
				delete(refs, op.id)
			} else {
				refs[op.id] = newRef
			}
			printVerbose("r %d %d -> 0x%X\n", op.id, op.size, newRef)
		}

		if checkEach {
			if issues := al.CheckHeap(false); len(issues) > 0 {
				a.Close()
				return nil, fmt.Errorf("op %d: heap inconsistent: %s", i, issues[0])
			}
		}
	}
	return al, nil
}
