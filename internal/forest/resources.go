package forest

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrTooLarge is wrapped by a ResourceRefusal when N exceeds the
// maximum supported size of 30, per spec.md §5.
var ErrTooLarge = errors.New("N exceeds the maximum supported size of 30")

// ErrInsufficientMemory is wrapped by a ResourceRefusal when the
// estimated memory requirement exceeds the available memory.
var ErrInsufficientMemory = errors.New("estimated memory exceeds available memory")

// ResourceRefusal is returned when enumeration must not proceed.
type ResourceRefusal struct {
	N            int
	EstimatedMiB uint64
	AvailableMiB uint64
	err          error
}

func (r *ResourceRefusal) Error() string {
	if errors.Is(r.err, ErrTooLarge) {
		return fmt.Sprintf("refusing N=%d: %v (hint: N<=30)", r.N, r.err)
	}
	return fmt.Sprintf("refusing N=%d: estimated ~%d MiB, available ~%d MiB: %v (hint: try a smaller N)",
		r.N, r.EstimatedMiB, r.AvailableMiB, r.err)
}

// Unwrap exposes the sentinel error (ErrTooLarge or
// ErrInsufficientMemory) for errors.Is/errors.As callers.
func (r *ResourceRefusal) Unwrap() error { return r.err }

// ResourceWarning is advisory: enumeration proceeds, but the caller
// should surface the warning (spec.md §7 "ResourceWarning").
type ResourceWarning struct {
	EstimatedMiB   uint64
	AvailableMiB   uint64
	PartitionBound int64
}

func (w *ResourceWarning) Error() string {
	if w.AvailableMiB == 0 {
		return fmt.Sprintf("top-level partition search space is large (<= %d partitions), this may take a while", w.PartitionBound)
	}
	return fmt.Sprintf("estimated memory (~%d MiB) exceeds half of available memory (~%d MiB); top-level partition search space is <= %d partitions",
		w.EstimatedMiB, w.AvailableMiB, w.PartitionBound)
}

// partitionWarnThreshold gates the "large search space" warning below,
// chosen so it only fires well above the N range exercised by
// CheckResources' existing memory-based tests (N<=20 stays silent).
const partitionWarnThreshold = 10_000_000

// CheckResources validates n against spec.md §5's memory discipline.
// availableMiB of 0 means "unknown" — the memory-comparison warnings
// are skipped in that case, but the hard N>30 refusal and the
// partition-count warning below (which doesn't need an availability
// figure to be useful) still apply.
//
// EstimatePartitionCount sanity-bounds EstimateMemoryMiB's domain: a
// search space this wide is worth flagging on its own, even on a
// machine with memory to spare, since runtime (not just memory) scales
// with the number of top-level partitions generator.generate and
// parallel.topLevelPartitions have to expand.
func CheckResources(n int, availableMiB uint64) (refusal *ResourceRefusal, warning *ResourceWarning) {
	if n > 30 {
		return &ResourceRefusal{N: n, err: ErrTooLarge}, nil
	}

	estimated := EstimateMemoryMiB(n)
	partitions := EstimatePartitionCount(n)

	if availableMiB > 0 {
		if estimated > availableMiB {
			return &ResourceRefusal{N: n, EstimatedMiB: estimated, AvailableMiB: availableMiB, err: ErrInsufficientMemory}, nil
		}
		if estimated*2 > availableMiB {
			return nil, &ResourceWarning{EstimatedMiB: estimated, AvailableMiB: availableMiB, PartitionBound: partitions}
		}
	}
	if partitions > partitionWarnThreshold {
		return nil, &ResourceWarning{EstimatedMiB: estimated, AvailableMiB: availableMiB, PartitionBound: partitions}
	}
	return nil, nil
}

// AvailableMemoryMiB reports the system's available memory in MiB, or
// 0 if it cannot be determined. It is a package-level var so callers
// (and tests) can inject a fake; the default reads /proc/meminfo on
// Linux and falls back to 0 (treated by CheckResources as "unknown,
// skip the comparison") everywhere else.
var AvailableMemoryMiB func() uint64 = detectAvailableMemoryMiB

func detectAvailableMemoryMiB() uint64 {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemAvailable:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		kib, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0
		}
		return kib / 1024
	}
	return 0
}
