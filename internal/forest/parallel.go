package forest

import (
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Strategy selects which concurrency design the parallel driver uses
// to fan out and merge top-level work. Both are kept as alternative
// implementations of the same contract — the teacher keeps its
// channel-based and mutex-based quorum-tree searches as twin `-opt`
// modes (optitree/qc_optimal.go's QCOptimalTreeChannel and
// optitree/qc_optimal_lock.go's QCOptimalTreeMutex) for exactly this
// reason: benchmarking two concurrency designs against each other.
type Strategy int

const (
	// StrategyChannel collects each worker's private result slice
	// through a buffered channel and merges single-threaded after
	// every worker has finished — no lock on the hot path.
	StrategyChannel Strategy = iota
	// StrategyMutex streams each worker's results into a shared,
	// mutex-guarded seen-set and sink as soon as they're produced.
	StrategyMutex
)

// Request describes one enumeration request: N nodes, at most M
// leaves, streamed to Sink. Parallel selects the driver; small N
// always runs sequentially regardless of Parallel (see Run).
type Request struct {
	N        int
	M        int
	Sink     Sink
	Parallel bool
	Strategy Strategy
	// AvailableRAMGiB informs the worker-count formula (spec.md
	// §4.5); 0 means "unknown", treated as not exceeding the 64 GiB
	// threshold.
	AvailableRAMGiB uint64
	// Workers overrides the computed worker count when > 0.
	Workers int
}

// Run executes req and returns the number of trees emitted. It never
// runs CheckResources itself — that is the caller's responsibility
// before Run is invoked (spec.md §7's ResourceRefusal happens before
// generation starts, not inside it).
func Run(req Request) int {
	n, m, sink := req.N, req.M, req.Sink
	if n <= 0 {
		return 0
	}
	if !req.Parallel || n < 10 {
		return runSequential(n, m, sink)
	}
	switch req.Strategy {
	case StrategyMutex:
		return runParallelMutex(req)
	default:
		return runParallelChannel(req)
	}
}

func runSequential(n, m int, sink Sink) int {
	var trees []Tree
	if shouldSpecialize(n, m) {
		trees = specialize(n, m)
	} else {
		c := newCache(n, m)
		trees = generate(n, m, c)
	}
	return emit(dedupe(trees), sink)
}

func emit(trees []Tree, sink Sink) int {
	for _, t := range trees {
		sink.Emit(t)
	}
	return len(trees)
}

func dedupe(trees []Tree) []Tree {
	seen := make(map[string]struct{}, len(trees))
	out := make([]Tree, 0, len(trees))
	for _, t := range trees {
		key := t.CanonicalString()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// workerCount implements spec.md §4.5's formula: min(NumCPU(), 32),
// clamped to NumCPU() (no upper cap) when availableRAMGiB exceeds 64.
// An override > 0 is returned as is; a NumCPU() result of 0 or less is
// treated as 4 — ported from optitree/main.go's runtime.NumCPU()
// default-worker-count call.
func workerCount(availableRAMGiB uint64, override int) int {
	if override > 0 {
		return override
	}
	cores := runtime.NumCPU()
	if cores <= 0 {
		cores = 4
	}
	if availableRAMGiB > 64 {
		return cores
	}
	if cores > 32 {
		return 32
	}
	return cores
}

// topLevelPartitions enumerates every partition of n-1 into k parts,
// for k in [1, maxChildren], maxChildren = min(n-1, max(20, 5*m)).
// This cap applies only here — to the parallel driver's top-level
// work split — never to generator.generate's per-subproblem
// recursion. See SPEC_FULL.md §9 / DESIGN.md for the REDESIGN FLAG
// resolution.
func topLevelPartitions(n, m int) [][]int {
	remaining := n - 1
	maxChildren := remaining
	cap5m := 5 * m
	if cap5m < 20 {
		cap5m = 20
	}
	if cap5m < maxChildren {
		maxChildren = cap5m
	}
	var all [][]int
	for k := 1; k <= maxChildren; k++ {
		generatePartitions(remaining, k, func(p []int) bool {
			all = append(all, append([]int(nil), p...))
			return true
		})
	}
	return all
}

// expandPartition builds every candidate root-level tree (size n)
// whose root's children have sizes partition, using c to resolve each
// child subproblem.
func expandPartition(partition []int, m int, c *cache) []Tree {
	childOptions := make([][]Tree, len(partition))
	for i, size := range partition {
		opts := generate(size, m, c)
		if len(opts) == 0 {
			return nil
		}
		childOptions[i] = opts
	}
	return buildCandidates(partition, childOptions, m)
}

// prewarmCache populates c with generate(n', m) for every n' in
// [1, maxN], single-threaded, before it is cloned per worker — ported
// from original_source/tree_generator.cpp's prewarmCache and its
// per-thread threadCaches[t] = cache_ copy.
func prewarmCache(c *cache, maxN, m int) {
	for n := 1; n <= maxN; n++ {
		generate(n, m, c)
	}
}

// batchSizeFor mirrors tree_generator.cpp's
// std::max(size_t(1), allPartitions.size() / (maxThreads * 4)).
func batchSizeFor(total, workers int) int64 {
	if workers < 1 {
		workers = 1
	}
	b := int64(total) / int64(workers*4)
	if b < 1 {
		b = 1
	}
	return b
}

// Worker loop state, expressed as a plain for loop rather than an
// explicit state-machine type (matching the teacher's style of
// writing state machines as loops with early break/continue — see
// optitree/uniquetrees_struct.go's evalUniqueTree2):
//
//	Idle -> FetchingBatch -> ProcessingPartition -> AppendingLocal -> Done

// runParallelChannel fans topLevelPartitions out across workers, each
// pulling batches via an atomic fetch-add, then merges every worker's
// private result slice single-threaded once all have joined — ported
// from optitree/qc_optimal.go's QCOptimalTreeChannel.
func runParallelChannel(req Request) (count int) {
	n, m, sink := req.N, req.M, req.Sink
	partitions := topLevelPartitions(n, m)
	if len(partitions) == 0 {
		return 0
	}
	workers := workerCount(req.AvailableRAMGiB, req.Workers)
	if workers > len(partitions) {
		workers = len(partitions)
	}

	base := newCache(n, m)
	prewarmCache(base, min(n/2, 15), m)

	var index int64
	batch := batchSizeFor(len(partitions), workers)
	total := int64(len(partitions))

	results := make(chan []Tree, workers)
	panics := make(chan any, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer recoverWorker(panics)
			local := base.clone()
			var mine []Tree
			for {
				start := atomic.AddInt64(&index, batch) - batch
				if start >= total {
					break
				}
				end := start + batch
				if end > total {
					end = total
				}
				for idx := start; idx < end; idx++ {
					mine = append(mine, expandPartition(partitions[idx], m, local)...)
				}
			}
			results <- mine
		}()
	}
	go func() {
		wg.Wait()
		close(results)
		close(panics)
	}()

	seen := make(map[string]struct{})
	for trees := range results {
		for _, t := range trees {
			key := t.CanonicalString()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			sink.Emit(t)
			count++
		}
	}
	repanicIfAny(panics)
	return count
}

// recoverWorker converts a panic inside a worker goroutine into a
// fatal zap log line and forwards the panic value to panics, per
// spec.md §7: "allocation failure inside a worker is fatal to the
// process" — vinci cannot repair a worker that failed mid-combination
// without risking a silently incomplete result set, so it surfaces
// the panic on the coordinator goroutine instead of swallowing it.
func recoverWorker(panics chan any) {
	if r := recover(); r != nil {
		Logger.Error("worker panic", zap.Any("panic", r))
		panics <- r
	}
}

// repanicIfAny re-panics on the calling goroutine with the first
// recovered worker panic, if any, once every worker has joined.
func repanicIfAny(panics chan any) {
	for r := range panics {
		panic(r)
	}
}

// runParallelMutex is the same driver as runParallelChannel, but
// merges into a shared seen-set and sink under a mutex as each
// partition is expanded instead of collecting through a channel — ported from
// optitree/qc_optimal_lock.go's QCOptimalTreeMutex. Unlike
// runParallelChannel, Sink.Emit is called from whichever worker
// goroutine holds mu at the time, not from a single coordinator; the
// mutex still serializes every call, so the Sink contract's "at most
// one concurrent Emit" guarantee holds, it's just enforced by the lock
// instead of by a single caller. This strategy exists to benchmark
// lock contention against runParallelChannel's lock-free merge, not to
// simplify Sink's execution context.
func runParallelMutex(req Request) (count int) {
	n, m, sink := req.N, req.M, req.Sink
	partitions := topLevelPartitions(n, m)
	if len(partitions) == 0 {
		return 0
	}
	workers := workerCount(req.AvailableRAMGiB, req.Workers)
	if workers > len(partitions) {
		workers = len(partitions)
	}

	base := newCache(n, m)
	prewarmCache(base, min(n/2, 15), m)

	var index int64
	batch := batchSizeFor(len(partitions), workers)
	total := int64(len(partitions))

	var mu sync.Mutex
	seen := make(map[string]struct{})
	panics := make(chan any, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer recoverWorker(panics)
			local := base.clone()
			for {
				start := atomic.AddInt64(&index, batch) - batch
				if start >= total {
					break
				}
				end := start + batch
				if end > total {
					end = total
				}
				for idx := start; idx < end; idx++ {
					trees := expandPartition(partitions[idx], m, local)
					if len(trees) == 0 {
						continue
					}
					mu.Lock()
					for _, t := range trees {
						key := t.CanonicalString()
						if _, ok := seen[key]; ok {
							continue
						}
						seen[key] = struct{}{}
						sink.Emit(t)
						count++
					}
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	close(panics)
	repanicIfAny(panics)
	return count
}
