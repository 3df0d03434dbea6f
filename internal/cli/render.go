package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/time/rate"

	"github.com/JanFalkin/vinci/internal/forest"
)

const ruleWidth = 60

// renderer implements spec.md §6's output grammar: a verbose per-tree
// block, or a quiet progress line overwritten in place, followed by a
// summary block — ported line-for-line from
// original_source/src/main.cpp's callback and tree.print.
type renderer struct {
	w       io.Writer
	quiet   bool
	isTTY   bool
	limiter *rate.Limiter
	count   int64
}

func newRenderer(w io.Writer, quiet bool) *renderer {
	isTTY := false
	if f, ok := w.(*os.File); ok {
		isTTY = isatty.IsTerminal(f.Fd())
	}
	return &renderer{
		w:     w,
		quiet: quiet,
		isTTY: isTTY,
		// Ten progress updates per second caps the \r-overwrite rate
		// regardless of how fast trees are generated, replacing
		// original_source's "every 1000 trees" count-based throttle
		// with a time-based one.
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
	}
}

func (r *renderer) printHeader(n, m int) {
	fmt.Fprintf(r.w, "Generating all trees with N=%d nodes and M<=%d leaves\n", n, m)
	fmt.Fprintln(r.w, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(r.w)
}

func (r *renderer) emit(t forest.Tree) {
	r.count++
	if !r.quiet {
		fmt.Fprintf(r.w, "Tree #%d:\n", r.count)
		fmt.Fprintf(r.w, "  Representation: %s\n", t.CanonicalString())
		fmt.Fprintf(r.w, "  Nodes: %d, Leaves: %d\n", t.NodeCount(), t.LeafCount())
		printTree(r.w, t, "  ", true)
		fmt.Fprintln(r.w)
		return
	}
	if r.isTTY && r.limiter.Allow() {
		fmt.Fprintf(r.w, "\rGenerated %d trees so far...", r.count)
	}
}

func (r *renderer) printSummary(total int, elapsed time.Duration) {
	if r.quiet && r.isTTY {
		fmt.Fprint(r.w, "\r"+strings.Repeat(" ", ruleWidth)+"\r")
	}
	fmt.Fprintln(r.w, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(r.w, "Total trees generated: %d\n", total)

	ms := elapsed.Milliseconds()
	if ms >= 1000 {
		fmt.Fprintf(r.w, "Time taken: %d ms (%.2f seconds)\n", ms, elapsed.Seconds())
	} else {
		fmt.Fprintf(r.w, "Time taken: %d ms\n", ms)
	}
	if total > 0 {
		fmt.Fprintf(r.w, "Average time per tree: %.6f ms\n", float64(ms)/float64(total))
	}
}

// printTree renders t as a box-drawing tree, the Go rendition of
// original_source/src/tree.cpp's Tree::print.
func printTree(w io.Writer, t forest.Tree, prefix string, isLast bool) {
	branch := "├── "
	if isLast {
		branch = "└── "
	}
	label := "Node"
	if t.IsLeaf() {
		label = "Leaf"
	}
	fmt.Fprintf(w, "%s%s%s\n", prefix, branch, label)

	children := t.Children()
	for i, c := range children {
		last := i == len(children)-1
		childPrefix := prefix + "│   "
		if isLast {
			childPrefix = prefix + "    "
		}
		printTree(w, c, childPrefix, last)
	}
}
