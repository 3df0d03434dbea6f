package cli

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// leafHistogram tallies how many emitted trees had each leaf count.
// Populated incrementally by app.go's sink wrapper as trees stream
// through, never buffering the trees themselves.
type leafHistogram struct {
	counts map[int]int
}

func (h *leafHistogram) add(leaves int) {
	if h.counts == nil {
		h.counts = make(map[int]int)
	}
	h.counts[leaves]++
}

// writeLeafHistogram renders h as a bar chart PNG at path, via
// gonum.org/v1/plot — grounded on the corpus's direct dependency on
// the same package (hotstuff-optilog/go.mod). This is additive
// output: never required, never part of the canonical stdout grammar.
func writeLeafHistogram(path string, h leafHistogram) error {
	if len(h.counts) == 0 {
		return fmt.Errorf("no trees to plot")
	}

	leaves := make([]int, 0, len(h.counts))
	for l := range h.counts {
		leaves = append(leaves, l)
	}
	sort.Ints(leaves)

	values := make(plotter.Values, len(leaves))
	for i, l := range leaves {
		values[i] = float64(h.counts[l])
	}

	p := plot.New()
	p.Title.Text = "Leaf count distribution"
	p.X.Label.Text = "leaves"
	p.Y.Label.Text = "trees emitted"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}
	p.Add(bars)

	labels := make([]string, len(leaves))
	for i, l := range leaves {
		labels[i] = fmt.Sprintf("%d", l)
	}
	p.NominalX(labels...)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
