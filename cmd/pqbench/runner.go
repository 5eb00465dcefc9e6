package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/katalvlaran/pqgraph/bfs"
	"github.com/katalvlaran/pqgraph/builder"
	"github.com/katalvlaran/pqgraph/core"
	"github.com/katalvlaran/pqgraph/dijkstra"
	"github.com/katalvlaran/pqgraph/pq"
	"github.com/katalvlaran/pqgraph/prim_kruskal"
)

// runner executes the benchmark phases selected in cfg.
type runner struct {
	cfg     benchConfig
	logger  *log.Logger
	metrics *metrics
	// barOut receives progress bars; nil means the ANSI-aware stdout.
	barOut io.Writer
	// step counts generated graphs for the "[k/total]" bar prefix.
	step, steps int
}

func newRunner(cfg benchConfig, logger *log.Logger, m *metrics) *runner {
	steps := 0
	if cfg.hasPhase("dijkstra") {
		steps += 2
	}
	if cfg.hasPhase("prim") {
		steps += 2
	}
	return &runner{cfg: cfg, logger: logger, metrics: m, steps: steps}
}

func (r *runner) run() error {
	if r.cfg.hasPhase("fixtures") {
		r.fixtures()
	}
	if r.cfg.hasPhase("dijkstra") {
		if err := r.dijkstraPhase(); err != nil {
			return err
		}
	}
	if r.cfg.hasPhase("prim") {
		if err := r.primPhase(); err != nil {
			return err
		}
	}
	return nil
}

// fixtures prints the textbook answers with both queues.
func (r *runner) fixtures() {
	d := builder.DijkstraExample[int]()
	r.logger.Println("-- dijkstra example --")
	for _, useHeap := range []bool{true, false} {
		r.logger.Printf("%s: dist(0,4) = %d", pq.KindFor(useHeap), dijkstra.ShortestPath(d, 0, 4, useHeap))
	}

	p := builder.PrimExample[int]()
	r.logger.Println("-- prim example --")
	for _, useHeap := range []bool{true, false} {
		r.logger.Printf("%s: mst(0) = %d", pq.KindFor(useHeap), prim_kruskal.MinimumSpanningTree(p, 0, useHeap))
	}
}

func (r *runner) dijkstraPhase() error {
	sparse, err := r.generate("sparse", r.cfg.SparseV, r.cfg.SparseE, builder.WithDirected())
	if err != nil {
		return err
	}
	r.timeDijkstra("sparse", sparse)

	dense, err := r.generate("dense", r.cfg.DenseV, r.cfg.DenseE, builder.WithDirected(), builder.WithMatrix())
	if err != nil {
		return err
	}
	r.timeDijkstra("dense", dense)
	return nil
}

func (r *runner) primPhase() error {
	sparse, err := r.generate("sparse", r.cfg.SparseV, r.cfg.SparseE)
	if err != nil {
		return err
	}
	r.timePrim("sparse", sparse)

	dense, err := r.generate("dense", r.cfg.DenseV, r.cfg.DenseE, builder.WithMatrix())
	if err != nil {
		return err
	}
	r.timePrim("dense", dense)
	return nil
}

// generate draws a weighted float32 graph behind a progress bar.
func (r *runner) generate(label string, n, e int, opts ...builder.BuilderOption) (*core.Graph[float32], error) {
	r.step++
	bar := r.newBar(e, fmt.Sprintf("[cyan][%d/%d][reset] generating %s graph (V=%d, E=%d)...", r.step, r.steps, label, n, e))

	opts = append(opts,
		builder.WithSeed(r.cfg.Seed+uint64(r.step)),
		builder.WithWeighted(),
		builder.WithMaxWeight(r.cfg.MaxWeight),
		builder.WithProgress(func(done, _ int) { _ = bar.Set(done) }),
	)
	g, err := builder.RandomGraph[float32](n, e, opts...)
	_ = bar.Finish()
	if err != nil {
		return nil, fmt.Errorf("%s graph: %w", label, err)
	}
	r.metrics.edgesBuilt.WithLabelValues(label).Add(float64(g.EdgeCount()))
	r.logger.Printf("-- %s graph generated --", label)
	return g, nil
}

func (r *runner) newBar(total int, description string) *progressbar.ProgressBar {
	out := r.barOut
	if out == nil {
		out = ansi.NewAnsiStdout()
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func (r *runner) timeDijkstra(label string, g *core.Graph[float32]) {
	t := g.NodeCount() - 1
	if hops, ok := hopsTo(g, 0, t); ok {
		r.logger.Printf("dijkstra %s: target %d at %d hops from 0", label, t, hops)
	} else {
		r.logger.Printf("dijkstra %s: target %d unreachable from 0", label, t)
	}
	for _, useHeap := range []bool{true, false} {
		var dist float32
		ms := r.measure("dijkstra", label, useHeap, func() { dist = dijkstra.ShortestPath(g, 0, t, useHeap) })
		r.logger.Printf("dijkstra %s %s: dist(0,%d) = %g, %.3fms", label, pq.KindFor(useHeap), t, dist, ms)
	}
}

func (r *runner) timePrim(label string, g *core.Graph[float32]) {
	for _, useHeap := range []bool{true, false} {
		var total float32
		ms := r.measure("prim", label, useHeap, func() { total = prim_kruskal.MinimumSpanningTree(g, 0, useHeap) })
		r.logger.Printf("prim %s %s: mst(0) = %g, %.3fms", label, pq.KindFor(useHeap), total, ms)
	}
}

// errTargetVisited stops the hop search once the target is dequeued.
var errTargetVisited = errors.New("target visited")

// hopsTo returns the hop distance from s to t, stopping the BFS at t.
func hopsTo(g *core.Graph[float32], s, t int) (int, bool) {
	hops := -1
	_, err := bfs.BFS(g, s, bfs.WithOnVisit(func(id, depth int) error {
		if id == t {
			hops = depth
			return errTargetVisited
		}
		return nil
	}))
	if err != nil && !errors.Is(err, errTargetVisited) {
		return -1, false
	}
	return hops, hops >= 0
}

// measure runs fn once and returns the elapsed time in milliseconds.
func (r *runner) measure(algorithm, label string, useHeap bool, fn func()) float64 {
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	r.metrics.observe(algorithm, pq.KindFor(useHeap).String(), label, elapsed.Seconds())
	return float64(elapsed.Microseconds()) / 1000
}
