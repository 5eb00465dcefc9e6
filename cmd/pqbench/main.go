// Command pqbench times Dijkstra and Prim with both priority-queue
// implementations on the textbook fixtures and on random sparse and dense
// graphs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	sparseV   = flag.Int("sparse-v", defaultConfig().SparseV, "vertices in the sparse random graphs")
	sparseE   = flag.Int("sparse-e", defaultConfig().SparseE, "edges in the sparse random graphs")
	denseV    = flag.Int("dense-v", defaultConfig().DenseV, "vertices in the dense random graphs")
	denseE    = flag.Int("dense-e", defaultConfig().DenseE, "edges in the dense random graphs")
	maxWeight = flag.Float64("max-weight", defaultConfig().MaxWeight, "upper bound of random edge weights")
	seed      = flag.Uint64("seed", defaultConfig().Seed, "generator seed")
	phases    = flag.String("phases", strings.Join(defaultConfig().Phases, ","), "comma-separated phases: fixtures,dijkstra,prim")
	dump      = flag.Bool("metrics", false, "print collected metrics in Prometheus text format on exit")
)

func main() {
	flag.Parse()
	cfg := benchConfig{
		SparseV:   *sparseV,
		SparseE:   *sparseE,
		DenseV:    *denseV,
		DenseE:    *denseE,
		MaxWeight: *maxWeight,
		Seed:      *seed,
		Phases:    splitPhases(*phases),
	}
	if errs := validateConfig(cfg); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, "pqbench:", err)
		}
		os.Exit(2)
	}

	reg := prometheus.NewRegistry()
	r := newRunner(cfg, log.Default(), newMetrics(reg))
	log.Printf("pqbench: %s", cfg)
	if err := r.run(); err != nil {
		log.Fatal(err)
	}

	if *dump {
		if err := dumpMetrics(os.Stdout, reg); err != nil {
			log.Fatal(err)
		}
	}
}

func splitPhases(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
