// qstatefit approximates a random target quantum state with a layered
// Rx/Rz/CZ ansatz, reporting the minimum squared distance reachable at each
// circuit depth. By default it opens a TUI that renders the distance curve
// as the sweep runs; -headless prints the (layers, distance) pairs instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := flag.String("config", "", "config file path (YAML)")
	qubits := flag.Int("qubits", 0, "override qubit count")
	layers := flag.Int("layers", 0, "override number of layers to sweep")
	budget := flag.Int("budget", 0, "override optimizer evaluation budget per layer")
	seed := flag.Int64("seed", 0, "override random seed")
	workers := flag.Int("workers", 0, "override parallel cost evaluations")
	headless := flag.Bool("headless", false, "print the distance curve without the TUI")
	seedList := flag.String("seeds", "", "comma-separated seeds for a parallel multi-seed sweep (implies -headless)")
	flag.Parse()

	cfg := Default()
	if *configPath != "" {
		var err error
		cfg, err = Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	if *qubits > 0 {
		cfg.Qubits = *qubits
	}
	if *layers > 0 {
		cfg.Layers = *layers
	}
	if *budget > 0 {
		cfg.Budget = *budget
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *seedList != "" {
		seeds, err := parseSeeds(*seedList)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		runSeedSweep(cfg, seeds)
		return
	}

	if *headless {
		runHeadless(cfg)
		return
	}

	p := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func parseSeeds(list string) ([]int64, error) {
	var seeds []int64
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		s, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", part, err)
		}
		seeds = append(seeds, s)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seeds in %q", list)
	}
	return seeds, nil
}

func runHeadless(cfg Config) {
	exp, err := NewExperiment(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	results, err := exp.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# run %s seed %d qubits %d\n", exp.RunID, cfg.Seed, cfg.Qubits)
	printCurve(results)
}

func runSeedSweep(cfg Config, seeds []int64) {
	runs, err := RunSeeds(cfg, seeds, len(seeds))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	for _, run := range runs {
		fmt.Printf("# run %s seed %d qubits %d\n", run.RunID, run.Seed, cfg.Qubits)
		printCurve(run.Results)
	}
}

func printCurve(results []LayerResult) {
	for _, r := range results {
		fmt.Printf("%d\t%.12f\n", r.Layers, r.Cost)
	}
}
