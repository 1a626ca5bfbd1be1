package main

import (
	"fmt"
	"strings"
)

// renderCurve renders the distance-vs-depth rows: one bar per layer count,
// scaled against the worst distance in the sweep so far.
func renderCurve(results []LayerResult, running bool, spin string) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Distance vs. circuit depth"))
	sb.WriteString("\n\n")

	maxCost := 0.0
	bestCost := 0.0
	if len(results) > 0 {
		bestCost = results[len(results)-1].Best
	}
	for _, r := range results {
		if r.Cost > maxCost {
			maxCost = r.Cost
		}
	}

	for _, r := range results {
		w := 0
		if maxCost > 0 {
			w = int(float64(barMaxW) * r.Cost / maxCost)
		}
		if w < 1 && r.Cost > 0 {
			w = 1
		}
		line := fmt.Sprintf("%s %s%s %s",
			layerLabelStyle.Render(fmt.Sprintf("L=%d", r.Layers)),
			barStyle.Render(strings.Repeat("█", w)),
			strings.Repeat(" ", barMaxW-w),
			fmt.Sprintf("%.6f", r.Cost))
		if r.Cost == bestCost {
			line += " " + bestMarkStyle.Render("◆ best")
		}
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render(fmt.Sprintf("     %d evaluations", r.Evals)))
		sb.WriteString("\n")
	}

	if running {
		sb.WriteString(runningStyle.Render(fmt.Sprintf("%s optimizing layer %d...", spin, len(results)+1)))
		sb.WriteString("\n")
	} else if len(results) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Minimum squared distance: %s", bestMarkStyle.Render(fmt.Sprintf("%.6f", bestCost))))
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderAngles renders the best parameter vector of the latest layer as
// per-qubit RX/RZ angle rows.
func renderAngles(params []float64, numQubits int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Best angles (latest layer)"))
	sb.WriteString("\n\n")

	if len(params) == 0 {
		sb.WriteString(dimStyle.Render("no layers optimized yet"))
		return sb.String()
	}

	perLayer := 2 * numQubits
	for layer := 0; layer*perLayer < len(params); layer++ {
		base := layer * perLayer
		sb.WriteString(layerLabelStyle.Render(fmt.Sprintf("layer %d", layer+1)))
		sb.WriteString("\n")
		for q := 0; q < numQubits; q++ {
			rx := formatAngle(params[base+q])
			rz := formatAngle(params[base+numQubits+q])
			sb.WriteString(fmt.Sprintf("  q[%d]  rx %-*s rz %-*s\n", q, angleColW, rx, angleColW, rz))
		}
	}

	return sb.String()
}

// renderControls renders the keybinding help line.
func renderControls(cfg Config, runID string, err error) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("run %s  %d qubits  %d layers  budget %d  seed %d",
		shortID(runID), cfg.Qubits, cfg.Layers, cfg.Budget, cfg.Seed))
	sb.WriteString("\n")
	if err != nil {
		sb.WriteString(runningStyle.Render(fmt.Sprintf("error: %v", err)))
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render("r rerun with next seed  q quit"))
	return sb.String()
}

// shortID truncates a run UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
