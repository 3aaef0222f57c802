// Package plot renders weight-convergence charts by handing data to a
// gnuplot subprocess. The subprocess runs under a context timeout; the
// core never blocks on it.
package plot

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/glottalab/glotta/internal/analyzer"
)

// DefaultTimeout bounds how long we wait for gnuplot.
const DefaultTimeout = 10 * time.Second

// Render writes the traces to a temp data file and invokes gnuplot to
// produce a PNG at outPath. A missing gnuplot binary is reported as a
// plain error.
func Render(ctx context.Context, traces []analyzer.Trace, outPath string) error {
	if len(traces) == 0 {
		return fmt.Errorf("no traces to plot")
	}
	if maxRounds(traces) == 0 {
		return fmt.Errorf("no convergence data captured for tracked words")
	}
	if _, err := exec.LookPath("gnuplot"); err != nil {
		return fmt.Errorf("gnuplot not found in PATH: %w", err)
	}

	dir, err := os.MkdirTemp("", "glotta-plot-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	dataPath := filepath.Join(dir, "weights.dat")
	if err := writeData(dataPath, traces); err != nil {
		return err
	}

	scriptPath := filepath.Join(dir, "weights.gp")
	if err := os.WriteFile(scriptPath, []byte(script(dataPath, outPath, traces)), 0644); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "gnuplot", scriptPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("gnuplot failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func maxRounds(traces []analyzer.Trace) int {
	rounds := 0
	for _, t := range traces {
		if len(t.Weights) > rounds {
			rounds = len(t.Weights)
		}
	}
	return rounds
}

// writeData emits one row per round, one column per trace. Shorter
// traces pad with their last observed weight.
func writeData(path string, traces []analyzer.Trace) error {
	rounds := maxRounds(traces)

	var b strings.Builder
	for i := 0; i < rounds; i++ {
		b.WriteString(fmt.Sprintf("%d", i+1))
		for _, t := range traces {
			w := 0.0
			switch {
			case i < len(t.Weights):
				w = t.Weights[i]
			case len(t.Weights) > 0:
				w = t.Weights[len(t.Weights)-1]
			}
			b.WriteString(fmt.Sprintf(" %.6f", w))
		}
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func script(dataPath, outPath string, traces []analyzer.Trace) string {
	var b strings.Builder
	b.WriteString("set terminal png size 900,600\n")
	b.WriteString(fmt.Sprintf("set output %q\n", outPath))
	b.WriteString("set xlabel 'classification round'\n")
	b.WriteString("set ylabel 'weight'\n")
	b.WriteString("set yrange [0:1.05]\n")
	b.WriteString("set key outside\n")
	b.WriteString("plot ")
	for i, t := range traces {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%q using 1:%d with linespoints title %q",
			dataPath, i+2, fmt.Sprintf("%s (%s)", t.Word, t.Language)))
	}
	b.WriteByte('\n')
	return b.String()
}
