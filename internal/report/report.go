// Package report renders analyzer output for the console.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glottalab/glotta/internal/analyzer"
	"github.com/glottalab/glotta/internal/classifier"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle  = lipgloss.NewStyle().Width(10)
)

// RenderResult formats one classification round: every language's
// score, the winner highlighted.
func RenderResult(sample string, res classifier.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("sample: %q", truncate(sample, 60))))
	b.WriteByte('\n')

	for _, ls := range res.Languages {
		line := fmt.Sprintf("%s %8.4f  (%d tokens)",
			labelStyle.Render(ls.Language.String()), ls.Score, len(ls.Tokens))
		if res.HasWinner && ls.Language == res.Winner {
			line = winnerStyle.Render(line + "  ← winner")
		} else if ls.Score == 0 {
			line = dimStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if !res.HasWinner {
		b.WriteString(dimStyle.Render("no winner: sample is unattributable"))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderSummary formats batch accuracy with a per-language breakdown.
func RenderSummary(sum analyzer.Summary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("evaluation summary"))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("samples:   %d\n", sum.Total))
	b.WriteString(fmt.Sprintf("correct:   %d\n", sum.Correct))
	b.WriteString(fmt.Sprintf("no winner: %d\n", sum.NoWinner))
	b.WriteString(fmt.Sprintf("accuracy:  %.2f%%\n", sum.Accuracy()*100))
	for _, st := range sum.PerLanguage {
		b.WriteString(fmt.Sprintf("  %s %4d/%-4d %6.2f%%\n",
			labelStyle.Render(st.Language.String()), st.Correct, st.Total, st.Accuracy()*100))
	}
	return b.String()
}

// RenderVocab formats one language's vocabulary report.
func RenderVocab(rep analyzer.VocabReport) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("vocabulary: %s", rep.Language)))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("axioms:     %d\n", rep.Axioms))
	b.WriteString(fmt.Sprintf("inductions: %d (mean weight %.4f)\n", rep.Inductions, rep.MeanInductionWeight))
	for _, e := range rep.Top {
		b.WriteString(fmt.Sprintf("  %-20s %.4f\n", e.Text, e.Weight))
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
