// Package analyzer aggregates classification outcomes for reporting.
// It consumes classifier results and vocabulary snapshots; nothing in
// the core depends on it.
package analyzer

import (
	"github.com/glottalab/glotta/internal/classifier"
	"github.com/glottalab/glotta/internal/lang"
	"github.com/glottalab/glotta/internal/vocab"
)

// Outcome pairs one held-out record's true label with the result the
// classifier produced without seeing that label.
type Outcome struct {
	Expected lang.Code
	Text     string
	Result   classifier.Result
}

// Correct reports whether the classifier picked the true language.
func (o Outcome) Correct() bool {
	return o.Result.HasWinner && o.Result.Winner == o.Expected
}

// LanguageStats is the per-language slice of a summary.
type LanguageStats struct {
	Language lang.Code
	Total    int
	Correct  int
}

func (s LanguageStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Summary aggregates a batch of outcomes.
type Summary struct {
	Total       int
	Correct     int
	NoWinner    int
	PerLanguage []LanguageStats
}

func (s Summary) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Summarize folds outcomes into totals and a per-language breakdown
// keyed by the expected label, in language enumeration order.
func Summarize(outcomes []Outcome) Summary {
	byLang := make(map[lang.Code]*LanguageStats)
	sum := Summary{}
	for _, o := range outcomes {
		sum.Total++
		st, ok := byLang[o.Expected]
		if !ok {
			st = &LanguageStats{Language: o.Expected}
			byLang[o.Expected] = st
		}
		st.Total++
		if !o.Result.HasWinner {
			sum.NoWinner++
			continue
		}
		if o.Correct() {
			sum.Correct++
			st.Correct++
		}
	}
	for _, code := range lang.All() {
		if st, ok := byLang[code]; ok {
			sum.PerLanguage = append(sum.PerLanguage, *st)
		}
	}
	return sum
}

// VocabReport describes one language's vocabulary at snapshot time.
type VocabReport struct {
	Language            lang.Code
	Axioms              int
	Inductions          int
	MeanInductionWeight float64
	// Top holds the highest-weighted induction entries, at most TopN.
	Top []vocab.Entry
}

// ReportVocabulary summarizes a vocabulary snapshot. topN bounds the
// number of induction entries returned for display.
func ReportVocabulary(v *vocab.Vocabulary, topN int) VocabReport {
	rep := VocabReport{Language: v.Language()}
	var weightSum float64
	for _, e := range v.Snapshot() {
		if e.Kind == vocab.Axiom {
			rep.Axioms++
			continue
		}
		rep.Inductions++
		weightSum += e.Weight
		if len(rep.Top) < topN {
			rep.Top = append(rep.Top, e)
		}
	}
	if rep.Inductions > 0 {
		rep.MeanInductionWeight = weightSum / float64(rep.Inductions)
	}
	return rep
}

// Trace records one induction word's weight after each classification
// round, for convergence plotting.
type Trace struct {
	Word     string
	Language lang.Code
	Weights  []float64
}

// Observe appends the word's current weight. Missing entries record as
// zero so rounds stay aligned.
func (t *Trace) Observe(v *vocab.Vocabulary) {
	w, _ := v.Weight(t.Word)
	t.Weights = append(t.Weights, w)
}
