package analyzer_test

import (
	"testing"

	"github.com/glottalab/glotta/internal/analyzer"
	"github.com/glottalab/glotta/internal/classifier"
	"github.com/glottalab/glotta/internal/lang"
	"github.com/glottalab/glotta/internal/vocab"
)

func won(code lang.Code) classifier.Result {
	return classifier.Result{
		HasWinner: true,
		Winner:    code,
		Languages: []classifier.LanguageScore{{Language: code, Score: 1.0}},
	}
}

func TestSummarize(t *testing.T) {
	outcomes := []analyzer.Outcome{
		{Expected: lang.English, Result: won(lang.English)},
		{Expected: lang.English, Result: won(lang.Thai)},
		{Expected: lang.Thai, Result: won(lang.Thai)},
		{Expected: lang.Thai, Result: classifier.Result{}}, // no winner
	}

	sum := analyzer.Summarize(outcomes)
	if sum.Total != 4 || sum.Correct != 2 || sum.NoWinner != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.Accuracy() != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", sum.Accuracy())
	}

	if len(sum.PerLanguage) != 2 {
		t.Fatalf("expected 2 language buckets, got %d", len(sum.PerLanguage))
	}
	// Enumeration order: English before Thai.
	if sum.PerLanguage[0].Language != lang.English || sum.PerLanguage[0].Correct != 1 {
		t.Errorf("english bucket = %+v", sum.PerLanguage[0])
	}
	if sum.PerLanguage[1].Language != lang.Thai || sum.PerLanguage[1].Total != 2 {
		t.Errorf("thai bucket = %+v", sum.PerLanguage[1])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := analyzer.Summarize(nil)
	if sum.Total != 0 || sum.Accuracy() != 0 {
		t.Errorf("empty summary = %+v", sum)
	}
}

func TestReportVocabulary(t *testing.T) {
	v := vocab.New(lang.English)
	v.InsertAxiom("hello")
	v.InsertAxiom("world")
	v.Resolve([]string{"hello", "there", "friend"})
	v.AdjustInductions([]string{"there"}, 0.5, vocab.DampedMean)

	rep := analyzer.ReportVocabulary(v, 10)
	if rep.Axioms != 2 || rep.Inductions != 2 {
		t.Fatalf("report = %+v", rep)
	}
	// there=0.25, friend=0.0 -> mean 0.125.
	if rep.MeanInductionWeight != 0.125 {
		t.Errorf("mean induction weight = %v, want 0.125", rep.MeanInductionWeight)
	}
	if len(rep.Top) != 2 || rep.Top[0].Text != "there" {
		t.Errorf("top inductions = %+v", rep.Top)
	}
}

func TestReportVocabularyTopN(t *testing.T) {
	v := vocab.New(lang.English)
	v.InsertAxiom("seed")
	v.Resolve([]string{"seed", "a", "b", "c", "d"})

	rep := analyzer.ReportVocabulary(v, 2)
	if len(rep.Top) != 2 {
		t.Errorf("topN not honored: %d entries", len(rep.Top))
	}
}

func TestTraceObserve(t *testing.T) {
	v := vocab.New(lang.English)
	v.InsertAxiom("hello")

	tr := analyzer.Trace{Word: "there", Language: lang.English}
	tr.Observe(v) // not stored yet -> 0
	v.Resolve([]string{"hello", "there"})
	v.AdjustInductions([]string{"there"}, 0.5, vocab.DampedMean)
	tr.Observe(v)

	if len(tr.Weights) != 2 || tr.Weights[0] != 0.0 || tr.Weights[1] != 0.25 {
		t.Errorf("trace weights = %v", tr.Weights)
	}
}
