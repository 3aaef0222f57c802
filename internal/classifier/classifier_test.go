package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glottalab/glotta/internal/classifier"
	"github.com/glottalab/glotta/internal/lang"
	"github.com/glottalab/glotta/internal/vocab"
)

func newEnglishClassifier(t *testing.T, axioms ...string) *classifier.Classifier {
	t.Helper()
	cls := classifier.New()
	v := cls.Vocabulary(lang.English)
	for _, a := range axioms {
		v.InsertAxiom(a)
	}
	return cls
}

func TestClassifyKnownSample(t *testing.T) {
	cls := newEnglishClassifier(t, "hello", "world")

	res := cls.Classify("hello there")
	require.True(t, res.HasWinner)
	assert.Equal(t, lang.English, res.Winner)

	best, ok := res.Best()
	require.True(t, ok)
	assert.Equal(t, 1.0, best.Score, "only the axiom contributes")
	assert.Equal(t, 0.5, res.MeanScore)

	// New word picked up as induction and pulled toward the mean:
	// (0.0 + 0.5) / 2 = 0.25.
	w, ok := cls.Vocabulary(lang.English).Weight("there")
	require.True(t, ok)
	assert.Equal(t, 0.25, w)
}

func TestResultSnapshotPrecedesAdjustment(t *testing.T) {
	cls := newEnglishClassifier(t, "hello")

	res := cls.Classify("hello there")
	best, _ := res.Best()
	for _, e := range best.Tokens {
		if e.Text == "there" {
			assert.Equal(t, 0.0, e.Weight, "result must hold pre-adjustment weights")
		}
	}
}

func TestRepeatedClassificationConverges(t *testing.T) {
	cls := newEnglishClassifier(t, "hello", "world")
	v := cls.Vocabulary(lang.English)

	prev := 0.0
	for i := 0; i < 50; i++ {
		cls.Classify("hello there")
		w, _ := v.Weight("there")
		if w < prev {
			t.Fatalf("round %d: weight decreased %v -> %v", i, prev, w)
		}
		if w < 0 || w > 1 {
			t.Fatalf("round %d: weight %v out of bounds", i, w)
		}
		prev = w
	}
	assert.Greater(t, prev, 0.95, "weight should approach 1.0")

	// The anchoring axiom never moves.
	w, _ := v.Weight("hello")
	assert.Equal(t, 1.0, w)
}

func TestUnknownSampleHasNoWinner(t *testing.T) {
	cls := newEnglishClassifier(t, "hello")

	res := cls.Classify("completely foreign gibberish")
	assert.False(t, res.HasWinner)

	// No vocabulary grew: unattributable samples must not pollute.
	for _, code := range cls.Languages() {
		want := 0
		if code == lang.English {
			want = 1
		}
		assert.Equal(t, want, cls.Vocabulary(code).Len(), "vocabulary %s", code)
	}
}

func TestDisjointAlphabetScoresZero(t *testing.T) {
	cls := newEnglishClassifier(t, "hello", "world")

	res := cls.Classify("สวัสดีครับ")
	assert.False(t, res.HasWinner)
	for _, ls := range res.Languages {
		if ls.Language == lang.English {
			assert.Equal(t, 0.0, ls.Score, "thai-only sample must score 0 for english")
			assert.Empty(t, ls.Tokens)
		}
	}
}

func TestTieBreaksByEnumerationOrder(t *testing.T) {
	cls := classifier.New()
	cls.Vocabulary(lang.English).InsertAxiom("paris")
	cls.Vocabulary(lang.French).InsertAxiom("paris")

	res := cls.Classify("paris")
	require.True(t, res.HasWinner)
	assert.Equal(t, lang.English, res.Winner, "english precedes french in enumeration order")
}

func TestEpsilonThreshold(t *testing.T) {
	cls := classifier.New(classifier.WithEpsilon(2.0))
	cls.Vocabulary(lang.English).InsertAxiom("hello")

	res := cls.Classify("hello")
	assert.False(t, res.HasWinner, "score 1.0 must not clear an epsilon of 2.0")
}

func TestCustomAdjustFunc(t *testing.T) {
	frozen := func(current, mean float64) float64 { return current }
	cls := classifier.New(classifier.WithAdjustFunc(frozen))
	cls.Vocabulary(lang.English).InsertAxiom("hello")

	cls.Classify("hello there")
	w, ok := cls.Vocabulary(lang.English).Weight("there")
	require.True(t, ok)
	assert.Equal(t, 0.0, w, "frozen policy must leave inductions untouched")
}

func TestMinTokenRunesOption(t *testing.T) {
	cls := classifier.New(classifier.WithMinTokenRunes(2))
	cls.Vocabulary(lang.English).InsertAxiom("big")

	res := cls.Classify("a big cat")
	best, ok := res.Best()
	require.True(t, ok)
	assert.Len(t, best.Tokens, 2, "single-rune token should be dropped")
}

func TestWeightBoundsUnderMixedTraffic(t *testing.T) {
	cls := newEnglishClassifier(t, "the", "quick", "brown", "fox")

	samples := []string{
		"the quick brown fox jumps",
		"the lazy dog sleeps",
		"quick brown movements",
		"fox hunting season",
	}
	for i := 0; i < 20; i++ {
		cls.Classify(samples[i%len(samples)])
	}

	for _, e := range cls.Vocabulary(lang.English).Snapshot() {
		if e.Weight < 0 || e.Weight > 1 {
			t.Errorf("entry %q weight %v out of [0,1]", e.Text, e.Weight)
		}
		if e.Kind == vocab.Axiom && e.Weight != 1.0 {
			t.Errorf("axiom %q drifted to %v", e.Text, e.Weight)
		}
	}
}

func TestSecondRoundUsesUpdatedWeights(t *testing.T) {
	cls := newEnglishClassifier(t, "hello", "world")
	v := cls.Vocabulary(lang.English)

	cls.Classify("hello there") // there -> 0.25
	res := cls.Classify("hello there")

	// Round 2: score = 1.0 + 0.25, mean = 0.625, there -> 0.4375.
	best, _ := res.Best()
	assert.InDelta(t, 1.25, best.Score, 1e-9)
	assert.InDelta(t, 0.625, res.MeanScore, 1e-9)
	w, _ := v.Weight("there")
	assert.InDelta(t, 0.4375, w, 1e-9)
}
