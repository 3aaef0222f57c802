// Package trainer feeds labeled and unlabeled text into the
// classifier's vocabularies.
package trainer

import (
	"math/rand"

	"github.com/glottalab/glotta/internal/analyzer"
	"github.com/glottalab/glotta/internal/classifier"
	"github.com/glottalab/glotta/internal/lang"
	"github.com/glottalab/glotta/internal/logger"
)

// Record is one externally sourced training or validation sample. It
// is consumed once and not retained.
type Record struct {
	Language lang.Code
	Text     string
}

type Trainer struct {
	cls *classifier.Classifier
	rng *rand.Rand
	// afterClassify, when set, observes every held-out classification
	// in batch order. Used to capture convergence traces.
	afterClassify func(round int, rec Record, res classifier.Result)
}

type Option func(*Trainer)

// WithSeed makes batch shuffling deterministic.
func WithSeed(seed int64) Option {
	return func(t *Trainer) { t.rng = rand.New(rand.NewSource(seed)) }
}

// WithObserver registers a hook called after each held-out record is
// classified during batch ingestion.
func WithObserver(f func(round int, rec Record, res classifier.Result)) Option {
	return func(t *Trainer) { t.afterClassify = f }
}

func New(cls *classifier.Classifier, opts ...Option) *Trainer {
	t := &Trainer{cls: cls, rng: rand.New(rand.NewSource(rand.Int63()))}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IngestLabeled tokenizes text with the language's own policy and
// stores every token as an axiom. Returns the number of tokens stored.
func (t *Trainer) IngestLabeled(code lang.Code, text string) int {
	toks := t.cls.Policy(code).Split(text)
	v := t.cls.Vocabulary(code)
	for _, tok := range toks {
		v.InsertAxiom(tok)
	}
	if len(toks) > 0 {
		logger.Debug("ingested %d axioms for %s", len(toks), code)
	}
	return len(toks)
}

// IngestUnlabeledBatch shuffles records and splits them by axiomRatio.
// The first fraction is ingested with its labels as axioms; the rest
// is classified with the label withheld, the label serving only for
// post-hoc accuracy. Returns one outcome per held-out record.
func (t *Trainer) IngestUnlabeledBatch(records []Record, axiomRatio float64) []analyzer.Outcome {
	if axiomRatio < 0 {
		axiomRatio = 0
	} else if axiomRatio > 1 {
		axiomRatio = 1
	}

	shuffled := make([]Record, len(records))
	copy(shuffled, records)
	t.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	split := int(axiomRatio * float64(len(shuffled)))
	for _, rec := range shuffled[:split] {
		t.IngestLabeled(rec.Language, rec.Text)
	}

	heldOut := shuffled[split:]
	outcomes := make([]analyzer.Outcome, 0, len(heldOut))
	for i, rec := range heldOut {
		res := t.cls.Classify(rec.Text)
		outcomes = append(outcomes, analyzer.Outcome{Expected: rec.Language, Text: rec.Text, Result: res})
		if t.afterClassify != nil {
			t.afterClassify(i, rec, res)
		}
	}
	logger.Info("batch ingested: %d axiom records, %d held out", split, len(heldOut))
	return outcomes
}
