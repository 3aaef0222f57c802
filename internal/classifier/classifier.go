// Package classifier scores a sample against every language's
// vocabulary, picks a winner, and triggers weight adjustment on the
// winning language's induction words.
package classifier

import (
	"golang.org/x/sync/errgroup"

	"github.com/glottalab/glotta/internal/lang"
	"github.com/glottalab/glotta/internal/logger"
	"github.com/glottalab/glotta/internal/tokenizer"
	"github.com/glottalab/glotta/internal/vocab"
)

// DefaultEpsilon is the minimum score a language must exceed to win a
// round. At or below it the sample is treated as unattributable.
const DefaultEpsilon = 0.0001

// LanguageScore is one language's share of a classification result:
// the resolved tokens with their weights as of scoring time, and their
// sum. Weight adjustment after winner selection never changes a
// LanguageScore already built.
type LanguageScore struct {
	Language lang.Code
	Score    float64
	Tokens   []vocab.Entry
}

// Result is an immutable report of one classification round.
type Result struct {
	HasWinner bool
	Winner    lang.Code
	MeanScore float64
	Languages []LanguageScore
}

// Best returns the strongest language score, winner first on ties in
// enumeration order.
func (r Result) Best() (LanguageScore, bool) {
	if !r.HasWinner {
		return LanguageScore{}, false
	}
	for _, ls := range r.Languages {
		if ls.Language == r.Winner {
			return ls, true
		}
	}
	return LanguageScore{}, false
}

type Classifier struct {
	languages []lang.Code
	vocabs    map[lang.Code]*vocab.Vocabulary
	policies  map[lang.Code]tokenizer.Policy
	adjust    vocab.AdjustFunc
	epsilon   float64
}

type Option func(*Classifier)

// WithEpsilon overrides the winner threshold.
func WithEpsilon(eps float64) Option {
	return func(c *Classifier) { c.epsilon = eps }
}

// WithAdjustFunc swaps the weight-convergence policy.
func WithAdjustFunc(f vocab.AdjustFunc) Option {
	return func(c *Classifier) { c.adjust = f }
}

// WithPolicy overrides the segmentation policy for one language, e.g.
// morpheme segmentation for Japanese.
func WithPolicy(code lang.Code, p tokenizer.Policy) Option {
	return func(c *Classifier) { c.policies[code] = p }
}

// WithMinTokenRunes drops short tokens for whitespace-segmented
// languages.
func WithMinTokenRunes(n int) Option {
	return func(c *Classifier) {
		for _, code := range c.languages {
			if code.GetConfig().Segmentation == lang.SegmentWords {
				c.policies[code] = tokenizer.ForLanguage(code, tokenizer.Options{MinRunes: n})
			}
		}
	}
}

// New builds a classifier over the full language set. The language set
// is fixed for the classifier's lifetime; training and scoring always
// see the same set.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		languages: lang.All(),
		vocabs:    make(map[lang.Code]*vocab.Vocabulary),
		policies:  make(map[lang.Code]tokenizer.Policy),
		adjust:    vocab.DampedMean,
		epsilon:   DefaultEpsilon,
	}
	for _, code := range c.languages {
		c.vocabs[code] = vocab.New(code)
		c.policies[code] = tokenizer.ForLanguage(code, tokenizer.Options{})
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Languages returns the enumeration order used for tie-breaking.
func (c *Classifier) Languages() []lang.Code { return c.languages }

// Vocabulary returns the store owned by code.
func (c *Classifier) Vocabulary(code lang.Code) *vocab.Vocabulary {
	return c.vocabs[code]
}

// Policy returns the segmentation policy for code.
func (c *Classifier) Policy(code lang.Code) tokenizer.Policy {
	return c.policies[code]
}

// Classify tokenizes the sample once per language, scores each
// vocabulary, and selects the winner. Scoring fans out across
// languages; each vocabulary serializes its own mutation, so languages
// never share state. If a winner clears the epsilon threshold, its
// induction tokens are pulled toward the sample's mean score.
func (c *Classifier) Classify(sample string) Result {
	scores := make([]LanguageScore, len(c.languages))
	tokens := make([][]string, len(c.languages))

	var g errgroup.Group
	for i, code := range c.languages {
		g.Go(func() error {
			toks := c.policies[code].Split(sample)
			resolved, score := c.vocabs[code].Resolve(toks)
			tokens[i] = toks
			scores[i] = LanguageScore{Language: code, Score: score, Tokens: resolved}
			return nil
		})
	}
	// Scoring goroutines never fail; Wait is a pure barrier.
	_ = g.Wait()

	winner := -1
	best := c.epsilon
	for i, ls := range scores {
		if ls.Score > best {
			best = ls.Score
			winner = i
		}
	}

	res := Result{Languages: scores}
	if winner < 0 {
		logger.Debug("no winner for sample (%d languages all at or below %g)", len(c.languages), c.epsilon)
		return res
	}

	res.HasWinner = true
	res.Winner = c.languages[winner]
	if n := len(scores[winner].Tokens); n > 0 {
		res.MeanScore = scores[winner].Score / float64(n)
		c.vocabs[res.Winner].AdjustInductions(tokens[winner], res.MeanScore, c.adjust)
	}
	logger.Debug("winner=%s score=%.4f mean=%.4f", res.Winner, scores[winner].Score, res.MeanScore)
	return res
}
