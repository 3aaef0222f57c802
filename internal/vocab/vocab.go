// Package vocab holds the per-language word store. Every word maps to
// exactly one entry: an axiom pinned at weight 1.0, created only from
// labeled data, or an induction whose weight starts at 0.0 and is
// revised after classification rounds its language wins.
package vocab

import (
	"sort"
	"sync"

	"github.com/glottalab/glotta/internal/lang"
)

type Kind int

const (
	Axiom Kind = iota
	Induction
)

func (k Kind) String() string {
	if k == Axiom {
		return "axiom"
	}
	return "induction"
}

// Entry is a value snapshot of one stored word. Mutation of the store
// after a snapshot never changes an Entry already handed out.
type Entry struct {
	Text   string
	Kind   Kind
	Weight float64
}

// AdjustFunc computes a new induction weight from the current weight
// and the winning sample's mean score. The convergence formula is a
// tunable policy, not part of the store.
type AdjustFunc func(current, mean float64) float64

// DampedMean pulls the weight halfway toward the sample mean. Iterated
// over many samples, words co-occurring with axioms converge to 1.0.
func DampedMean(current, mean float64) float64 {
	return (current + mean) / 2
}

type entry struct {
	kind   Kind
	weight float64
}

// Vocabulary is owned by one language. All access goes through the
// mutex: weight adjustment is read-modify-write on shared entries and
// must not interleave with scoring or snapshots.
type Vocabulary struct {
	mu      sync.Mutex
	lang    lang.Code
	entries map[string]*entry
}

func New(code lang.Code) *Vocabulary {
	return &Vocabulary{lang: code, entries: make(map[string]*entry)}
}

func (v *Vocabulary) Language() lang.Code { return v.lang }

// InsertAxiom creates or overwrites the entry for text as an axiom.
// Axioms take precedence: a prior induction entry is replaced outright.
func (v *Vocabulary) InsertAxiom(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries[text] = &entry{kind: Axiom, weight: 1.0}
}

// Resolve scores a tokenized sample against the vocabulary. Unless at
// least one token is already known, nothing is inserted and the score
// is zero; a sample no language recognizes must not pollute any
// vocabulary. Otherwise every token resolves to its existing entry or
// to a fresh induction at weight 0.0, and the returned snapshot holds
// the weights as of this call.
func (v *Vocabulary) Resolve(tokens []string) ([]Entry, float64) {
	if len(tokens) == 0 {
		return nil, 0
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	known := false
	for _, tok := range tokens {
		if _, ok := v.entries[tok]; ok {
			known = true
			break
		}
	}
	if !known {
		return nil, 0
	}

	resolved := make([]Entry, 0, len(tokens))
	score := 0.0
	for _, tok := range tokens {
		e, ok := v.entries[tok]
		if !ok {
			e = &entry{kind: Induction, weight: 0.0}
			v.entries[tok] = e
		}
		resolved = append(resolved, Entry{Text: tok, Kind: e.kind, Weight: e.weight})
		score += e.weight
	}
	return resolved, score
}

// AdjustInductions applies the adjustment policy to every induction
// token of a winning sample, once per occurrence. Axiom entries are
// untouched. Results are clamped to [0, 1] so no policy can escape the
// weight bounds. The whole pass runs under one lock acquisition.
func (v *Vocabulary) AdjustInductions(tokens []string, mean float64, adjust AdjustFunc) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, tok := range tokens {
		e, ok := v.entries[tok]
		if !ok || e.kind == Axiom {
			continue
		}
		w := adjust(e.weight, mean)
		if w < 0 {
			w = 0
		} else if w > 1 {
			w = 1
		}
		e.weight = w
	}
}

// Weight reports the current weight of text, if stored.
func (v *Vocabulary) Weight(text string) (float64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	e, ok := v.entries[text]
	if !ok {
		return 0, false
	}
	return e.weight, true
}

// Len reports the number of stored entries.
func (v *Vocabulary) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.entries)
}

// Snapshot returns value copies of all entries, sorted by descending
// weight then text, taken under the same lock that guards mutation.
func (v *Vocabulary) Snapshot() []Entry {
	v.mu.Lock()
	out := make([]Entry, 0, len(v.entries))
	for text, e := range v.entries {
		out = append(out, Entry{Text: text, Kind: e.kind, Weight: e.weight})
	}
	v.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Text < out[j].Text
	})
	return out
}
