// Package tokenizer turns raw samples into candidate words for one
// language. Segmentation is eager: the whole sample is split before
// scoring starts.
package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/glottalab/glotta/internal/lang"
)

// Policy segments text into candidate words for one language.
type Policy interface {
	Split(text string) []string
}

// Options tune word filtering for whitespace-segmented languages.
type Options struct {
	// MinRunes drops tokens shorter than this many runes. Zero or one
	// keeps single-rune tokens.
	MinRunes int
}

// ForLanguage builds the default policy for a language from its static
// configuration.
func ForLanguage(code lang.Code, opts Options) Policy {
	cfg := code.GetConfig()
	switch cfg.Segmentation {
	case lang.SegmentRunes:
		return RunePolicy{Alphabet: cfg.Alphabet}
	default:
		return WordPolicy{Alphabet: cfg.Alphabet, MinRunes: opts.MinRunes}
	}
}

// WordPolicy lower-cases, keeps letters/whitespace/apostrophe, splits
// on whitespace and dash runs, then filters every token through the
// alphabet.
type WordPolicy struct {
	Alphabet lang.Alphabet
	MinRunes int
}

func (p WordPolicy) Split(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '\'':
			return r
		case r == '-' || unicode.IsSpace(r):
			return ' '
		case unicode.IsLetter(r):
			return unicode.ToLower(r)
		default:
			return -1
		}
	}, norm.NFC.String(strings.TrimSpace(text)))

	var words []string
	for _, tok := range strings.Fields(cleaned) {
		if p.MinRunes > 1 && len([]rune(tok)) < p.MinRunes {
			continue
		}
		if !lang.MayContainWord(p.Alphabet, tok) {
			continue
		}
		words = append(words, tok)
	}
	return words
}

// RunePolicy treats every rune the alphabet accepts as its own word.
// Used for languages without word-boundary whitespace; overlapping
// scripts (Han in both Chinese and Japanese) may claim the same rune
// for several languages, which relative scoring resolves.
type RunePolicy struct {
	Alphabet lang.Alphabet
}

func (p RunePolicy) Split(text string) []string {
	var words []string
	for _, r := range norm.NFC.String(text) {
		if p.Alphabet.MayContain(r) {
			words = append(words, string(r))
		}
	}
	return words
}
