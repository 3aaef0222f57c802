package lang

import "unicode"

// Alphabet decides whether a rune may belong to a language's writing
// system. Runes outside every alphabet are never an error; they are
// simply dropped from candidate tokens.
type Alphabet interface {
	MayContain(r rune) bool
}

// MayContainWord reports whether every rune of word passes the alphabet.
// The empty word is rejected.
func MayContainWord(a Alphabet, word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !a.MayContain(r) {
			return false
		}
	}
	return true
}

// Named script tables, aliased so language configs read declaratively.
var (
	ScriptCyrillic = unicode.Cyrillic
	ScriptArabic   = unicode.Arabic
	ScriptHan      = unicode.Han
	ScriptHiragana = unicode.Hiragana
	ScriptKatakana = unicode.Katakana
	ScriptHangul   = unicode.Hangul
	ScriptThai     = unicode.Thai
)

// setAlphabet is an explicit rune enumeration. The apostrophe is always
// admitted so contractions survive word filtering.
type setAlphabet struct {
	runes map[rune]struct{}
}

func NewSet(chars string) Alphabet {
	s := setAlphabet{runes: make(map[rune]struct{}, len(chars))}
	for _, r := range chars {
		s.runes[r] = struct{}{}
	}
	s.runes['\''] = struct{}{}
	return s
}

func (s setAlphabet) MayContain(r rune) bool {
	_, ok := s.runes[r]
	return ok
}

// scriptAlphabet admits runes belonging to any of the given Unicode
// scripts.
type scriptAlphabet struct {
	scripts []*unicode.RangeTable
}

func NewScript(scripts ...*unicode.RangeTable) Alphabet {
	return scriptAlphabet{scripts: scripts}
}

func (s scriptAlphabet) MayContain(r rune) bool {
	for _, t := range s.scripts {
		if unicode.Is(t, r) {
			return true
		}
	}
	return false
}

// blockAlphabet admits letters inside one contiguous rune block, plus
// the apostrophe. Coarser than a set; enough for Latin-only languages.
type blockAlphabet struct {
	lo, hi rune
}

func NewBlock(lo, hi rune) Alphabet {
	return blockAlphabet{lo: lo, hi: hi}
}

func (b blockAlphabet) MayContain(r rune) bool {
	if r == '\'' {
		return true
	}
	return r >= b.lo && r <= b.hi && unicode.IsLetter(r)
}
