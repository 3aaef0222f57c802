// Package lang defines the closed set of supported languages. Each
// language carries an alphabet predicate and a segmentation kind; the
// set is fixed at compile time and identical for training and scoring.
package lang

import (
	"fmt"
	"strings"
)

type Code int

const (
	English Code = iota
	Spanish
	French
	German
	Turkish
	Russian
	Arabic
	Chinese
	Japanese
	Korean
	Thai
)

// SegmentationKind selects how raw text is split into candidate words.
type SegmentationKind int

const (
	// SegmentWords splits on whitespace and dash runs.
	SegmentWords SegmentationKind = iota
	// SegmentRunes treats every valid rune as its own word. Used for
	// languages without reliable word-boundary whitespace.
	SegmentRunes
)

// Config is the static per-language configuration record.
type Config struct {
	Alphabet     Alphabet
	Segmentation SegmentationKind
}

var names = map[Code]string{
	English:  "english",
	Spanish:  "spanish",
	French:   "french",
	German:   "german",
	Turkish:  "turkish",
	Russian:  "russian",
	Arabic:   "arabic",
	Chinese:  "chinese",
	Japanese: "japanese",
	Korean:   "korean",
	Thai:     "thai",
}

// All returns every supported language in enumeration order. Order
// matters: score ties are broken by the first language encountered.
func All() []Code {
	return []Code{
		English, Spanish, French, German, Turkish, Russian,
		Arabic, Chinese, Japanese, Korean, Thai,
	}
}

func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("lang(%d)", int(c))
}

// Parse resolves a language name case-insensitively.
func Parse(s string) (Code, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for code, name := range names {
		if name == want {
			return code, nil
		}
	}
	return 0, fmt.Errorf("unknown language %q", s)
}

// GetConfig returns the language's static configuration.
func (c Code) GetConfig() Config {
	return configs[c]
}

var configs = map[Code]Config{
	// Latin-script languages without diacritic requirements use the
	// coarser block test.
	English: {Alphabet: NewBlock(0x0000, 0x007F), Segmentation: SegmentWords},
	French:  {Alphabet: NewBlock(0x0000, 0x00FF), Segmentation: SegmentWords},
	German:  {Alphabet: NewBlock(0x0000, 0x00FF), Segmentation: SegmentWords},

	// Explicit sets for languages whose diacritics cut across blocks.
	Spanish: {Alphabet: NewSet("abcdefghijklmnopqrstuvwxyzñáéíóúü"), Segmentation: SegmentWords},
	Turkish: {Alphabet: NewSet("abcçdefgğhıijklmnoöprsştuüvyz"), Segmentation: SegmentWords},

	Russian:  {Alphabet: NewScript(ScriptCyrillic), Segmentation: SegmentWords},
	Arabic:   {Alphabet: NewScript(ScriptArabic), Segmentation: SegmentWords},
	Chinese:  {Alphabet: NewScript(ScriptHan), Segmentation: SegmentRunes},
	Japanese: {Alphabet: NewScript(ScriptHiragana, ScriptKatakana, ScriptHan), Segmentation: SegmentRunes},
	Korean:   {Alphabet: NewScript(ScriptHangul), Segmentation: SegmentRunes},
	Thai:     {Alphabet: NewScript(ScriptThai), Segmentation: SegmentRunes},
}
