package tokenizer

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	kagome "github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/glottalab/glotta/internal/lang"
)

// MorphemePolicy segments Japanese text into morphemes with the kagome
// IPA dictionary instead of falling back to rune-per-word. Optional;
// enabled via configuration.
type MorphemePolicy struct {
	Alphabet lang.Alphabet

	t *kagome.Tokenizer
}

func NewMorpheme(alphabet lang.Alphabet) (*MorphemePolicy, error) {
	t, err := kagome.New(ipa.Dict(), kagome.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &MorphemePolicy{Alphabet: alphabet, t: t}, nil
}

func (p *MorphemePolicy) Split(text string) []string {
	var words []string
	for _, tok := range p.t.Tokenize(text) {
		if tok.Class == kagome.DUMMY {
			continue
		}
		surface := strings.TrimSpace(tok.Surface)
		if surface == "" {
			continue
		}
		if !lang.MayContainWord(p.Alphabet, surface) {
			continue
		}
		words = append(words, surface)
	}
	return words
}
