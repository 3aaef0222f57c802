package tokenizer_test

import (
	"reflect"
	"testing"

	"github.com/glottalab/glotta/internal/lang"
	"github.com/glottalab/glotta/internal/tokenizer"
)

func TestWordPolicy(t *testing.T) {
	p := tokenizer.ForLanguage(lang.English, tokenizer.Options{})

	cases := []struct {
		in   string
		want []string
	}{
		{"  Hello, WORLD!  ", []string{"hello", "world"}},
		{"well-known phrase", []string{"well", "known", "phrase"}},
		{"don't stop", []string{"don't", "stop"}},
		{"numbers 123 dropped", []string{"numbers", "dropped"}},
		{"", nil},
		{"привет мир", nil}, // Cyrillic fails the English alphabet
	}
	for _, c := range cases {
		got := p.Split(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Split(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWordPolicyMinRunes(t *testing.T) {
	p := tokenizer.ForLanguage(lang.English, tokenizer.Options{MinRunes: 2})
	got := p.Split("a big cat")
	want := []string{"big", "cat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split = %v, want %v", got, want)
	}
}

func TestRunePolicy(t *testing.T) {
	thai := tokenizer.ForLanguage(lang.Thai, tokenizer.Options{})
	got := thai.Split("สวัสดี ok")
	if len(got) != 6 {
		t.Fatalf("expected 6 rune tokens, got %d: %v", len(got), got)
	}
	for _, tok := range got {
		if len([]rune(tok)) != 1 {
			t.Errorf("rune policy token %q should be a single rune", tok)
		}
	}
}

func TestRunePolicyScriptOverlap(t *testing.T) {
	sample := "日本語です"

	japanese := tokenizer.ForLanguage(lang.Japanese, tokenizer.Options{})
	if got := japanese.Split(sample); len(got) != 5 {
		t.Errorf("japanese should keep all 5 runes, got %v", got)
	}

	// Chinese claims the shared Han runes but not the hiragana tail.
	chinese := tokenizer.ForLanguage(lang.Chinese, tokenizer.Options{})
	if got := chinese.Split(sample); len(got) != 3 {
		t.Errorf("chinese should keep the 3 Han runes, got %v", got)
	}
}

func TestPolicySelection(t *testing.T) {
	if _, ok := tokenizer.ForLanguage(lang.English, tokenizer.Options{}).(tokenizer.WordPolicy); !ok {
		t.Error("english should use the word policy")
	}
	if _, ok := tokenizer.ForLanguage(lang.Korean, tokenizer.Options{}).(tokenizer.RunePolicy); !ok {
		t.Error("korean should use the rune policy")
	}
}
