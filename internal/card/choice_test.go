package card

import (
	"strconv"
	"testing"

	"pgregory.net/rapid"
)

func TestIndexToLetter(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{-1, ""},
	}
	for _, c := range cases {
		if got := IndexToLetter(c.in); got != c.want {
			t.Errorf("IndexToLetter(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLetterToIndex(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"A", 0},
		{"a", 0},
		{"Z", 25},
		{"z", 25},
		{"", InvalidIndex},
		{"AB", InvalidIndex},
		{"1", InvalidIndex},
		{"?", InvalidIndex},
	}
	for _, c := range cases {
		if got := LetterToIndex(c.in); got != c.want {
			t.Errorf("LetterToIndex(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNormalizeChoiceCode(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"0", "A", true},
		{"1", "B", true},
		{"b", "B", true},
		{"C", "C", true},
		{" d ", "D", true},
		{" 2 ", "C", true},
		{"3x", "", false},
		{"", "", false},
		{"  ", "", false},
		{"-1", "", false},
		{"AB", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeChoiceCode(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("NormalizeChoiceCode(%q) = (%q, %t), want (%q, %t)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestLetterIndexRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		i := rapid.IntRange(0, 25).Draw(rt, "index")
		letter := IndexToLetter(i)
		if got := LetterToIndex(letter); got != i {
			rt.Errorf("LetterToIndex(IndexToLetter(%d)) = %d", i, got)
		}
	})
}

func TestNormalizeChoiceCodeNumericConvention(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		i := rapid.IntRange(0, 25).Draw(rt, "index")
		got, ok := NormalizeChoiceCode(strconv.Itoa(i))
		if !ok || got != IndexToLetter(i) {
			rt.Errorf("NormalizeChoiceCode(%d) = (%q, %t)", i, got, ok)
		}
	})
}
