package shapeframe

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

// monospace measures 10 units per rune.
func monospace(s string) float64 {
	return float64(utf8.RuneCountInString(s) * 10)
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{
			name:     "two words per line",
			text:     "The quick brown fox jumps",
			maxWidth: 120,
			want:     []string{"The quick ", "brown fox ", "jumps "},
		},
		{
			name:     "fits on one line",
			text:     "The quick brown fox jumps",
			maxWidth: 1000,
			want:     []string{"The quick brown fox jumps "},
		},
		{
			name:     "exact fit is not a break",
			text:     "abcd efgh",
			maxWidth: 100,
			want:     []string{"abcd efgh "},
		},
		{
			name:     "long word overflows on its own line",
			text:     "a supercalifragilistic b",
			maxWidth: 50,
			want:     []string{"a ", "supercalifragilistic ", "b "},
		},
		{
			name:     "long first word leaves an empty first line",
			text:     "supercalifragilistic b",
			maxWidth: 50,
			want:     []string{"", "supercalifragilistic ", "b "},
		},
		{
			name:     "double space keeps the empty word",
			text:     "a  b",
			maxWidth: 1000,
			want:     []string{"a  b "},
		},
		{
			name:     "one word per line",
			text:     "aa bb cc",
			maxWidth: 30,
			want:     []string{"aa ", "bb ", "cc "},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.text, tt.maxWidth, monospace)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText(%q, %v) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestWrapTextIdempotent(t *testing.T) {
	texts := []string{
		"The quick brown fox jumps",
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor",
		"one",
	}
	for _, maxWidth := range []float64{60, 120, 200, 400} {
		for _, text := range texts {
			first := WrapText(text, maxWidth, monospace)

			trimmed := make([]string, len(first))
			for i, l := range first {
				trimmed[i] = strings.TrimSpace(l)
			}
			second := WrapText(strings.Join(trimmed, " "), maxWidth, monospace)

			if !reflect.DeepEqual(first, second) {
				t.Errorf("maxWidth %v: rewrap of %q changed lines: %q -> %q", maxWidth, text, first, second)
			}
		}
	}
}

func TestWrapTextLinesFit(t *testing.T) {
	text := "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor"
	for _, line := range WrapText(text, 150, monospace) {
		if monospace(line) > 150 && strings.Count(strings.TrimSpace(line), " ") > 0 {
			t.Errorf("multi-word line %q is wider than 150", line)
		}
	}
}

func TestWrapTextMeasuresCandidate(t *testing.T) {
	var measured []string
	measure := func(s string) float64 {
		measured = append(measured, s)
		return monospace(s)
	}
	WrapText("ab cd", 1000, measure)

	want := []string{"ab ", "ab cd "}
	if !reflect.DeepEqual(measured, want) {
		t.Errorf("measured %q, want %q", measured, want)
	}
}

func TestLayoutText(t *testing.T) {
	lines := LayoutText("The quick brown fox jumps", 120, 22, 380, monospace)
	want := []Line{
		{Text: "The quick ", Y: 380},
		{Text: "brown fox ", Y: 402},
		{Text: "jumps ", Y: 424},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("LayoutText = %+v, want %+v", lines, want)
	}
}
