package indexer

import (
	"strings"
	"testing"
)

func TestExtractKeywords_FrequencyRanked(t *testing.T) {
	text := "deploy deploy deploy pipeline pipeline rollback"
	got := ExtractKeywords(text, 10)
	want := []string{"deploy", "pipeline", "rollback"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestExtractKeywords_TiesBreakAlphabetically(t *testing.T) {
	got := ExtractKeywords("zebra apple zebra apple", 10)
	if len(got) != 2 || got[0] != "apple" || got[1] != "zebra" {
		t.Fatalf("expected [apple zebra], got %v", got)
	}
}

func TestExtractKeywords_FiltersNoise(t *testing.T) {
	text := "the and yeah okay 2024 42 ab budget"
	got := ExtractKeywords(text, 10)
	if len(got) != 1 || got[0] != "budget" {
		t.Fatalf("expected [budget], got %v", got)
	}
}

func TestExtractKeywords_CapsAtMax(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"}
	got := ExtractKeywords(strings.Join(words, " "), 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 keywords, got %v", got)
	}
}

func TestExtractKeywords_EmptyInput(t *testing.T) {
	if got := ExtractKeywords("", 10); len(got) != 0 {
		t.Fatalf("expected no keywords, got %v", got)
	}
	if got := ExtractKeywords("budget", 0); len(got) != 0 {
		t.Fatalf("expected no keywords with zero max, got %v", got)
	}
}
