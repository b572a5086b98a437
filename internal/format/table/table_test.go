package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"q", "quit"},
		{"ctrl+d", "down_half"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	want := []string{
		"q       quit",
		"ctrl+d  down_half",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{
		{"One", "3:04"},
		{"A much longer title", "12:40"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"One                   3:04",
		"A much longer title  12:40",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatIgnoresANSIEscapes(t *testing.T) {
	styled := "\x1b[1mOne\x1b[0m"
	rows := [][]string{
		{styled, "x"},
		{"Three", "y"},
	}
	got := Format(rows, nil)
	// The styled cell is three columns wide on screen, so it gets the
	// same padding as a plain three-rune cell would.
	if want := styled + "    x"; got[0] != want {
		t.Fatalf("got %q, want %q", got[0], want)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}
